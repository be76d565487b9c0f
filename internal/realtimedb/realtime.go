package realtimedb

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"firebase.google.com/go/v4/db"
	"github.com/butterflysteps/backend/internal/firebase"
)

// RealtimeDB is a Realtime DB abstraction layer interface
type RealtimeDB interface {
	RunTransaction(ctx context.Context, path string, f db.UpdateFn) error
}

// Client to interact with Realtime DB
type Client struct{}

// RunTransaction runs f in a transaction at given path in Realtime DB
func (i Client) RunTransaction(ctx context.Context, path string, f db.UpdateFn) error {
	client := firebase.Database()
	if client == nil {
		return fmt.Errorf("Realtime DB is mocked, cannot update %v", path)
	}
	return client.NewRef(path).Transaction(ctx, f)
}

// MockClient keeps values in memory, JSON encoded like the real database does.
type MockClient struct {
	mu     sync.Mutex
	values map[string][]byte
}

// RunTransaction runs f against the in-memory value at path.
func (i *MockClient) RunTransaction(_ context.Context, path string, f db.UpdateFn) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.values == nil {
		i.values = map[string][]byte{}
	}

	updated, err := f(mockNode{data: i.values[path]})
	if err != nil {
		return err
	}

	bytes, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	i.values[path] = bytes
	return nil
}

// Value decodes the value stored at path into dst. Missing paths leave dst untouched.
func (i *MockClient) Value(path string, dst interface{}) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	data, ok := i.values[path]
	if !ok {
		return nil
	}
	return json.Unmarshal(data, dst)
}

type mockNode struct {
	data []byte
}

func (n mockNode) Unmarshal(v interface{}) error {
	if n.data == nil {
		return nil
	}
	return json.Unmarshal(n.data, v)
}
