package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultMaxAttempts = 25

// Memory is an in-process Storer with optimistic transactions, used by tests and local runs.
// Documents are kept JSON encoded so callers never share memory with the store.
type Memory struct {
	MaxAttempts int

	mu   sync.Mutex
	docs map[string]map[string]*memoryDoc
}

type memoryDoc struct {
	data    []byte
	version int64
}

type docKey struct {
	collection string
	id         string
}

type pendingWrite struct {
	key  docKey
	data []byte
}

//NewMemory Creates empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: map[string]map[string]*memoryDoc{}}
}

func (m *Memory) lookup(key docKey) *memoryDoc {
	if m.docs == nil {
		m.docs = map[string]map[string]*memoryDoc{}
	}
	return m.docs[key.collection][key.id]
}

func (m *Memory) write(key docKey, data []byte) {
	if m.docs == nil {
		m.docs = map[string]map[string]*memoryDoc{}
	}
	coll, ok := m.docs[key.collection]
	if !ok {
		coll = map[string]*memoryDoc{}
		m.docs[key.collection] = coll
	}
	if doc, ok := coll[key.id]; ok {
		doc.data = data
		doc.version++
		return
	}
	coll[key.id] = &memoryDoc{data: data, version: 1}
}

// RunTransaction runs f and commits its writes if none of the documents it read changed meanwhile,
// otherwise f is run again.
func (m *Memory) RunTransaction(ctx context.Context, f func(context.Context, Tx) error) error {
	attempts := m.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}

	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		tx := &memoryTx{m: m, reads: map[docKey]int64{}}
		if err := f(ctx, tx); err != nil {
			return err
		}

		if m.commit(tx) {
			return nil
		}
	}

	return status.Errorf(codes.Aborted, "transaction aborted after %v attempts", attempts)
}

func (m *Memory) commit(tx *memoryTx) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, version := range tx.reads {
		var current int64
		if doc := m.lookup(key); doc != nil {
			current = doc.version
		}
		if current != version {
			return false
		}
	}

	for _, w := range tx.writes {
		m.write(w.key, w.data)
	}

	return true
}

// Get reads the document into dst.
func (m *Memory) Get(_ context.Context, collection string, id string, dst interface{}) error {
	m.mu.Lock()
	doc := m.lookup(docKey{collection, id})
	var data []byte
	if doc != nil {
		data = doc.data
	}
	m.mu.Unlock()

	if doc == nil {
		return notFound(collection, id)
	}
	return json.Unmarshal(data, dst)
}

// Set overwrites the document.
func (m *Memory) Set(_ context.Context, collection string, id string, data interface{}) error {
	bytes, err := json.Marshal(data)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.write(docKey{collection, id}, bytes)
	return nil
}

// Query filters, orders and limits the documents of a collection.
func (m *Memory) Query(_ context.Context, q Query) ([]Snapshot, error) {
	m.mu.Lock()
	ids := make([]string, 0, len(m.docs[q.Collection]))
	raw := map[string][]byte{}
	for id, doc := range m.docs[q.Collection] {
		ids = append(ids, id)
		raw[id] = doc.data
	}
	m.mu.Unlock()

	sort.Strings(ids)

	type candidate struct {
		id     string
		fields map[string]interface{}
	}

	var matching []candidate
	for _, id := range ids {
		var fields map[string]interface{}
		if err := json.Unmarshal(raw[id], &fields); err != nil {
			return nil, err
		}

		ok, err := matches(fields, q.Filters)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if q.OrderBy != "" {
			if _, has := fields[q.OrderBy]; !has {
				continue
			}
		}
		matching = append(matching, candidate{id: id, fields: fields})
	}

	if q.OrderBy != "" {
		sort.SliceStable(matching, func(i, j int) bool {
			c, _ := compare(matching[i].fields[q.OrderBy], matching[j].fields[q.OrderBy])
			if q.Descending {
				return c > 0
			}
			return c < 0
		})
	}

	if q.Limit > 0 && len(matching) > q.Limit {
		matching = matching[:q.Limit]
	}

	result := make([]Snapshot, 0, len(matching))
	for _, c := range matching {
		data := raw[c.id]
		result = append(result, Snapshot{ID: c.id, dataTo: func(dst interface{}) error {
			return json.Unmarshal(data, dst)
		}})
	}

	return result, nil
}

func matches(fields map[string]interface{}, filters []Filter) (bool, error) {
	for _, f := range filters {
		value, has := fields[f.Field]
		if !has {
			return false, nil
		}

		c, comparable := compare(value, f.Value)
		if !comparable {
			if f.Op == "==" {
				return false, nil
			}
			return false, fmt.Errorf("cannot compare field %v (%T) with %T", f.Field, value, f.Value)
		}

		var ok bool
		switch f.Op {
		case "==":
			ok = c == 0
		case "<":
			ok = c < 0
		case "<=":
			ok = c <= 0
		case ">":
			ok = c > 0
		case ">=":
			ok = c >= 0
		default:
			return false, fmt.Errorf("unsupported operator %q", f.Op)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func compare(a interface{}, b interface{}) (int, bool) {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		}
		return 0, true
	}

	switch va := a.(type) {
	case string:
		vb, ok := toString(b)
		if !ok {
			return 0, false
		}
		switch {
		case va < vb:
			return -1, true
		case va > vb:
			return 1, true
		}
		return 0, true
	case bool:
		vb, ok := b.(bool)
		if !ok || va != vb {
			return 1, ok
		}
		return 0, true
	}

	return 0, false
}

func toFloat(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}

func toString(v interface{}) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

type memoryTx struct {
	m      *Memory
	reads  map[docKey]int64
	writes []pendingWrite
}

func (t *memoryTx) Get(collection string, id string, dst interface{}) error {
	if len(t.writes) > 0 {
		return status.Errorf(codes.InvalidArgument, "read of %v/%v after write in transaction", collection, id)
	}

	key := docKey{collection, id}

	t.m.mu.Lock()
	doc := t.m.lookup(key)
	var data []byte
	var version int64
	if doc != nil {
		data = doc.data
		version = doc.version
	}
	t.m.mu.Unlock()

	if prev, seen := t.reads[key]; !seen || prev > version {
		t.reads[key] = version
	}

	if doc == nil {
		return notFound(collection, id)
	}
	return json.Unmarshal(data, dst)
}

func (t *memoryTx) Set(collection string, id string, data interface{}) error {
	bytes, err := json.Marshal(data)
	if err != nil {
		return err
	}
	t.writes = append(t.writes, pendingWrite{key: docKey{collection, id}, data: bytes})
	return nil
}
