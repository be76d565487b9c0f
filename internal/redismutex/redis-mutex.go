package redismutex

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/butterflysteps/backend/internal/logging"
	redisclient "github.com/go-redis/redis/v8"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v8"
)

var rs *Connection

type lazyConnection func() (*redsync.Redsync, error)

//Connection Contains lazy Redsync connection
type Connection struct {
	inner lazyConnection
}

func init() {
	connect := func() (*redsync.Redsync, error) {
		ctx := context.Background()
		logger := logging.FromContext(ctx).Named("redis-mutex.connect")

		addr, ok := os.LookupEnv("REDIS_ADDR")
		if !ok || addr == "" {
			return nil, fmt.Errorf("REDIS_ADDR env missing")
		}

		client := redisclient.NewClient(&redisclient.Options{
			Addr: addr,
			DB:   1, // locks live apart from the cache
		})

		if _, err := client.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("Connection to Redis failed: %v", err)
		}

		logger.Debugf("Connected to Redis at %v", addr)

		return redsync.New(goredis.NewPool(client)), nil
	}

	var conn *redsync.Redsync
	var connErr error
	var once sync.Once

	initInner := func() (*redsync.Redsync, error) {
		once.Do(func() {
			conn, connErr = connect()
		})
		return conn, connErr
	}

	rs = &Connection{
		inner: initInner,
	}
}

//Unlocker Held lock.
type Unlocker interface {
	UnlockContext(ctx context.Context) (bool, error)
}

//MutexManager Mutex manager over Redis
type MutexManager interface {
	Lock(ctx context.Context, name string, expiry time.Duration) (Unlocker, error)
}

//ClientImpl Real Redis mutex client
type ClientImpl struct{}

//Lock Creates locked mutex
func (r ClientImpl) Lock(ctx context.Context, name string, expiry time.Duration) (Unlocker, error) {
	logger := logging.FromContext(ctx).Named("redis-mutex.Lock")

	locker, err := rs.inner()
	if err != nil {
		return nil, err
	}

	mutex := locker.NewMutex(name, redsync.WithExpiry(expiry))

	logger.Debugf("Trying to acquire '%v' exclusive lock", name)

	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return mutex, nil
}

//MockClient Process-local mutex manager. Locking a held name fails instead of waiting.
type MockClient struct {
	mu   sync.Mutex
	held map[string]bool
}

//Lock Locks name.
func (r *MockClient) Lock(_ context.Context, name string, _ time.Duration) (Unlocker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.held == nil {
		r.held = map[string]bool{}
	}
	if r.held[name] {
		return nil, redsync.ErrFailed
	}
	r.held[name] = true

	return mockLock{client: r, name: name}, nil
}

//Held Whether name is currently locked.
func (r *MockClient) Held(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.held[name]
}

type mockLock struct {
	client *MockClient
	name   string
}

func (l mockLock) UnlockContext(_ context.Context) (bool, error) {
	l.client.mu.Lock()
	defer l.client.mu.Unlock()

	held := l.client.held[l.name]
	delete(l.client.held, l.name)
	return held, nil
}
