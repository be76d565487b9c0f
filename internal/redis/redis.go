package redis

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/butterflysteps/backend/internal/logging"
	redisclient "github.com/go-redis/redis/v8"
)

//ErrMiss Returned by Get when the key does not exist.
var ErrMiss = redisclient.Nil

var redisClient *Connection

type lazyConnection func() (*redisclient.Client, error)

//Connection Contains lazy Redis connection
type Connection struct {
	inner lazyConnection
}

func init() {
	connect := func() (*redisclient.Client, error) {
		ctx := context.Background()
		logger := logging.FromContext(ctx).Named("redis.connect")

		addr, ok := os.LookupEnv("REDIS_ADDR")
		if !ok || addr == "" {
			return nil, fmt.Errorf("REDIS_ADDR env missing")
		}

		logger.Debugf("Connecting to Redis at %v", addr)

		client := redisclient.NewClient(&redisclient.Options{
			Addr: addr,
			DB:   0,
		})

		if _, err := client.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("Connection to Redis failed: %v", err)
		}

		logger.Debugf("Connected to Redis at %v", addr)

		return client, nil
	}

	var conn *redisclient.Client
	var connErr error
	var once sync.Once

	initInner := func() (*redisclient.Client, error) {
		once.Do(func() {
			conn, connErr = connect()
		})
		return conn, connErr
	}

	redisClient = &Connection{
		inner: initInner,
	}
}

//Client Redis client abstraction
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

//ClientImpl Real Redis client
type ClientImpl struct{}

//Get Get value from Redis
func (r ClientImpl) Get(ctx context.Context, key string) (string, error) {
	client, err := redisClient.inner()
	if err != nil {
		return "", err
	}
	return client.Get(ctx, key).Result()
}

//Set Set value to Redis. TTL value 0 means forever.
func (r ClientImpl) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	client, err := redisClient.inner()
	if err != nil {
		return err
	}
	return client.Set(ctx, key, value, ttl).Err()
}

//MockClient In-memory Redis replacement. TTL is ignored.
type MockClient struct {
	Err error

	mu     sync.Mutex
	values map[string]string
}

//Get Get value
func (r *MockClient) Get(_ context.Context, key string) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.values[key]
	if !ok {
		return "", ErrMiss
	}
	return v, nil
}

//Set Set value
func (r *MockClient) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if r.Err != nil {
		return r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.values == nil {
		r.values = map[string]string{}
	}
	switch v := value.(type) {
	case []byte:
		r.values[key] = string(v)
	default:
		r.values[key] = fmt.Sprint(v)
	}
	return nil
}
