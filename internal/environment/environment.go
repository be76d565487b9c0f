package environment

import (
	"context"
	"sync"
	"time"

	"github.com/butterflysteps/backend/internal/auth"
	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/messaging"
	"github.com/butterflysteps/backend/internal/pubsub"
	"github.com/butterflysteps/backend/internal/realtimedb"
	"github.com/butterflysteps/backend/internal/redis"
	"github.com/butterflysteps/backend/internal/redismutex"
	"github.com/butterflysteps/backend/internal/secrets"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils"
)

//Environment Clients and settings shared by the HTTP and event functions.
type Environment struct {
	Store      store.Storer
	Auth       auth.Auther
	Publisher  pubsub.EventPublisher
	Push       messaging.PushSender
	Cache      redis.Client
	Mutexes    redismutex.MutexManager
	Secrets    secrets.Manager
	RealtimeDB realtimedb.RealtimeDB
	CacheTTL   time.Duration
	Location   *time.Location
	Clock      utils.Clock
}

var (
	defaultOnce sync.Once
	defaultEnv  *Environment
)

//Default Environment backed by the real clients and configured from env variables.
func Default(ctx context.Context) *Environment {
	defaultOnce.Do(func() {
		logger := logging.FromContext(ctx).Named("environment.Default")

		config, err := utils.LoadAppConfig(ctx)
		if err != nil {
			logger.Errorf("Could not load app config, using defaults: %v", err)
			config = &utils.AppConfig{ChallengeTimezone: "UTC", StatsCacheTTL: 30 * time.Second}
		}

		defaultEnv = &Environment{
			Store:      store.Client{},
			Auth:       auth.Client{},
			Publisher:  pubsub.Client{},
			Push:       messaging.Client{},
			Cache:      redis.ClientImpl{},
			Mutexes:    redismutex.ClientImpl{},
			Secrets:    secrets.Client{},
			RealtimeDB: realtimedb.Client{},
			CacheTTL:   config.StatsCacheTTL,
			Location:   config.Location(),
			Clock:      utils.SystemClock,
		}
	})
	return defaultEnv
}

//NewMock Environment over in-memory mocks with a fixed clock, for tests and local runs.
func NewMock(now time.Time) *Environment {
	return &Environment{
		Store:      store.NewMemory(),
		Auth:       auth.MockClient{},
		Publisher:  &pubsub.MockClient{},
		Push:       &messaging.MockClient{},
		Cache:      &redis.MockClient{},
		Mutexes:    &redismutex.MockClient{},
		Secrets:    secrets.MockClient{Values: map[string]string{}},
		RealtimeDB: &realtimedb.MockClient{},
		CacheTTL:   30 * time.Second,
		Location:   time.UTC,
		Clock:      utils.FixedClock(now),
	}
}

//Moment Current instant and challenge-local date.
func (e *Environment) Moment() calendar.Moment {
	return calendar.At(e.Clock(), e.Location)
}

//Authenticate Resolves the UID of an ID token.
func (e *Environment) Authenticate(ctx context.Context, idToken string) (string, error) {
	return e.Auth.AuthenticateToken(ctx, idToken)
}

//Publish Publishes event; failures are logged only since the state change is already committed.
func (e *Environment) Publish(ctx context.Context, topic string, msg interface{}) {
	if err := e.Publisher.Publish(ctx, topic, msg); err != nil {
		logging.FromContext(ctx).Warnf("Could not publish to %v: %v", topic, err)
	}
}
