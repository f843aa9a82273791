// Package factory wires the application's components together.
package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/kursusapp/kursus/internal/config"
	"github.com/kursusapp/kursus/internal/services/auth"
	"github.com/kursusapp/kursus/internal/services/course"
	"github.com/kursusapp/kursus/internal/session"
	"github.com/kursusapp/kursus/internal/storage"
	"github.com/kursusapp/kursus/internal/storage/memory"
	"github.com/kursusapp/kursus/internal/storage/postgres"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypePostgres = "postgres"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Store    storage.Store
	Sessions session.Store

	AuthService      *auth.Service
	CourseController *course.Controller

	closers []func()
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the record store backend ("memory" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// DatabaseDSN is the Postgres connection string (required if StorageType is "postgres")
	DatabaseDSN string
	// SessionStoreType selects the session backend ("memory" or "redis")
	// If empty, defaults to "memory"
	SessionStoreType string
	// RedisConfig holds Redis connection settings (required if SessionStoreType is "redis")
	RedisConfig *session.RedisConfig
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
}

// FromAppConfig converts server configuration into factory configuration
func FromAppConfig(cfg *config.Config, logger *slog.Logger) Config {
	redisCfg := session.DefaultRedisConfig()
	redisCfg.URL = cfg.RedisURL

	return Config{
		Logger:           logger,
		StorageType:      cfg.Storage,
		DatabaseDSN:      cfg.DatabaseDSN,
		SessionStoreType: cfg.SessionStore,
		RedisConfig:      &redisCfg,
		AuthConfig:       auth.Config{SessionDuration: cfg.SessionTTL},
	}
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var closers []func()

	// Record store
	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypePostgres:
		pgStore, err := postgres.New(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		store = pgStore
		closers = append(closers, pgStore.Close)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'postgres'")
	}

	// Session store
	var sessions session.Store
	sessionType := cfg.SessionStoreType
	if sessionType == "" {
		sessionType = SessionStoreMemory
	}

	switch sessionType {
	case SessionStoreMemory:
		sessions = session.NewMemoryStore()
	case SessionStoreRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when SessionStoreType is redis")
		}
		redisStore, err := session.NewRedisStore(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		sessions = redisStore
		closers = append(closers, func() { _ = redisStore.Close() })
	default:
		return nil, errors.New("invalid SessionStoreType: must be 'memory' or 'redis'")
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	app := newWithDependencies(store, sessions, authCfg)
	app.closers = closers
	return app, nil
}

// Close releases any backend connections held by the app
func (a *App) Close() {
	for _, closeFn := range a.closers {
		closeFn()
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, sessions session.Store, authCfg auth.Config) *App {
	return &App{
		Store:            store,
		Sessions:         sessions,
		AuthService:      auth.New(store, sessions, authCfg),
		CourseController: course.NewController(store),
	}
}
