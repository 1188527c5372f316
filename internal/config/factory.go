package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"workhours/internal/domain"
	"workhours/internal/repository/postgres"
	"workhours/internal/repository/sqlite"
	"workhours/internal/session"
)

// OpenStore opens the persistence backend selected by Database.Driver.
func OpenStore(ctx context.Context, cfg *Config) (domain.Store, error) {
	switch cfg.Database.Driver {
	case DriverSQLite:
		if err := os.MkdirAll(cfg.Database.Dir, os.FileMode(cfg.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		store, err := sqlite.Open(ctx, cfg.GetDatabasePath(), sqlite.Options{
			QueryTimeout: cfg.Database.QueryTimeout,
			WriteTimeout: cfg.Database.WriteTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store, nil
	case DriverPostgres:
		store, err := postgres.Open(ctx, cfg.Database.PostgresDSN, postgres.Options{
			MaxConns:     cfg.Database.MaxConns,
			QueryTimeout: cfg.Database.QueryTimeout,
			WriteTimeout: cfg.Database.WriteTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store, nil
	default:
		return nil, &ConfigError{Field: "database.driver", Message: "driver must be sqlite or postgres"}
	}
}

// OpenTestStore opens a private in-memory SQLite store.
func OpenTestStore(ctx context.Context) (domain.Store, error) {
	store, err := sqlite.Open(ctx, ":memory:", sqlite.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return store, nil
}

// OpenSessionStore opens the session backend selected by Session.Backend.
func OpenSessionStore(ctx context.Context, cfg *Config, now func() time.Time) (session.Store, error) {
	switch cfg.Session.Backend {
	case SessionBackendMemory:
		return session.NewMemoryStore(cfg.Session.CacheSize, now)
	case SessionBackendRedis:
		return session.NewRedisStore(ctx, session.RedisOptions{
			Addr:      cfg.Session.RedisAddr,
			Password:  cfg.Session.RedisPassword,
			DB:        cfg.Session.RedisDB,
			KeyPrefix: cfg.Session.KeyPrefix,
			Now:       now,
		})
	default:
		return nil, &ConfigError{Field: "session.backend", Message: "backend must be memory or redis"}
	}
}
