package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhours/internal/session"
)

func TestOpenStore_SQLite(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = filepath.Join(t.TempDir(), "nested")

	store, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.Ping(context.Background()))
	_, err = os.Stat(cfg.GetDatabasePath())
	assert.NoError(t, err)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Driver = "mysql"

	_, err := OpenStore(context.Background(), cfg)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestOpenTestStore(t *testing.T) {
	store, err := OpenTestStore(context.Background())
	require.NoError(t, err)
	defer store.Close()

	profiles, err := store.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestOpenSessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, err := OpenSessionStore(ctx, NewConfig(), nil)
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &session.MemoryStore{}, store)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := NewConfig()
		cfg.Session.Backend = SessionBackendRedis
		cfg.Session.RedisAddr = mr.Addr()

		store, err := OpenSessionStore(ctx, cfg, nil)
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &session.RedisStore{}, store)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Session.Backend = "memcached"
		_, err := OpenSessionStore(ctx, cfg, nil)
		assert.Error(t, err)
	})
}
