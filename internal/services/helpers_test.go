package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"workhours/internal/accounting"
	"workhours/internal/config"
	"workhours/internal/domain"
	"workhours/internal/repository/sqlite"
	"workhours/internal/session"
	"workhours/internal/validation"
)

const testSecret = "test-secret-test-secret-test-secret"

// Monday 19 October 2026, 14:00 UTC.
var testNow = time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)

type testEnv struct {
	store    *sqlite.Store
	sessions *session.MemoryStore
	clock    *accounting.FixedClock
	services *ServiceContainer
}

func setupServices(t *testing.T) *testEnv {
	t.Helper()
	return setupServicesWith(t, nil)
}

// setupServicesWith lets a test adjust the config before services are built.
func setupServicesWith(t *testing.T, configure func(*config.Config)) *testEnv {
	t.Helper()
	ctx := context.Background()

	clock := &accounting.FixedClock{Time: testNow}
	store, err := sqlite.Open(ctx, ":memory:", sqlite.Options{Now: clock.Now})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	sessions, err := session.NewMemoryStore(100, clock.Now)
	require.NoError(t, err)

	cfg := config.NewConfig()
	cfg.Auth.JWTSecret = testSecret
	cfg.Auth.BcryptCost = 4
	if configure != nil {
		configure(cfg)
	}

	return &testEnv{
		store:    store,
		sessions: sessions,
		clock:    clock,
		services: NewServiceContainer(cfg, store, sessions, clock, zerolog.Nop()),
	}
}

func (e *testEnv) createUser(t *testing.T, username string, role domain.Role) *domain.Profile {
	t.Helper()
	p, err := e.services.Auth.CreateUser(context.Background(), &validation.Registration{
		Username:        username,
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}, role)
	require.NoError(t, err)
	return p
}

func (e *testEnv) addEntry(t *testing.T, ownerID, date, start, end, description string) *domain.TimeEntry {
	t.Helper()
	created, err := e.services.Entries.CreateEntry(context.Background(), ownerID, validation.EntryInput{
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Description: description,
	}, "test")
	require.NoError(t, err)
	return created
}
