package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"workhours/internal/accounting"
	"workhours/internal/api"
	"workhours/internal/config"
	"workhours/internal/repository/sqlite"
	"workhours/internal/services"
	"workhours/internal/session"
)

// Wednesday 21 October 2026.
var testNow = time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC)

// setupTestAPI builds the real stack over an in-memory database.
func setupTestAPI(t *testing.T) api.BusinessAPI {
	t.Helper()
	ctx := context.Background()
	clock := &accounting.FixedClock{Time: testNow}

	store, err := sqlite.Open(ctx, ":memory:", sqlite.Options{Now: clock.Now})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	sessions, err := session.NewMemoryStore(10, clock.Now)
	require.NoError(t, err)

	cfg := config.NewConfig()
	cfg.Auth.BcryptCost = 4
	svc := services.NewServiceContainer(cfg, store, sessions, clock, zerolog.Nop())
	return api.NewBusinessAPI(store, svc, clock)
}

func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return NewApp(setupTestAPI(t), out), out
}

// newTestRoot returns a root command whose subcommands share businessAPI.
func newTestRoot(t *testing.T, businessAPI api.BusinessAPI) (*RootCommand, *bytes.Buffer) {
	t.Helper()
	t.Chdir(t.TempDir())

	out := &bytes.Buffer{}
	root := NewRootCommand(RootOptions{
		Out: out,
		Opener: func(ctx context.Context, cfg *config.Config) (api.BusinessAPI, func() error, error) {
			return businessAPI, func() error { return nil }, nil
		},
	})
	return root, out
}

func runRoot(t *testing.T, root *RootCommand, args ...string) error {
	t.Helper()
	root.Command().SetArgs(args)
	return root.Execute(context.Background())
}
