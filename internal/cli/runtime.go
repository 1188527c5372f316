package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"workhours/internal/accounting"
	"workhours/internal/api"
	"workhours/internal/config"
	"workhours/internal/logging"
	"workhours/internal/services"
	"workhours/internal/session"
)

// OpenBusinessAPI is the default Opener. Operator commands never sign in,
// so sessions stay in a small in-process cache whatever the configured
// backend.
func OpenBusinessAPI(ctx context.Context, cfg *config.Config) (api.BusinessAPI, func() error, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid timezone %q: %w", cfg.Tracking.Timezone, err)
	}
	clock := accounting.RealClock{Location: loc}

	store, err := config.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logging.Debugln("opened", cfg.Database.Driver, "store")
	sessions, err := session.NewMemoryStore(16, clock.Now)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	svc := services.NewServiceContainer(cfg, store, sessions, clock, log.Logger)
	return api.NewBusinessAPI(store, svc, clock), store.Close, nil
}
