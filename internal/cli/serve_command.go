package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"workhours/internal/accounting"
	"workhours/internal/config"
	"workhours/internal/handler"
	"workhours/internal/logging"
	"workhours/internal/services"
)

// limiterIdle is how long an address may stay quiet before its login
// budget is forgotten.
const limiterIdle = 15 * time.Minute

func (r *RootCommand) newServeCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Run the JSON API, the live timer stream and the metrics endpoint.

Requires auth.jwt_secret (WH_AUTH_JWT_SECRET) of at least 32 characters.
Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				r.config.Server.Addr = addr
			}
			return Serve(cmd.Context(), r.config)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides WH_SERVER_ADDR)")
	return cmd
}

// Serve wires the full service stack from cfg and blocks until ctx ends.
func Serve(ctx context.Context, cfg *config.Config) error {
	if err := cfg.ValidateForServer(); err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Tracking.Timezone, err)
	}
	clock := accounting.RealClock{Location: loc}
	logger := log.Logger

	store, err := config.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := config.OpenSessionStore(ctx, cfg, clock.Now)
	if err != nil {
		return err
	}
	defer sessions.Close()

	logger.Info().
		Str("driver", cfg.Database.Driver).
		Str("sessions", cfg.Session.Backend).
		Str("timezone", loc.String()).
		Float64("weekly_goal_hours", cfg.Tracking.WeeklyGoalHours).
		Msg("starting workhours")

	limiter := services.NewTokenBucket(cfg.Auth.LoginRatePerSecond, float64(cfg.Auth.LoginBurst), nil)
	go sweepLimiter(ctx, limiter)

	h := handler.New(handler.Options{
		Services:      services.NewServiceContainer(cfg, store, sessions, clock, logger),
		Store:         store,
		Limiter:       limiter,
		Logger:        logging.Component(logger, "http"),
		SecureCookies: cfg.Server.SecureCookies,
		TimerTick:     cfg.Server.TimerTick,
	})

	return handler.Serve(ctx, nil, h.Routes(), handler.ServerOptions{
		Addr:              cfg.Server.Addr,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.Server.ShutdownTimeout,
		Logger:            logger,
	})
}

func sweepLimiter(ctx context.Context, limiter *services.TokenBucket) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Sweep(limiterIdle)
		}
	}
}
