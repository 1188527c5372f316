// Package handler serves the JSON API and the live timer stream.
package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"workhours/internal/domain"
	"workhours/internal/metrics"
	"workhours/internal/services"
)

// Options configures New.
type Options struct {
	Services      *services.ServiceContainer
	Store         domain.Store
	Limiter       *services.TokenBucket
	Logger        zerolog.Logger
	SecureCookies bool
	TimerTick     time.Duration
}

// Handler holds the dependencies shared by every route.
type Handler struct {
	services      *services.ServiceContainer
	store         domain.Store
	limiter       *services.TokenBucket
	logger        zerolog.Logger
	secureCookies bool
	timerTick     time.Duration
}

func New(opts Options) *Handler {
	if opts.TimerTick <= 0 {
		opts.TimerTick = time.Second
	}
	if opts.Limiter == nil {
		opts.Limiter = services.NewTokenBucket(0.2, 5, nil)
	}
	return &Handler{
		services:      opts.Services,
		store:         opts.Store,
		limiter:       opts.Limiter,
		logger:        opts.Logger,
		secureCookies: opts.SecureCookies,
		timerTick:     opts.TimerTick,
	}
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.HandleHealthz)
	mux.Handle("GET /metrics", metrics.Handler())

	mux.HandleFunc("POST /api/auth/register", h.rateLimited(h.HandleRegister))
	mux.HandleFunc("POST /api/auth/login", h.rateLimited(h.HandleLogin))
	mux.HandleFunc("POST /api/auth/logout", h.HandleLogout)
	mux.HandleFunc("GET /api/auth/me", h.requireAuth(h.HandleMe))

	mux.HandleFunc("GET /api/entries", h.requireAuth(h.HandleListEntries))
	mux.HandleFunc("POST /api/entries", h.requireAuth(h.HandleCreateEntry))
	mux.HandleFunc("GET /api/entries/export", h.requireAuth(h.HandleExport))
	mux.HandleFunc("GET /api/dashboard", h.requireAuth(h.HandleDashboard))
	mux.HandleFunc("GET /api/overview/{year}/{month}", h.requireAuth(h.HandleMonthOverview))

	mux.HandleFunc("GET /api/timer", h.requireAuth(h.HandleTimerState))
	mux.HandleFunc("POST /api/timer/start", h.requireAuth(h.timerAction(h.services.Timer.Start)))
	mux.HandleFunc("POST /api/timer/pause", h.requireAuth(h.timerAction(h.services.Timer.Pause)))
	mux.HandleFunc("POST /api/timer/stop", h.requireAuth(h.timerAction(h.services.Timer.Stop)))
	mux.HandleFunc("POST /api/timer/save", h.requireAuth(h.HandleTimerSave))
	mux.HandleFunc("POST /api/timer/cancel", h.requireAuth(h.HandleTimerCancel))
	mux.HandleFunc("GET /api/timer/stream", h.requireAuth(h.HandleTimerStream))

	mux.HandleFunc("GET /api/admin/users", h.requireAdmin(h.HandleAdminUsers))
	mux.HandleFunc("GET /api/admin/users/{id}/entries", h.requireAdmin(h.HandleAdminUserEntries))
}

// Routes returns the full handler chain.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return LoggingMiddleware(h.logger)(mux)
}
