package services

import (
	"github.com/rs/zerolog"

	"workhours/internal/accounting"
	"workhours/internal/config"
	"workhours/internal/domain"
	"workhours/internal/logging"
	"workhours/internal/session"
	"workhours/internal/validation"
)

// NewServiceContainer wires every service over one store and session backend.
func NewServiceContainer(cfg *config.Config, store domain.Store, sessions session.Store, clock accounting.Clock, logger zerolog.Logger) *ServiceContainer {
	v := validation.NewValidatorWithConfig(cfg)

	entries := NewEntryService(store, validation.NewTimeEntryValidatorWith(v), clock, logging.Component(logger, "entries"))
	return &ServiceContainer{
		Entries:   entries,
		Reporting: NewReportingService(store, clock, cfg.Tracking.WeeklyGoalHours),
		Auth: NewAuthService(store, sessions, validation.NewUserValidator(v), clock, AuthOptions{
			JWTSecret:  cfg.Auth.JWTSecret,
			TokenTTL:   cfg.Auth.TokenTTL,
			BcryptCost: cfg.Auth.BcryptCost,
		}, logging.Component(logger, "auth")),
		Timer:  NewTimerService(entries, clock, logging.Component(logger, "timer")),
		Export: NewExportService(store),
	}
}
