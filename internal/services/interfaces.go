package services

import (
	"context"
	"io"
	"time"

	"workhours/internal/accounting"
	"workhours/internal/domain"
	"workhours/internal/timer"
	"workhours/internal/validation"
)

// DayGroup is one date's entries with their summed hours.
type DayGroup struct {
	Date    domain.Date        `json:"date"`
	Hours   float64            `json:"hours"`
	Entries []domain.TimeEntry `json:"entries"`
}

// Dashboard is everything the landing page shows for one user
type Dashboard struct {
	Today      domain.Date         `json:"today"`
	TotalHours float64             `json:"total_hours"`
	EntryCount int                 `json:"entry_count"`
	Days       []DayGroup          `json:"days"`
	Week       []domain.Date       `json:"week"`
	Progress   accounting.Progress `json:"progress"`
}

// WeekReport covers the Monday to Friday span containing a date
type WeekReport struct {
	Days     []accounting.DaySummary `json:"days"`
	Progress accounting.Progress     `json:"progress"`
}

// UserSummary is one row of the admin overview
type UserSummary struct {
	Profile    domain.Profile `json:"profile"`
	EntryCount int            `json:"entry_count"`
	TotalHours float64        `json:"total_hours"`
}

// UserEntries is one user's entries as seen by an admin
type UserEntries struct {
	Profile    domain.Profile     `json:"profile"`
	Entries    []domain.TimeEntry `json:"entries"`
	TotalHours float64            `json:"total_hours"`
}

// LoginResult is returned by a successful login
type LoginResult struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Profile   domain.Profile `json:"profile"`
}

// EntryService creates and lists time entries
type EntryService interface {
	// CreateEntry parses and validates raw input before storing it.
	CreateEntry(ctx context.Context, ownerID string, in validation.EntryInput, source string) (*domain.TimeEntry, error)
	// AddEntry validates an already parsed entry before storing it.
	AddEntry(ctx context.Context, ownerID string, entry domain.NewEntry, source string) (*domain.TimeEntry, error)
	ListEntries(ctx context.Context, ownerID string) ([]domain.TimeEntry, error)
}

// ReportingService aggregates entries for display
type ReportingService interface {
	GetDashboard(ctx context.Context, ownerID string) (*Dashboard, error)
	GetWeekReport(ctx context.Context, ownerID string, day domain.Date) (*WeekReport, error)
	GetMonthOverview(ctx context.Context, ownerID string, year int, month time.Month) (*accounting.MonthSummary, error)

	// Admin views; viewer must hold the admin role.
	GetAdminOverview(ctx context.Context, viewer *domain.Profile) ([]UserSummary, error)
	GetUserEntries(ctx context.Context, viewer *domain.Profile, userID string) (*UserEntries, error)
}

// AuthService registers users and manages login sessions
type AuthService interface {
	Register(ctx context.Context, r *validation.Registration) (*domain.Profile, error)
	CreateUser(ctx context.Context, r *validation.Registration, role domain.Role) (*domain.Profile, error)
	Login(ctx context.Context, c *validation.Credentials) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a token to the current user.
	Authenticate(ctx context.Context, token string) (*domain.Profile, error)
}

// TimerService keeps one live timer per user
type TimerService interface {
	Snapshot(userID string) timer.Snapshot
	Start(userID string) (timer.Snapshot, error)
	Pause(userID string) (timer.Snapshot, error)
	Stop(userID string) (timer.Snapshot, error)
	Save(ctx context.Context, userID, description string) (*domain.TimeEntry, error)
	Cancel(userID string) timer.Snapshot
}

// ExportService writes entries in interchange formats
type ExportService interface {
	WriteCSV(ctx context.Context, ownerID string, w io.Writer) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Entries   EntryService
	Reporting ReportingService
	Auth      AuthService
	Timer     TimerService
	Export    ExportService
}
