package api

import (
	"context"
	"io"
	"strings"
	"time"

	"workhours/internal/accounting"
	"workhours/internal/domain"
	"workhours/internal/errors"
	"workhours/internal/metrics"
	"workhours/internal/services"
	"workhours/internal/validation"
)

// MonthLayout is the format of a month argument, e.g. 2026-10.
const MonthLayout = "2006-01"

// NewUser is an account created by an operator
type NewUser struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Admin     bool
}

// BusinessAPI is the operator-facing interface. Users are addressed by
// username rather than by session.
type BusinessAPI interface {
	// ========== Account Management ==========

	// CreateUser registers an account, optionally with the admin role
	CreateUser(ctx context.Context, user NewUser) (*domain.Profile, error)

	// ListUsers returns every profile with its entry totals
	ListUsers(ctx context.Context) ([]services.UserSummary, error)

	// ========== Entry Operations ==========

	// AddEntry validates and stores a manual entry for username
	AddEntry(ctx context.Context, username string, in validation.EntryInput) (*domain.TimeEntry, error)

	// ListEntries returns username's entries, newest first
	ListEntries(ctx context.Context, username string) ([]domain.TimeEntry, error)

	// ========== Reports ==========

	// WeekReport covers the work week containing date ("" means today)
	WeekReport(ctx context.Context, username, date string) (*services.WeekReport, error)

	// MonthReport partitions month ("YYYY-MM", "" means this month) into weeks
	MonthReport(ctx context.Context, username, month string) (*accounting.MonthSummary, error)

	// ExportCSV writes username's entries as CSV
	ExportCSV(ctx context.Context, username string, w io.Writer) error
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	profiles domain.ProfileStore
	services *services.ServiceContainer
	clock    accounting.Clock
}

// NewBusinessAPI creates a new BusinessAPI instance
func NewBusinessAPI(profiles domain.ProfileStore, svc *services.ServiceContainer, clock accounting.Clock) BusinessAPI {
	return &businessAPIImpl{
		profiles: profiles,
		services: svc,
		clock:    clock,
	}
}

// ========== Account Management ==========

func (b *businessAPIImpl) CreateUser(ctx context.Context, user NewUser) (*domain.Profile, error) {
	role := domain.RoleUser
	if user.Admin {
		role = domain.RoleAdmin
	}
	return b.services.Auth.CreateUser(ctx, &validation.Registration{
		Username:        user.Username,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Password:        user.Password,
		ConfirmPassword: user.Password,
	}, role)
}

func (b *businessAPIImpl) ListUsers(ctx context.Context) ([]services.UserSummary, error) {
	// The operator acts with admin rights.
	operator := &domain.Profile{Username: "operator", Role: domain.RoleAdmin}
	return b.services.Reporting.GetAdminOverview(ctx, operator)
}

// ========== Entry Operations ==========

func (b *businessAPIImpl) AddEntry(ctx context.Context, username string, in validation.EntryInput) (*domain.TimeEntry, error) {
	profile, err := b.resolve(ctx, username)
	if err != nil {
		return nil, err
	}
	return b.services.Entries.CreateEntry(ctx, profile.ID, in, metrics.SourceCLI)
}

func (b *businessAPIImpl) ListEntries(ctx context.Context, username string) ([]domain.TimeEntry, error) {
	profile, err := b.resolve(ctx, username)
	if err != nil {
		return nil, err
	}
	entries, err := b.services.Entries.ListEntries(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	domain.SortEntriesForDisplay(entries)
	return entries, nil
}

// ========== Reports ==========

func (b *businessAPIImpl) WeekReport(ctx context.Context, username, date string) (*services.WeekReport, error) {
	day := domain.DateOf(b.clock.Now())
	if date != "" {
		parsed, err := domain.ParseDate(strings.TrimSpace(date))
		if err != nil {
			return nil, err
		}
		day = parsed
	}

	profile, err := b.resolve(ctx, username)
	if err != nil {
		return nil, err
	}
	return b.services.Reporting.GetWeekReport(ctx, profile.ID, day)
}

func (b *businessAPIImpl) MonthReport(ctx context.Context, username, month string) (*accounting.MonthSummary, error) {
	now := b.clock.Now()
	year, mon := now.Year(), now.Month()
	if month != "" {
		parsed, err := time.Parse(MonthLayout, strings.TrimSpace(month))
		if err != nil {
			return nil, errors.NewInvalidInputError("month", month, "expected YYYY-MM")
		}
		year, mon = parsed.Year(), parsed.Month()
	}

	profile, err := b.resolve(ctx, username)
	if err != nil {
		return nil, err
	}
	return b.services.Reporting.GetMonthOverview(ctx, profile.ID, year, mon)
}

func (b *businessAPIImpl) ExportCSV(ctx context.Context, username string, w io.Writer) error {
	profile, err := b.resolve(ctx, username)
	if err != nil {
		return err
	}
	return b.services.Export.WriteCSV(ctx, profile.ID, w)
}

func (b *businessAPIImpl) resolve(ctx context.Context, username string) (*domain.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.NewInvalidInputError("user", username, "a username is required")
	}
	return b.profiles.GetProfileByUsername(ctx, username)
}
