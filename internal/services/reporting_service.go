package services

import (
	"context"
	"time"

	"workhours/internal/accounting"
	"workhours/internal/domain"
	"workhours/internal/errors"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	store     domain.Store
	clock     accounting.Clock
	goalHours float64
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(store domain.Store, clock accounting.Clock, goalHours float64) ReportingService {
	return &reportingServiceImpl{
		store:     store,
		clock:     clock,
		goalHours: goalHours,
	}
}

// GetDashboard groups all of the user's entries by date, newest first, and
// measures the current work week against the weekly goal.
func (r *reportingServiceImpl) GetDashboard(ctx context.Context, ownerID string) (*Dashboard, error) {
	entries, err := r.store.ListEntries(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	domain.SortEntriesForDisplay(entries)

	groups := accounting.GroupByDate(entries)
	days := make([]DayGroup, 0, len(groups))
	for _, date := range accounting.SortedDates(groups) {
		days = append(days, DayGroup{
			Date:    date,
			Hours:   accounting.TotalHours(groups[date]),
			Entries: groups[date],
		})
	}

	week := accounting.CurrentWeek(r.clock)
	return &Dashboard{
		Today:      domain.DateOf(r.clock.Now()),
		TotalHours: accounting.TotalHours(entries),
		EntryCount: len(entries),
		Days:       days,
		Week:       week,
		Progress:   accounting.WeeklyProgress(entries, week, r.goalHours),
	}, nil
}

// GetWeekReport reports each work day of the week containing day.
func (r *reportingServiceImpl) GetWeekReport(ctx context.Context, ownerID string, day domain.Date) (*WeekReport, error) {
	entries, err := r.store.ListEntries(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	week := accounting.WorkWeek(day)
	groups := accounting.GroupByDate(entries)
	days := make([]accounting.DaySummary, 0, len(week))
	for _, d := range week {
		dayEntries := groups[d]
		if dayEntries == nil {
			dayEntries = []domain.TimeEntry{}
		}
		days = append(days, accounting.DaySummary{
			Date:    d,
			Hours:   accounting.TotalHours(dayEntries),
			Entries: dayEntries,
		})
	}

	return &WeekReport{
		Days:     days,
		Progress: accounting.WeeklyProgress(entries, week, r.goalHours),
	}, nil
}

func (r *reportingServiceImpl) GetMonthOverview(ctx context.Context, ownerID string, year int, month time.Month) (*accounting.MonthSummary, error) {
	if month < time.January || month > time.December {
		return nil, errors.NewInvalidInputError("month", month, "must be between 1 and 12")
	}
	entries, err := r.store.ListEntries(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	summary := accounting.PartitionMonthIntoWeeks(entries, year, month)
	return &summary, nil
}

// GetAdminOverview lists every profile, newest first, with its entry totals.
func (r *reportingServiceImpl) GetAdminOverview(ctx context.Context, viewer *domain.Profile) ([]UserSummary, error) {
	if err := requireAdmin(viewer, "list users"); err != nil {
		return nil, err
	}

	profiles, err := r.store.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(profiles))
	for _, p := range profiles {
		entries, err := r.store.ListEntries(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, UserSummary{
			Profile:    p,
			EntryCount: len(entries),
			TotalHours: accounting.TotalHours(entries),
		})
	}
	return summaries, nil
}

func (r *reportingServiceImpl) GetUserEntries(ctx context.Context, viewer *domain.Profile, userID string) (*UserEntries, error) {
	if err := requireAdmin(viewer, "view user entries"); err != nil {
		return nil, err
	}

	profile, err := r.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := r.store.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	domain.SortEntriesForDisplay(entries)

	return &UserEntries{
		Profile:    *profile,
		Entries:    entries,
		TotalHours: accounting.TotalHours(entries),
	}, nil
}

func requireAdmin(viewer *domain.Profile, operation string) error {
	if viewer == nil {
		return errors.NewUnauthorizedError("not signed in")
	}
	if !viewer.IsAdmin() {
		return errors.NewPermissionError(operation, "profiles")
	}
	return nil
}
