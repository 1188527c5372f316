package accounting

import (
	"slices"
	"time"

	"workhours/internal/domain"
)

// DefaultWeeklyGoalHours is the weekly target when none is configured.
const DefaultWeeklyGoalHours = 40.0

// WorkDays is the number of days in a work week (Monday to Friday).
const WorkDays = 5

// TotalHours sums entry durations. Minutes are summed before converting so
// the result does not depend on entry order.
func TotalHours(entries []domain.TimeEntry) float64 {
	minutes := 0
	for _, e := range entries {
		minutes += DurationMinutes(e.StartTime, e.EndTime)
	}
	return float64(minutes) / 60
}

// GroupByDate buckets entries by their date. Each bucket keeps input order.
func GroupByDate(entries []domain.TimeEntry) map[domain.Date][]domain.TimeEntry {
	groups := make(map[domain.Date][]domain.TimeEntry)
	for _, e := range entries {
		groups[e.Date] = append(groups[e.Date], e)
	}
	return groups
}

// SortedDates returns the keys of groups, newest first.
func SortedDates(groups map[domain.Date][]domain.TimeEntry) []domain.Date {
	dates := make([]domain.Date, 0, len(groups))
	for d := range groups {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b domain.Date) int { return b.Compare(a) })
	return dates
}

// WorkWeek returns Monday through Friday of the week containing day. A
// Sunday belongs to the week that started six days earlier.
func WorkWeek(day domain.Date) []domain.Date {
	offset := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		offset = 6
	}
	monday := day.AddDays(-offset)

	week := make([]domain.Date, WorkDays)
	for i := range week {
		week[i] = monday.AddDays(i)
	}
	return week
}

// CurrentWeek is WorkWeek of the clock's current date.
func CurrentWeek(clock Clock) []domain.Date {
	return WorkWeek(domain.DateOf(clock.Now()))
}

// Progress measures worked hours against a goal. Percent is not capped and
// Remaining goes negative once the goal is exceeded.
type Progress struct {
	HoursWorked float64 `json:"hours_worked"`
	GoalHours   float64 `json:"goal_hours"`
	Percent     float64 `json:"percent"`
	Remaining   float64 `json:"remaining"`
}

// GoalReached reports whether no hours remain.
func (p Progress) GoalReached() bool {
	return p.Remaining <= 0
}

// ClampedPercent limits Percent to [0, 100] for progress bars.
func (p Progress) ClampedPercent() float64 {
	return min(max(p.Percent, 0), 100)
}

// WeeklyProgress sums the entries dated on one of weekDays and compares the
// total with goalHours. A non-positive goal yields a percent of zero.
func WeeklyProgress(entries []domain.TimeEntry, weekDays []domain.Date, goalHours float64) Progress {
	inWeek := make(map[domain.Date]struct{}, len(weekDays))
	for _, d := range weekDays {
		inWeek[d] = struct{}{}
	}

	var matched []domain.TimeEntry
	for _, e := range entries {
		if _, ok := inWeek[e.Date]; ok {
			matched = append(matched, e)
		}
	}

	worked := TotalHours(matched)
	p := Progress{
		HoursWorked: worked,
		GoalHours:   goalHours,
		Remaining:   goalHours - worked,
	}
	if goalHours > 0 {
		p.Percent = worked / goalHours * 100
	}
	return p
}
