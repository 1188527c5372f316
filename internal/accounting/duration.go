package accounting

import (
	"workhours/internal/domain"
)

// DurationMinutes returns the minutes from start to end. An end at or before
// the start is read as crossing midnight, so the result is in [0, 1440).
func DurationMinutes(start, end domain.TimeOfDay) int {
	diff := end.Minutes() - start.Minutes()
	if diff < 0 {
		diff += domain.MinutesPerDay
	}
	return diff
}

// DurationHours is DurationMinutes in fractional hours, always in [0, 24).
func DurationHours(start, end domain.TimeOfDay) float64 {
	return float64(DurationMinutes(start, end)) / 60
}

// EntryHours is the duration of a single entry.
func EntryHours(e domain.TimeEntry) float64 {
	return DurationHours(e.StartTime, e.EndTime)
}
