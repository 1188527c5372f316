package postgres

import "workhours/internal/domain"

func newEntryForTest() domain.NewEntry {
	return newEntry("2026-10-19", "09:00", "17:30", "Sprint review")
}

func newEntry(date, start, end, description string) domain.NewEntry {
	d, _ := domain.ParseDate(date)
	return domain.NewEntry{
		Date:        d,
		StartTime:   domain.MustParseTimeOfDay(start),
		EndTime:     domain.MustParseTimeOfDay(end),
		Description: description,
	}
}
