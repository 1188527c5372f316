package accounting

import (
	"time"

	"workhours/internal/domain"
)

// DaySummary is one calendar day of a month with its entries.
type DaySummary struct {
	Date    domain.Date        `json:"date"`
	Hours   float64            `json:"hours"`
	Entries []domain.TimeEntry `json:"entries"`
}

// WeekSummary is a run of consecutive days inside one month. WeekNumber
// counts from 1 within the month; it is not an ISO week.
type WeekSummary struct {
	WeekNumber int          `json:"week_number"`
	StartDate  domain.Date  `json:"start_date"`
	EndDate    domain.Date  `json:"end_date"`
	TotalHours float64      `json:"total_hours"`
	Days       []DaySummary `json:"days"`
}

// MonthSummary is the calendar partition of one month.
type MonthSummary struct {
	Year         int           `json:"year"`
	Month        time.Month    `json:"month"`
	Weeks        []WeekSummary `json:"weeks"`
	MonthlyTotal float64       `json:"monthly_total"`
}

// PartitionMonthIntoWeeks builds a DaySummary for every day of the month and
// splits the days into weeks. A week is closed before each Monday and before
// the month's last day, so the first week runs up to the first Sunday and the
// last day always forms a week of its own. Entries dated outside the month
// are ignored.
func PartitionMonthIntoWeeks(entries []domain.TimeEntry, year int, month time.Month) MonthSummary {
	byDate := GroupByDate(entries)
	lastDay := domain.DaysIn(year, month)

	summary := MonthSummary{Year: year, Month: month}
	var buffer []DaySummary

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		week := WeekSummary{
			WeekNumber: len(summary.Weeks) + 1,
			StartDate:  buffer[0].Date,
			EndDate:    buffer[len(buffer)-1].Date,
			Days:       buffer,
		}
		for _, d := range buffer {
			week.TotalHours += d.Hours
		}
		summary.Weeks = append(summary.Weeks, week)
		buffer = nil
	}

	for day := 1; day <= lastDay; day++ {
		date := domain.Date{Year: year, Month: month, Day: day}
		dayEntries := byDate[date]
		ds := DaySummary{
			Date:    date,
			Hours:   TotalHours(dayEntries),
			Entries: dayEntries,
		}
		if ds.Entries == nil {
			ds.Entries = []domain.TimeEntry{}
		}
		summary.MonthlyTotal += ds.Hours

		if date.Weekday() == time.Monday || day == lastDay {
			flush()
		}
		buffer = append(buffer, ds)
	}
	flush()

	return summary
}
