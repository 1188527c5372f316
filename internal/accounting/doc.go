// Package accounting turns time entries into hours: single-entry durations,
// totals, per-day grouping, work-week progress and the monthly calendar
// partition. Every function is pure; "now" arrives through a Clock.
package accounting
