package sqlite

import (
	"time"
)

// dbTimeLayout is RFC3339 with a fixed-width fraction, so text ordering of
// stored timestamps matches time ordering.
const dbTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTimeForDB formats a timestamp in UTC for storage.
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(dbTimeLayout)
}

// ParseTimeFromDB parses a stored timestamp.
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(dbTimeLayout, s)
}
