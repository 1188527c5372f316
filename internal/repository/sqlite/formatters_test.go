package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)
	in := time.Date(2026, time.October, 19, 9, 30, 0, 123, berlin)

	formatted := FormatTimeForDB(in)
	assert.Equal(t, "2026-10-19T07:30:00.000000123Z", formatted)

	parsed, err := ParseTimeFromDB(formatted)
	require.NoError(t, err)
	assert.True(t, in.Equal(parsed))
}

func TestFormatTimeForDB_SortsChronologically(t *testing.T) {
	earlier := FormatTimeForDB(time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC))
	later := FormatTimeForDB(time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC))
	assert.Less(t, earlier, later)
}

func TestParseTimeFromDB_Invalid(t *testing.T) {
	_, err := ParseTimeFromDB("2026-10-19 09:00")
	assert.Error(t, err)
}

func TestFormatTimeForDB_FixedWidth(t *testing.T) {
	whole := FormatTimeForDB(time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC))
	fraction := FormatTimeForDB(time.Date(2026, time.October, 19, 9, 0, 0, 500_000_000, time.UTC))
	assert.Len(t, fraction, len(whole))
	assert.Less(t, whole, fraction)
}
