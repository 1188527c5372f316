package accounting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock_Location(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	assert.Equal(t, loc, RealClock{Location: loc}.Now().Location())
	assert.Equal(t, time.Local, RealClock{}.Now().Location())
}

func TestFixedClock_Advance(t *testing.T) {
	start := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	clock := &FixedClock{Time: start}

	assert.Equal(t, start, clock.Now())
	clock.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), clock.Now())
}
