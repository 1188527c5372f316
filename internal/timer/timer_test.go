package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhours/internal/accounting"
	"workhours/internal/domain"
	apperrors "workhours/internal/errors"
	"workhours/internal/validation"
)

func newTestTimer() (*Timer, *accounting.FixedClock) {
	clock := &accounting.FixedClock{Time: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	return New(clock), clock
}

func TestTimer_FullCycle(t *testing.T) {
	tm, clock := newTestTimer()
	assert.Equal(t, Idle, tm.State())

	require.NoError(t, tm.Start())
	clock.Advance(90 * time.Minute)
	assert.Equal(t, 90*time.Minute, tm.Snapshot().Elapsed)

	require.NoError(t, tm.Stop())
	assert.Equal(t, AwaitingDescription, tm.State())

	entry, err := tm.Draft("  Code review  ")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", entry.Date.String())
	assert.Equal(t, "09:00", entry.StartTime.String())
	assert.Equal(t, "10:30", entry.EndTime.String())
	assert.Equal(t, "Code review", entry.Description)
	assert.Equal(t, AwaitingDescription, tm.State(), "Draft must not transition")

	tm.Reset()
	assert.Equal(t, Idle, tm.State())
	assert.Equal(t, time.Duration(0), tm.Snapshot().Elapsed)
}

func TestTimer_PauseExcludesPausedTime(t *testing.T) {
	tm, clock := newTestTimer()

	require.NoError(t, tm.Start())
	clock.Advance(30 * time.Minute)
	require.NoError(t, tm.Pause())
	clock.Advance(15 * time.Minute)
	assert.Equal(t, 30*time.Minute, tm.Snapshot().Elapsed, "elapsed is frozen while paused")

	require.NoError(t, tm.Start())
	clock.Advance(10 * time.Minute)
	assert.Equal(t, 40*time.Minute, tm.Snapshot().Elapsed)

	require.NoError(t, tm.Pause())
	clock.Advance(5 * time.Minute)
	require.NoError(t, tm.Stop())
	snap := tm.Snapshot()
	assert.Equal(t, 40*time.Minute, snap.Elapsed)
	assert.Equal(t, "00:40:00", snap.ElapsedText())

	// The saved entry spans wall-clock time, pauses included.
	entry, err := tm.Draft("Pairing")
	require.NoError(t, err)
	assert.Equal(t, "09:00", entry.StartTime.String())
	assert.Equal(t, "10:00", entry.EndTime.String())
}

func TestTimer_DraftRejectsBlankDescription(t *testing.T) {
	tm, clock := newTestTimer()
	require.NoError(t, tm.Start())
	clock.Advance(time.Hour)
	require.NoError(t, tm.Stop())

	_, err := tm.Draft("   ")
	require.Error(t, err)
	ve, ok := validation.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.GetFieldErrors("description"), 1)
	assert.Equal(t, AwaitingDescription, tm.State())
}

func TestTimer_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*Timer)
		action func(*Timer) error
	}{
		{"pause when idle", func(*Timer) {}, (*Timer).Pause},
		{"stop when idle", func(*Timer) {}, (*Timer).Stop},
		{"start when running", func(tm *Timer) { _ = tm.Start() }, (*Timer).Start},
		{"pause when paused", func(tm *Timer) { _ = tm.Start(); _ = tm.Pause() }, (*Timer).Pause},
		{"start when awaiting description", func(tm *Timer) { _ = tm.Start(); _ = tm.Stop() }, (*Timer).Start},
		{"stop when awaiting description", func(tm *Timer) { _ = tm.Start(); _ = tm.Stop() }, (*Timer).Stop},
		{"save when running", func(tm *Timer) { _ = tm.Start() }, func(tm *Timer) error {
			_, err := tm.Draft("work")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, _ := newTestTimer()
			tt.setup(tm)
			before := tm.State()

			err := tt.action(tm)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTransition))
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation))
			assert.Equal(t, before, tm.State())
		})
	}
}

func TestTimer_RoundTripMatchesManualEntry(t *testing.T) {
	tm, clock := newTestTimer()
	require.NoError(t, tm.Start())
	clock.Advance(8*time.Hour + 30*time.Minute)
	require.NoError(t, tm.Stop())

	entry, err := tm.Draft("Full day")
	require.NoError(t, err)

	manual := domain.NewEntry{
		StartTime: domain.MustParseTimeOfDay("09:00"),
		EndTime:   domain.MustParseTimeOfDay("17:30"),
	}
	assert.Equal(t,
		accounting.DurationHours(manual.StartTime, manual.EndTime),
		accounting.DurationHours(entry.StartTime, entry.EndTime))
	assert.Equal(t, 8.5, accounting.DurationHours(entry.StartTime, entry.EndTime))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "awaiting_description", AwaitingDescription.String())
	assert.Equal(t, "unknown", State(42).String())
}
