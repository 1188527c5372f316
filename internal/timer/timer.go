// Package timer implements the live work timer: start, pause, resume and
// stop, then a description turns the captured interval into an entry.
package timer

import (
	"fmt"
	"strings"
	"time"

	"workhours/internal/accounting"
	"workhours/internal/domain"
	apperrors "workhours/internal/errors"
	"workhours/internal/validation"
)

// State is the timer's position in its lifecycle.
type State int

const (
	Idle State = iota
	Running
	Paused
	AwaitingDescription
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case AwaitingDescription:
		return "awaiting_description"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ErrInvalidTransition matches (via errors.Is) every rejected action.
var ErrInvalidTransition = &apperrors.AppError{
	Type:    apperrors.ErrorTypeValidation,
	Code:    "INVALID_TRANSITION",
	Message: "invalid timer transition",
}

func invalidTransition(action string, from State) error {
	return &apperrors.AppError{
		Type:    apperrors.ErrorTypeValidation,
		Code:    ErrInvalidTransition.Code,
		Message: fmt.Sprintf("cannot %s a timer that is %s", action, from),
		Context: map[string]any{"action": action, "state": from.String()},
	}
}

// Timer is a single user's live timer. It is not safe for concurrent use.
type Timer struct {
	clock accounting.Clock

	state     State
	startedAt time.Time
	pausedAt  time.Time
	stoppedAt time.Time
	paused    time.Duration
}

// New creates an idle timer reading time from clock.
func New(clock accounting.Clock) *Timer {
	return &Timer{clock: clock}
}

func (t *Timer) State() State {
	return t.state
}

// Start begins timing from Idle, or resumes from Paused.
func (t *Timer) Start() error {
	now := t.clock.Now()
	switch t.state {
	case Idle:
		t.startedAt = now
		t.paused = 0
	case Paused:
		t.paused += now.Sub(t.pausedAt)
		t.pausedAt = time.Time{}
	default:
		return invalidTransition("start", t.state)
	}
	t.state = Running
	return nil
}

// Pause freezes the elapsed time of a running timer.
func (t *Timer) Pause() error {
	if t.state != Running {
		return invalidTransition("pause", t.state)
	}
	t.pausedAt = t.clock.Now()
	t.state = Paused
	return nil
}

// Stop captures the end instant. The timer then waits for a description.
func (t *Timer) Stop() error {
	now := t.clock.Now()
	switch t.state {
	case Running:
	case Paused:
		t.paused += now.Sub(t.pausedAt)
		t.pausedAt = time.Time{}
	default:
		return invalidTransition("stop", t.state)
	}
	t.stoppedAt = now
	t.state = AwaitingDescription
	return nil
}

// Draft builds the entry a save would create. It never changes state: a
// blank description is rejected and the timer keeps waiting.
func (t *Timer) Draft(description string) (domain.NewEntry, error) {
	if t.state != AwaitingDescription {
		return domain.NewEntry{}, invalidTransition("save", t.state)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		ve := validation.NewValidationError()
		ve.AddRequiredError("description")
		return domain.NewEntry{}, ve
	}
	return domain.NewEntry{
		Date:        domain.DateOf(t.startedAt),
		StartTime:   domain.TimeOfDayOf(t.startedAt),
		EndTime:     domain.TimeOfDayOf(t.stoppedAt),
		Description: description,
	}, nil
}

// Reset discards everything and returns to Idle. It serves both cancel and
// a completed save.
func (t *Timer) Reset() {
	*t = Timer{clock: t.clock}
}

// Snapshot is a point-in-time view for display.
type Snapshot struct {
	State     State         `json:"state"`
	StartedAt time.Time     `json:"started_at,omitzero"`
	StoppedAt time.Time     `json:"stopped_at,omitzero"`
	Elapsed   time.Duration `json:"-"`
}

// ElapsedText renders Elapsed as HH:MM:SS.
func (s Snapshot) ElapsedText() string {
	return accounting.FormatElapsed(s.Elapsed)
}

func (t *Timer) Snapshot() Snapshot {
	s := Snapshot{State: t.state, StartedAt: t.startedAt, StoppedAt: t.stoppedAt}
	switch t.state {
	case Running:
		s.Elapsed = t.clock.Now().Sub(t.startedAt) - t.paused
	case Paused:
		s.Elapsed = t.pausedAt.Sub(t.startedAt) - t.paused
	case AwaitingDescription:
		s.Elapsed = t.stoppedAt.Sub(t.startedAt) - t.paused
	}
	return s
}
