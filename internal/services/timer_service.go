package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"workhours/internal/accounting"
	"workhours/internal/domain"
	"workhours/internal/metrics"
	"workhours/internal/timer"
)

type userTimer struct {
	mu sync.Mutex
	t  *timer.Timer
}

// timerServiceImpl implements the TimerService interface
type timerServiceImpl struct {
	entries EntryService
	clock   accounting.Clock
	logger  zerolog.Logger

	mu     sync.Mutex
	timers map[string]*userTimer
}

// NewTimerService creates a new TimerService instance. Timers live in
// memory only and are lost on restart.
func NewTimerService(entries EntryService, clock accounting.Clock, logger zerolog.Logger) TimerService {
	return &timerServiceImpl{
		entries: entries,
		clock:   clock,
		logger:  logger,
		timers:  make(map[string]*userTimer),
	}
}

func (s *timerServiceImpl) get(userID string) *userTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	ut, ok := s.timers[userID]
	if !ok {
		ut = &userTimer{t: timer.New(s.clock)}
		s.timers[userID] = ut
	}
	return ut
}

// with runs fn under the user's timer lock and keeps the active timer gauge
// in step with the state change.
func (s *timerServiceImpl) with(userID, action string, fn func(*timer.Timer) error) (timer.Snapshot, error) {
	ut := s.get(userID)
	ut.mu.Lock()
	defer ut.mu.Unlock()

	before := ut.t.State()
	if err := fn(ut.t); err != nil {
		return ut.t.Snapshot(), err
	}
	after := ut.t.State()

	switch {
	case !active(before) && active(after):
		metrics.ActiveTimers.Inc()
	case active(before) && !active(after):
		metrics.ActiveTimers.Dec()
	}
	metrics.TimerTransitions.WithLabelValues(action).Inc()
	s.logger.Debug().Str("user_id", userID).Str("action", action).
		Stringer("from", before).Stringer("to", after).Msg("timer transition")
	return ut.t.Snapshot(), nil
}

func active(s timer.State) bool {
	return s == timer.Running || s == timer.Paused
}

func (s *timerServiceImpl) Snapshot(userID string) timer.Snapshot {
	ut := s.get(userID)
	ut.mu.Lock()
	defer ut.mu.Unlock()
	return ut.t.Snapshot()
}

func (s *timerServiceImpl) Start(userID string) (timer.Snapshot, error) {
	return s.with(userID, "start", (*timer.Timer).Start)
}

func (s *timerServiceImpl) Pause(userID string) (timer.Snapshot, error) {
	return s.with(userID, "pause", (*timer.Timer).Pause)
}

func (s *timerServiceImpl) Stop(userID string) (timer.Snapshot, error) {
	return s.with(userID, "stop", (*timer.Timer).Stop)
}

func (s *timerServiceImpl) Cancel(userID string) timer.Snapshot {
	snap, _ := s.with(userID, "cancel", func(t *timer.Timer) error {
		t.Reset()
		return nil
	})
	return snap
}

// Save turns the stopped timer into an entry. The timer only resets once
// the entry is stored; any failure leaves it awaiting a description.
func (s *timerServiceImpl) Save(ctx context.Context, userID, description string) (*domain.TimeEntry, error) {
	var created *domain.TimeEntry
	_, err := s.with(userID, "save", func(t *timer.Timer) error {
		draft, err := t.Draft(description)
		if err != nil {
			return err
		}
		created, err = s.entries.AddEntry(ctx, userID, draft, metrics.SourceTimer)
		if err != nil {
			return err
		}
		t.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
