package services

import (
	"context"

	"github.com/rs/zerolog"

	"workhours/internal/accounting"
	"workhours/internal/domain"
	"workhours/internal/metrics"
	"workhours/internal/validation"
)

// entryServiceImpl implements the EntryService interface
type entryServiceImpl struct {
	store     domain.EntryStore
	validator *validation.TimeEntryValidator
	clock     accounting.Clock
	logger    zerolog.Logger
}

// NewEntryService creates a new EntryService instance
func NewEntryService(store domain.EntryStore, validator *validation.TimeEntryValidator, clock accounting.Clock, logger zerolog.Logger) EntryService {
	return &entryServiceImpl{
		store:     store,
		validator: validator,
		clock:     clock,
		logger:    logger,
	}
}

func (s *entryServiceImpl) CreateEntry(ctx context.Context, ownerID string, in validation.EntryInput, source string) (*domain.TimeEntry, error) {
	entry, err := s.validator.ParseEntryInput(in, s.today())
	if err != nil {
		metrics.EntriesRejected.WithLabelValues(source).Inc()
		return nil, err
	}
	return s.persist(ctx, ownerID, entry, source)
}

func (s *entryServiceImpl) AddEntry(ctx context.Context, ownerID string, entry domain.NewEntry, source string) (*domain.TimeEntry, error) {
	if err := s.validator.ValidateNewEntry(entry, s.today()); err != nil {
		metrics.EntriesRejected.WithLabelValues(source).Inc()
		return nil, err
	}
	return s.persist(ctx, ownerID, entry, source)
}

func (s *entryServiceImpl) persist(ctx context.Context, ownerID string, entry domain.NewEntry, source string) (*domain.TimeEntry, error) {
	created, err := s.store.CreateEntry(ctx, ownerID, entry)
	if err != nil {
		return nil, err
	}

	hours := accounting.EntryHours(*created)
	metrics.EntriesCreated.WithLabelValues(source).Inc()
	metrics.HoursRecorded.Add(hours)
	s.logger.Info().
		Str("entry_id", created.ID).
		Str("owner_id", ownerID).
		Str("date", created.Date.String()).
		Float64("hours", hours).
		Str("source", source).
		Msg("time entry created")
	return created, nil
}

func (s *entryServiceImpl) ListEntries(ctx context.Context, ownerID string) ([]domain.TimeEntry, error) {
	return s.store.ListEntries(ctx, ownerID)
}

func (s *entryServiceImpl) today() domain.Date {
	return domain.DateOf(s.clock.Now())
}
