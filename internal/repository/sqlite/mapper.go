package sqlite

import (
	"fmt"

	"workhours/internal/domain"
)

// TimeEntryMapper converts between domain entries and table rows.
type TimeEntryMapper struct{}

// ToDatabase converts a domain TimeEntry to a row.
func (TimeEntryMapper) ToDatabase(e domain.TimeEntry) TimeEntry {
	return TimeEntry{
		ID:          e.ID,
		UserID:      e.OwnerID,
		Date:        e.Date.String(),
		StartTime:   e.StartTime.String(),
		EndTime:     e.EndTime.String(),
		Description: e.Description,
		CreatedAt:   FormatTimeForDB(e.CreatedAt),
	}
}

// FromDatabase converts a row to a domain TimeEntry.
func (TimeEntryMapper) FromDatabase(row TimeEntry) (domain.TimeEntry, error) {
	date, err := domain.ParseDate(row.Date)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("entry %s: date: %w", row.ID, err)
	}
	start, err := domain.ParseTimeOfDay(row.StartTime)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("entry %s: start_time: %w", row.ID, err)
	}
	end, err := domain.ParseTimeOfDay(row.EndTime)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("entry %s: end_time: %w", row.ID, err)
	}
	created, err := ParseTimeFromDB(row.CreatedAt)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("entry %s: created_at: %w", row.ID, err)
	}

	return domain.TimeEntry{
		ID:          row.ID,
		OwnerID:     row.UserID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Description: row.Description,
		CreatedAt:   created,
	}, nil
}

// FromDatabaseSlice converts rows, stopping at the first malformed row.
func (m TimeEntryMapper) FromDatabaseSlice(rows []*TimeEntry) ([]domain.TimeEntry, error) {
	entries := make([]domain.TimeEntry, 0, len(rows))
	for _, row := range rows {
		e, err := m.FromDatabase(*row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ProfileMapper converts between domain profiles and table rows.
type ProfileMapper struct{}

// ToDatabase converts a domain Profile to a row.
func (ProfileMapper) ToDatabase(p domain.Profile) Profile {
	return Profile{
		ID:           p.ID,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Role:         string(p.Role),
		PasswordHash: p.PasswordHash,
		CreatedAt:    FormatTimeForDB(p.CreatedAt),
	}
}

// FromDatabase converts a row to a domain Profile.
func (ProfileMapper) FromDatabase(row Profile) (domain.Profile, error) {
	created, err := ParseTimeFromDB(row.CreatedAt)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("profile %s: created_at: %w", row.ID, err)
	}
	return domain.Profile{
		ID:           row.ID,
		Username:     row.Username,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Role:         domain.Role(row.Role),
		PasswordHash: row.PasswordHash,
		CreatedAt:    created,
	}, nil
}

// FromDatabaseSlice converts rows, stopping at the first malformed row.
func (m ProfileMapper) FromDatabaseSlice(rows []*Profile) ([]domain.Profile, error) {
	profiles := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		p, err := m.FromDatabase(*row)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
