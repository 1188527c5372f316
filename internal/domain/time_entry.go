package domain

import (
	"slices"
	"time"
)

// TimeEntry is one recorded work interval. Entries are immutable once stored.
type TimeEntry struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Date        Date      `json:"date"`
	StartTime   TimeOfDay `json:"start_time"`
	EndTime     TimeOfDay `json:"end_time"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEntry is the payload for creating an entry. The owner comes from the
// session and the id and creation time from the store.
type NewEntry struct {
	Date        Date      `json:"date"`
	StartTime   TimeOfDay `json:"start_time"`
	EndTime     TimeOfDay `json:"end_time"`
	Description string    `json:"description"`
}

// Materialize builds the stored form of a new entry.
func (n NewEntry) Materialize(id, ownerID string, createdAt time.Time) TimeEntry {
	return TimeEntry{
		ID:          id,
		OwnerID:     ownerID,
		Date:        n.Date,
		StartTime:   n.StartTime,
		EndTime:     n.EndTime,
		Description: n.Description,
		CreatedAt:   createdAt,
	}
}

// SortEntriesForDisplay orders entries by date descending, then start time
// descending, which is the order stores return from ListEntries.
func SortEntriesForDisplay(entries []TimeEntry) {
	slices.SortStableFunc(entries, func(a, b TimeEntry) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return b.StartTime.Minutes() - a.StartTime.Minutes()
	})
}
