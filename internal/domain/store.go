package domain

import "context"

// EntryStore persists time entries scoped to their owner.
type EntryStore interface {
	CreateEntry(ctx context.Context, ownerID string, entry NewEntry) (*TimeEntry, error)
	// ListEntries returns the owner's entries ordered by date descending,
	// then start time descending.
	ListEntries(ctx context.Context, ownerID string) ([]TimeEntry, error)
}

// ProfileStore persists user profiles.
type ProfileStore interface {
	CreateProfile(ctx context.Context, profile *Profile) error
	GetProfile(ctx context.Context, id string) (*Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (*Profile, error)
	// ListProfiles returns all profiles, newest first.
	ListProfiles(ctx context.Context) ([]Profile, error)
}

// Store is the full persistence backend.
type Store interface {
	EntryStore
	ProfileStore
	Ping(ctx context.Context) error
	Close() error
}
