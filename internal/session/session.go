// Package session keeps server-side login sessions. A session outlives
// nothing: logging out deletes it and an expired one is never returned.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned for unknown, deleted and expired sessions.
var ErrNotFound = errors.New("session not found")

// Session binds an issued token to a user.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store persists sessions.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
