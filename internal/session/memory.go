package session

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryStore keeps sessions in a bounded LRU cache. When the cache is full
// the least recently used session is evicted, which logs that user out.
type MemoryStore struct {
	cache *lru.Cache[string, Session]
	now   func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store holding at most size sessions.
func NewMemoryStore(size int, now func() time.Time) (*MemoryStore, error) {
	cache, err := lru.New[string, Session](size)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{cache: cache, now: now}, nil
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	m.cache.Add(s.ID, s)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if s.Expired(m.now()) {
		m.cache.Remove(id)
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.cache.Remove(id)
	return nil
}

// Len reports the number of cached sessions, expired ones included.
func (m *MemoryStore) Len() int {
	return m.cache.Len()
}

func (m *MemoryStore) Close() error {
	m.cache.Purge()
	return nil
}
