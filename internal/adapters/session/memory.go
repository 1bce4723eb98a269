package session

import (
	"context"
	"sync"
	"time"

	"github.com/commitly/web/internal/domain"
	"github.com/commitly/web/internal/ports"
)

var _ ports.SessionStore = (*MemoryStore)(nil)

type memoryEntry struct {
	identity  domain.Identity
	expiresAt time.Time
}

// MemoryStore is an in-process session store for local development and
// tests. Expired entries are removed lazily on Load.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Save stores the identity under the token with the given TTL.
func (s *MemoryStore) Save(_ context.Context, token string, id domain.Identity, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{
		identity:  id,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// Load resolves a token back to its identity. An unknown or expired
// token yields domain.ErrSessionNotFound.
func (s *MemoryStore) Load(_ context.Context, token string) (domain.Identity, error) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return domain.Identity{}, domain.ErrSessionNotFound
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return domain.Identity{}, domain.ErrSessionNotFound
	}
	return entry.identity, nil
}

// Delete invalidates a token. Deleting an unknown token is not an error.
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
