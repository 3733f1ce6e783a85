package tokens

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore is a process-lifetime allow-list. Restarting the process forgets every token.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]memoryEntry
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]memoryEntry),
		now:    time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, userID int64, hash string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[hash] = memoryEntry{userID: userID, expiresAt: expiresAt}
	s.sweepLocked()
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, hash string) (int64, error) {
	s.mu.RLock()
	entry, ok := s.tokens[hash]
	s.mu.RUnlock()

	if !ok || !s.now().Before(entry.expiresAt) {
		return 0, ErrNotFound
	}
	return entry.userID, nil
}

func (s *MemoryStore) Revoke(_ context.Context, hash string) error {
	s.mu.Lock()
	delete(s.tokens, hash)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) RevokeAllForUser(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for hash, entry := range s.tokens {
		if entry.userID == userID {
			delete(s.tokens, hash)
		}
	}
	return nil
}

func (s *MemoryStore) DeleteExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sweepLocked(), nil
}

// sweepLocked drops expired entries so the map does not grow without bound.
func (s *MemoryStore) sweepLocked() int64 {
	var n int64
	now := s.now()
	for hash, entry := range s.tokens {
		if !now.Before(entry.expiresAt) {
			delete(s.tokens, hash)
			n++
		}
	}
	return n
}
