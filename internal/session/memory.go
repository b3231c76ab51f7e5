package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    uint64
	expiresAt time.Time
}

// MemoryStore is an in-process Store for tests and single-node development.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Create(_ context.Context, userID uint64, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memoryEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[token]
	if !ok {
		return 0, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, token)
		return 0, ErrNotFound
	}
	return entry.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
