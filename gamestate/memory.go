package gamestate

import (
	"sync"
	"time"
)

type memoryEntry struct {
	state     GameState
	expiresAt time.Time
}

// MemoryStore is an in-process Store used in tests and redis-less
// development setups
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store and starts its expiry
// sweeper
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
	go s.sweep()
	return s
}

func (s *MemoryStore) Get(token string) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[token]
	if !exists || s.now().After(entry.expiresAt) {
		delete(s.entries, token)
		return nil, ErrNotFound
	}

	state := entry.state
	return &state, nil
}

func (s *MemoryStore) Save(state *GameState, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[state.Token] = memoryEntry{state: *state, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, token)
	return nil
}

func (s *MemoryStore) sweep() {
	for {
		time.Sleep(time.Minute)
		now := s.now()

		s.mu.Lock()
		for token, entry := range s.entries {
			if now.After(entry.expiresAt) {
				delete(s.entries, token)
			}
		}
		s.mu.Unlock()
	}
}
