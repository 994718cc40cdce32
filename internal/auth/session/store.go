package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store maps opaque session ids to user ids.
type Store interface {
	Create(userID string) string
	Get(sessionID string) (string, bool)
	Delete(sessionID string)
	Stop()
}

type entry struct {
	userID    string
	expiresAt time.Time
}

// InMemoryStore keeps sessions in process memory with TTL eviction. Restarts
// log everyone out, which is acceptable for a single-instance deployment.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	s := &InMemoryStore{
		sessions: make(map[string]entry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (s *InMemoryStore) Create(userID string) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = entry{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return id
}

func (s *InMemoryStore) Get(sessionID string) (string, bool) {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.userID, true
}

func (s *InMemoryStore) Delete(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *InMemoryStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

func (s *InMemoryStore) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *InMemoryStore) evictExpired() {
	now := time.Now()

	s.mu.Lock()
	for id, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()
}
