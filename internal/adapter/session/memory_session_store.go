package session

import (
	"context"
	"sync"
	"time"

	"github.com/alexferreiraaf/osmaster/internal/domain/entities"
	"github.com/alexferreiraaf/osmaster/internal/usecase/interfaces"
)

type memoryEntry struct {
	user      entities.User
	email     string
	expiresAt time.Time
}

// MemorySessionStore is used when no Redis address is configured. Sessions
// do not survive a restart.
type MemorySessionStore struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]memoryEntry
}

var _ interfaces.ISessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{now: time.Now, entries: map[string]memoryEntry{}}
}

func (s *MemorySessionStore) Save(_ context.Context, token string, user entities.User, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionKeyPrefix+token] = memoryEntry{user: user, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(sessionKeyPrefix + token)
	if !ok {
		return entities.User{}, nil
	}
	return e.user, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionKeyPrefix+token)
	return nil
}

func (s *MemorySessionStore) SaveResetToken(_ context.Context, token, email string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[resetKeyPrefix+token] = memoryEntry{email: email, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) ConsumeResetToken(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(resetKeyPrefix + token)
	if !ok {
		return "", nil
	}
	delete(s.entries, resetKeyPrefix+token)
	return e.email, nil
}

// live must be called with mu held. Expired entries are dropped on access.
func (s *MemorySessionStore) live(key string) (memoryEntry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return memoryEntry{}, false
	}
	return e, true
}
