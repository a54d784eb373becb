package application

import (
	"sync"

	"github.com/SamanGhn/Cloudflare-Dashboard/internal/domain"
)

// sessionStore owns all live conversation contexts, keyed by user ID. Each
// user's events are serialized through a per-user lock; different users'
// conversations run independently.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*domain.Session
	locks    map[int64]*sync.Mutex
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[int64]*domain.Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// lock acquires the user's conversation lock and returns the release func.
func (s *sessionStore) lock(userID int64) func() {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// start discards any previous context and begins a fresh session at the
// main menu.
func (s *sessionStore) start(userID int64, username string) *domain.Session {
	sess := &domain.Session{
		UserID:   userID,
		Username: username,
		State:    domain.StateMainMenu,
		Page:     1,
	}

	s.mu.Lock()
	s.sessions[userID] = sess
	s.mu.Unlock()

	return sess
}

func (s *sessionStore) get(userID int64) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

func (s *sessionStore) clear(userID int64) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}
