package api

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"weathernow.app/internal/core/weather"
)

// DefaultSessionIdleTimeout applies when no idle timeout is configured
const DefaultSessionIdleTimeout = 30 * time.Minute

type sessionEntry struct {
	session  *weather.Session
	lastSeen time.Time
}

// SessionStore keeps one weather.Session per browser session id
type SessionStore struct {
	looker      weather.Looker
	idleTimeout time.Duration
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewSessionStore creates an empty store. Sessions idle longer than
// idleTimeout are pruned whenever a new session is created.
func NewSessionStore(looker weather.Looker, idleTimeout time.Duration) *SessionStore {
	if idleTimeout <= 0 {
		idleTimeout = DefaultSessionIdleTimeout
	}
	return &SessionStore{
		looker:      looker,
		idleTimeout: idleTimeout,
		now:         time.Now,
		sessions:    make(map[string]*sessionEntry),
	}
}

// Get returns the session for id and marks it as seen
func (s *SessionStore) Get(id string) (*weather.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = s.now()
	return entry.session, true
}

// Create starts a new Idle session and returns its id
func (s *SessionStore) Create() (string, *weather.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	id := uuid.NewString()
	session := weather.NewSession(s.looker)
	s.sessions[id] = &sessionEntry{session: session, lastSeen: now}
	return id, session
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) pruneLocked(now time.Time) {
	for id, entry := range s.sessions {
		// a session in flight is kept until its lookup settles
		if entry.session.State().IsLoading() {
			continue
		}
		if now.Sub(entry.lastSeen) > s.idleTimeout {
			delete(s.sessions, id)
		}
	}
}
