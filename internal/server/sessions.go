package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pdrpinto/waterjug"
)

var errTooManySessions = errors.New("too many open sessions")

// session wraps a stepper, which is not safe for concurrent use.
type session struct {
	mu       sync.Mutex
	stepper  *waterjug.Stepper
	lastUsed time.Time
}

func (s *session) step(now time.Time) waterjug.StepSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = now

	return s.stepper.Step()
}

// stale reports whether the session can be evicted: its search is finished
// or nobody has stepped it for longer than ttl.
func (s *session) stale(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stepper.Done() || (ttl > 0 && now.Sub(s.lastUsed) > ttl)
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	// no limit when <= 0
	max int
	ttl time.Duration
	now func() time.Time
}

func newSessionStore(maxSessions int, ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		max:      maxSessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// create stores a new session. When the store is full, finished and idle
// sessions are evicted first.
func (s *sessionStore) create(stepper *waterjug.Stepper) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.max > 0 && len(s.sessions) >= s.max {
		s.evictLocked(now)
	}
	if s.max > 0 && len(s.sessions) >= s.max {
		return "", errTooManySessions
	}
	id := uuid.NewString()
	s.sessions[id] = &session{stepper: stepper, lastUsed: now}

	return id, nil
}

func (s *sessionStore) evictLocked(now time.Time) {
	for id, sess := range s.sessions {
		if sess.stale(now, s.ttl) {
			delete(s.sessions, id)
		}
	}
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]

	return sess, ok
}

// step advances a session and marks it as used.
func (s *sessionStore) step(sess *session) waterjug.StepSnapshot {
	return sess.step(s.now())
}

func (s *sessionStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)

	return true
}
