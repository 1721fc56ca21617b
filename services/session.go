package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Session is one browser's report session: the latest submitted snapshot, its
// rendered PDF and a guard allowing a single export operation at a time.
type Session struct {
	ID string

	mu       sync.Mutex
	snapshot *ReportSnapshot
	pdf      []byte
	lastSeen time.Time
	guard    *semaphore.Weighted
}

// TryBegin claims the session for a submit or share. It returns false while
// another one is still in flight.
func (s *Session) TryBegin() bool {
	return s.guard.TryAcquire(1)
}

// End releases the claim taken by TryBegin.
func (s *Session) End() {
	s.guard.Release(1)
}

// Report returns the current snapshot and its PDF, or nil if nothing has been submitted.
func (s *Session) Report() (*ReportSnapshot, []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, s.pdf
}

// Publish replaces the session's report with a newly submitted one.
func (s *Session) Publish(snap *ReportSnapshot, pdf []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
	s.pdf = pdf
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// SessionStore keeps sessions in memory. Sessions idle for longer than the TTL
// are dropped by EvictIdle and whenever a new session is created.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates an empty store.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// SetClock overrides the time source.
func (st *SessionStore) SetClock(now func() time.Time) {
	st.mu.Lock()
	st.now = now
	st.mu.Unlock()
}

// Get returns the live session with the given id.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	now := st.now()
	if st.ttl > 0 && sess.idleSince(now) > st.ttl {
		delete(st.sessions, id)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// Create starts a new session with a random id.
func (st *SessionStore) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	st.evictIdle(now)

	sess := &Session{
		ID:       uuid.NewString(),
		lastSeen: now,
		guard:    semaphore.NewWeighted(1),
	}
	st.sessions[sess.ID] = sess
	return sess
}

// Len returns the number of tracked sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// EvictIdle drops every session idle for longer than the TTL and returns how
// many were removed.
func (st *SessionStore) EvictIdle() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.evictIdle(st.now())
}

func (st *SessionStore) evictIdle(now time.Time) int {
	if st.ttl <= 0 {
		return 0
	}
	removed := 0
	for id, sess := range st.sessions {
		if sess.idleSince(now) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
