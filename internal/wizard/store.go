package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps live wizard sessions in memory. Sessions expire after the TTL
// measured from their last update; nothing survives a process restart, which
// matches the single-page lifetime of the wizard itself.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (st *Store) Create(now time.Time) *Session {
	s := newSession(uuid.NewString(), now)

	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id string, now time.Time) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}

	s.mu.Lock()
	expired := now.Sub(s.updatedAt) > st.ttl
	s.mu.Unlock()
	if expired {
		st.mu.Lock()
		delete(st.sessions, id)
		st.mu.Unlock()
		return nil, false
	}
	return s, true
}

// Sweep drops expired sessions and reports how many were removed. Run it
// periodically from a goroutine; Get already drops expired sessions lazily.
func (st *Store) Sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		expired := now.Sub(s.updatedAt) > st.ttl
		s.mu.Unlock()
		if expired {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
