package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wealthdesk/advisor-agent/pkg/log"
)

// Store keeps sessions keyed by caller-supplied ids. Nothing is shared across
// sessions and nothing is persisted; an expired or reset session simply
// starts over.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for the given id, creating it when absent.
// An empty id gets a freshly generated one; the id actually used is returned
// so the transport can echo it back to the caller.
func (st *Store) GetOrCreate(id string) (*Session, string) {
	if id == "" {
		id = uuid.NewString()
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[id]; ok {
		return s, id
	}

	s := newSession(id)
	st.sessions[id] = s
	return s, id
}

// Get returns the session for the given id if it exists.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	return s, ok
}

// Reset clears the session with the given id.
// Returns false when no such session exists.
func (st *Store) Reset(id string) bool {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return false
	}
	s.Reset()
	return true
}

// Count returns the number of live sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// PruneExpired drops sessions idle for longer than ttl and returns how many
// were removed. Scheduled from the entrypoint via cron.
func (st *Store) PruneExpired(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.LastActive().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Info("session: pruned %d expired session(s), %d remaining", removed, len(st.sessions))
	}
	return removed
}
