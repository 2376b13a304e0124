package billing

import (
	"errors"
	"sync"
)

var ErrSessionNotFound = errors.New("billing session not found")

// Store holds open draft sessions in memory, keyed by session id. Drafts are
// transient: an unfinished bill does not survive a process restart, matching
// how the shopkeeper uses them (speak, review, complete, move on).
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

func (st *Store) Put(s *Session) {
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
}

// Get resolves a session scoped to its owner; another merchant's session id
// behaves exactly like a missing one.
func (st *Store) Get(id, userID string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok || s.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *Store) Remove(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
