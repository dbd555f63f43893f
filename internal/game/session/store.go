package session

import (
	"errors"
	"sync"
)

// Store errors.
var (
	// ErrConflict is returned when a chat already has an active session.
	ErrConflict = errors.New("a game is already active in this chat")
)

// Store is the in-memory map of active sessions, keyed by chat ID.
// A session is Active iff it is present in the store; terminal sessions
// are removed immediately and never retained.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*Session),
	}
}

// TryCreate atomically inserts the session unless its chat already has one.
// It never overwrites; callers surface ErrConflict to the user.
func (st *Store) TryCreate(s *Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, exists := st.sessions[s.ChatID]; exists {
		return ErrConflict
	}
	st.sessions[s.ChatID] = s
	return nil
}

// Get returns the active session for a chat, if any.
func (st *Store) Get(chatID int64) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[chatID]
	return s, ok
}

// Remove deletes the chat's session only if it still carries the given
// token, reporting whether it did. This compare-and-delete is the
// linearization point for racing terminal transitions: the first caller
// to remove the entry owns the session's ending; everyone else observes
// false and takes the no-op path. A stale expiry token therefore can
// never remove a session that replaced the one which armed its timer.
func (st *Store) Remove(chatID int64, token string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[chatID]
	if !ok || s.Token != token {
		return false
	}
	delete(st.sessions, chatID)
	return true
}

// Len returns the number of active sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
