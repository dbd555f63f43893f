// Package session implements the chat-scoped game session engine: an
// in-memory store enforcing one active game per chat, and the lifecycle
// controller that arbitrates between a first correct answer, a host stop,
// and a timer expiry.
package session

import (
	"sync/atomic"
	"time"

	"telegram-minigames-bot/internal/game"
)

// State is the lifecycle state of a session. Resolved, Expired and
// Cancelled are terminal; a session never re-enters Active.
type State int32

const (
	StateActive State = iota
	StateResolved
	StateExpired
	StateCancelled
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateResolved:
		return "resolved"
	case StateExpired:
		return "expired"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Session is one active game instance bound to a chat. All fields except
// state and timer are immutable after creation; state and timer are only
// touched by whichever caller wins the store removal for this session.
type Session struct {
	ChatID    int64
	Token     string // identity of this session, checked at timer fire
	GameType  string
	Answer    game.Answer
	Payload   any
	CreatedAt time.Time
	OwnerID   int64
	Duration  time.Duration

	state atomic.Int32
	timer *time.Timer
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// finish records the terminal state and releases the expiry timer, if any.
// Callers must hold exclusive ownership, i.e. have won Store.Remove.
func (s *Session) finish(st State) {
	s.state.Store(int32(st))
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
