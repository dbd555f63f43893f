package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"telegram-minigames-bot/internal/game"
)

// Controller errors.
var (
	ErrUnknownGame  = errors.New("unknown game type")
	ErrNotFound     = errors.New("no active game in this chat")
	ErrUnauthorized = errors.New("only the game host or a game manager can stop the game")
)

// PermissionChecker reports whether a user holds the elevated game-management
// capability for a chat. Implementations may perform I/O; the controller only
// calls it outside its critical sections.
type PermissionChecker interface {
	HasElevated(ctx context.Context, userID, chatID int64) bool
}

// Notifier receives expiry announcements. Delivery is fire-and-forget: the
// session has already reached its terminal state when the notifier runs, and
// delivery failures do not roll anything back.
type Notifier interface {
	GameExpired(chatID int64, gameType string, answer game.Answer)
}

// StartResult reports a successfully started session to the caller, which
// renders the payload into the chat and privately messages the host the
// answer.
type StartResult struct {
	GameType  string
	Payload   any
	Answer    game.Answer
	Fallback  bool
	ExpiresAt time.Time // zero when no expiry timer was armed
}

// Outcome reports a won game.
type Outcome struct {
	GameType string
	WinnerID int64
	Answer   game.Answer
	Elapsed  time.Duration
}

// Controller orchestrates session creation, answer evaluation, explicit
// stops and timer expiry. All state transitions funnel through
// Store.Remove, so at most one terminal outcome ever commits per session.
type Controller struct {
	store    *Store
	registry *game.Registry
	perms    PermissionChecker
	notifier Notifier

	rngMu sync.Mutex
	rng   *rand.Rand

	now func() time.Time
}

// NewController creates a controller. The notifier may be bound later with
// SetNotifier, before the first Start.
func NewController(store *Store, registry *game.Registry, perms PermissionChecker, notifier Notifier) *Controller {
	return &Controller{
		store:    store,
		registry: registry,
		perms:    perms,
		notifier: notifier,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// SetNotifier binds the expiry notifier. Call before the first Start;
// transport wiring usually constructs the notifier after the controller.
func (c *Controller) SetNotifier(n Notifier) {
	c.notifier = n
}

// Start generates a puzzle and creates a session for the chat. It returns
// ErrConflict when the chat already has an active game and ErrUnknownGame
// for an unregistered type. Generation runs before the store insertion so
// no lock is held while the generator works. A positive duration arms a
// one-shot expiry timer; zero or negative arms none and the session lives
// until answered or stopped.
func (c *Controller) Start(ctx context.Context, chatID int64, gameType string, p game.Params, ownerID int64, duration time.Duration) (*StartResult, error) {
	entry, ok := c.registry.Get(gameType)
	if !ok {
		return nil, ErrUnknownGame
	}

	c.rngMu.Lock()
	puzzle, err := entry.Generator.Generate(c.rng, p)
	c.rngMu.Unlock()
	if err != nil {
		return nil, err
	}

	s := &Session{
		ChatID:    chatID,
		Token:     uuid.NewString(),
		GameType:  gameType,
		Answer:    puzzle.Answer,
		Payload:   puzzle.Payload,
		CreatedAt: c.now(),
		OwnerID:   ownerID,
		Duration:  duration,
	}

	var expiresAt time.Time
	if duration > 0 {
		// Armed before publication so no other goroutine can observe a
		// half-initialized timer field. A conflict below stops it again.
		token := s.Token
		s.timer = time.AfterFunc(duration, func() {
			c.OnExpiry(chatID, token)
		})
		expiresAt = s.CreatedAt.Add(duration)
	}

	if err := c.store.TryCreate(s); err != nil {
		if s.timer != nil {
			s.timer.Stop()
		}
		return nil, err
	}

	log.Info().
		Int64("chat_id", chatID).
		Str("game", gameType).
		Int64("owner_id", ownerID).
		Dur("duration", duration).
		Bool("fallback", puzzle.Fallback).
		Msg("Game session started")

	return &StartResult{
		GameType:  gameType,
		Payload:   puzzle.Payload,
		Answer:    puzzle.Answer,
		Fallback:  puzzle.Fallback,
		ExpiresAt: expiresAt,
	}, nil
}

// Submit evaluates an inbound chat message against the chat's active
// session. It returns nil when the message is not a winning attempt: no
// active session, bot author, non-matching text, or a lost race against a
// concurrent terminal transition. Non-matching messages leave no trace.
func (c *Controller) Submit(chatID, authorID int64, fromBot bool, text string) *Outcome {
	if fromBot {
		return nil
	}

	s, ok := c.store.Get(chatID)
	if !ok {
		return nil
	}

	entry, ok := c.registry.Get(s.GameType)
	if !ok {
		return nil
	}
	if !entry.Matcher.Match(s.Answer, text) {
		return nil
	}

	if !c.store.Remove(chatID, s.Token) {
		// Someone else (stop or expiry) committed first.
		return nil
	}
	s.finish(StateResolved)

	elapsed := c.now().Sub(s.CreatedAt)
	log.Info().
		Int64("chat_id", chatID).
		Str("game", s.GameType).
		Int64("winner_id", authorID).
		Dur("elapsed", elapsed).
		Msg("Game session resolved")

	return &Outcome{
		GameType: s.GameType,
		WinnerID: authorID,
		Answer:   s.Answer,
		Elapsed:  elapsed,
	}
}

// Stop cancels the chat's active session and reveals the answer. Only the
// session owner or a holder of the elevated capability may stop a game.
func (c *Controller) Stop(ctx context.Context, chatID, requesterID int64) (game.Answer, error) {
	s, ok := c.store.Get(chatID)
	if !ok {
		return game.Answer{}, ErrNotFound
	}

	if requesterID != s.OwnerID && !c.perms.HasElevated(ctx, requesterID, chatID) {
		return game.Answer{}, ErrUnauthorized
	}

	if !c.store.Remove(chatID, s.Token) {
		return game.Answer{}, ErrNotFound
	}
	s.finish(StateCancelled)

	log.Info().
		Int64("chat_id", chatID).
		Str("game", s.GameType).
		Int64("requester_id", requesterID).
		Msg("Game session cancelled")

	return s.Answer, nil
}

// OnExpiry is fired by a session's timer. The token identifies the session
// that armed the timer: if the chat's session has since been resolved,
// stopped, or replaced by a newer one, the removal fails and the call is a
// benign no-op. Otherwise the session expires and the notifier announces
// the revealed answer.
func (c *Controller) OnExpiry(chatID int64, token string) {
	s, ok := c.store.Get(chatID)
	if !ok || s.Token != token {
		return
	}
	if !c.store.Remove(chatID, token) {
		return
	}
	s.finish(StateExpired)

	log.Info().
		Int64("chat_id", chatID).
		Str("game", s.GameType).
		Msg("Game session expired")

	if c.notifier != nil {
		c.notifier.GameExpired(chatID, s.GameType, s.Answer)
	}
}
