// Package handler provides Telegram bot command handlers.
package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"telegram-minigames-bot/internal/config"
	"telegram-minigames-bot/internal/game"
	"telegram-minigames-bot/internal/game/session"
	"telegram-minigames-bot/internal/pkg/lock"
	"telegram-minigames-bot/internal/render"
)

// GameHandler handles game start/stop commands and routes chat messages to
// the session controller.
type GameHandler struct {
	cfg        *config.Config
	controller *session.Controller
	registry   *game.Registry
	perms      session.PermissionChecker
	chatLock   *lock.ChatLock
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(
	cfg *config.Config,
	controller *session.Controller,
	registry *game.Registry,
	perms session.PermissionChecker,
	chatLock *lock.ChatLock,
) *GameHandler {
	return &GameHandler{
		cfg:        cfg,
		controller: controller,
		registry:   registry,
		perms:      perms,
		chatLock:   chatLock,
	}
}

// StartCommand returns a handler that starts the given game type.
// Usage shared by all games: /<game> [easy|medium|hard] [seconds] [count]
func (h *GameHandler) StartCommand(gameType string) tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.handleStart(c, gameType)
	}
}

func (h *GameHandler) handleStart(c tele.Context, gameType string) error {
	ctx := context.Background()
	sender := c.Sender()
	chat := c.Chat()
	if sender == nil || chat == nil {
		return nil
	}

	if !h.perms.HasElevated(ctx, sender.ID, chat.ID) {
		return c.Reply("❌ You need to be a game manager or bot admin to start games.")
	}

	params, duration, err := h.parseStartArgs(c.Args())
	if err != nil {
		return c.Reply(fmt.Sprintf("❌ %v\nUsage: /%s [easy|medium|hard] [seconds] [count]", err, gameType))
	}

	// Serializes simultaneous start commands so only one runs generation;
	// the loser sees the conflict immediately.
	if !h.chatLock.TryLock(chat.ID) {
		return c.Reply("A game is already being started in this chat.")
	}
	defer h.chatLock.Unlock(chat.ID)

	res, err := h.controller.Start(ctx, chat.ID, gameType, params, sender.ID, duration)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrConflict):
			return c.Reply("A game is already running in this chat. Use /endgame first.")
		case errors.Is(err, session.ErrUnknownGame):
			return c.Reply("❌ Unknown game.")
		default:
			log.Error().Err(err).Str("game", gameType).Int64("chat_id", chat.ID).
				Msg("Failed to start game")
			return c.Reply("❌ Could not start the game, please try again.")
		}
	}

	body, err := render.Payload(res.Payload)
	if err != nil {
		// The session exists but cannot be shown; tear it down.
		log.Error().Err(err).Str("game", gameType).Msg("Failed to render payload")
		_, _ = h.controller.Stop(ctx, chat.ID, sender.ID)
		return c.Reply("❌ Could not start the game, please try again.")
	}

	header := fmt.Sprintf("🎮 %s — %s", gameTitle(gameType), difficultyLabel(params.Difficulty))
	footer := render.Instructions(gameType)
	if !res.ExpiresAt.IsZero() {
		footer += fmt.Sprintf("\n⏱ You have %s.", duration)
	}
	if err := c.Send(header + "\n\n" + body + "\n\n" + footer); err != nil {
		return err
	}

	// The host gets the answer privately; a closed DM is not fatal to the
	// session, only the notification is skipped.
	if _, err := c.Bot().Send(&tele.User{ID: sender.ID},
		fmt.Sprintf("Answer for the %s game you started: %s", gameTitle(gameType), res.Answer.Display())); err != nil {
		log.Debug().Err(err).Int64("user_id", sender.ID).Msg("Failed to DM answer to host")
		_ = c.Send("ℹ️ Couldn't send you the answer privately — enable DMs from this bot.")
	}

	return nil
}

// parseStartArgs parses [difficulty] [seconds] [count] in any sensible
// order: the first non-numeric arg is the difficulty, the first number the
// duration, the second number the count.
func (h *GameHandler) parseStartArgs(args []string) (game.Params, time.Duration, error) {
	params := game.Params{Difficulty: game.DifficultyEasy}
	duration := h.cfg.Games.DefaultDuration()

	numbers := make([]int, 0, 2)
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			if n < 0 {
				return params, 0, fmt.Errorf("negative values are not allowed")
			}
			numbers = append(numbers, n)
			continue
		}
		d, err := game.ParseDifficulty(arg)
		if err != nil {
			return params, 0, err
		}
		params.Difficulty = d
	}

	if len(numbers) > 0 {
		duration = time.Duration(numbers[0]) * time.Second
	}
	if len(numbers) > 1 {
		params.Count = numbers[1]
	}

	return params, h.cfg.Games.ClampDuration(duration), nil
}

// HandleEndGame handles /endgame: stops the chat's active game and reveals
// the answer. Only the host or a game manager may stop a game.
func (h *GameHandler) HandleEndGame(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	chat := c.Chat()
	if sender == nil || chat == nil {
		return nil
	}

	answer, err := h.controller.Stop(ctx, chat.ID, sender.ID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			return c.Reply("No active game found to stop.")
		case errors.Is(err, session.ErrUnauthorized):
			return c.Reply("❌ Only the game host or a game manager can stop the game.")
		default:
			return c.Reply("❌ Could not stop the game.")
		}
	}

	return c.Send(fmt.Sprintf("🛑 Game stopped. The answer was: %s", answer.Display()))
}

// HandleGames handles /games: lists the available game commands.
func (h *GameHandler) HandleGames(c tele.Context) error {
	msg := "🎮 Available games:\n"
	for _, t := range sortedTypes(h.registry) {
		msg += fmt.Sprintf("/%s — %s\n", t, gameTitle(t))
	}
	msg += "\nStart with /<game> [easy|medium|hard] [seconds] [count]\nStop with /endgame"
	return c.Send(msg)
}

// HandleAnswer routes every plain text message to the session controller.
// Messages in chats without an active game, bot messages, and wrong
// guesses are all silently ignored.
func (h *GameHandler) HandleAnswer(c tele.Context) error {
	sender := c.Sender()
	chat := c.Chat()
	msg := c.Message()
	if sender == nil || chat == nil || msg == nil {
		return nil
	}

	outcome := h.controller.Submit(chat.ID, sender.ID, sender.IsBot, msg.Text)
	if outcome == nil {
		return nil
	}

	name := sender.Username
	if name == "" {
		name = sender.FirstName
	}
	return c.Send(fmt.Sprintf(
		"🎉 %s wins the %s game!\nAnswer: %s\nTime: %.2fs",
		name, gameTitle(outcome.GameType), outcome.Answer.Display(),
		outcome.Elapsed.Seconds(),
	))
}

func difficultyLabel(d game.Difficulty) string {
	switch d {
	case game.DifficultyMedium:
		return "Medium"
	case game.DifficultyHard:
		return "Hard"
	default:
		return "Easy"
	}
}

func gameTitle(gameType string) string {
	switch gameType {
	case "equation":
		return "Emoji Equation"
	case "memory":
		return "Memory"
	case "hidden":
		return "Hidden Number"
	case "math":
		return "Quick Math"
	case "reverse":
		return "Reverse"
	case "vowels":
		return "Missing Vowels"
	default:
		return gameType
	}
}

func sortedTypes(r *game.Registry) []string {
	// Stable command listing regardless of registration order.
	known := []string{"equation", "memory", "hidden", "math", "reverse", "vowels"}
	out := make([]string, 0, r.Count())
	for _, t := range known {
		if _, ok := r.Get(t); ok {
			out = append(out, t)
		}
	}
	for _, t := range r.Types() {
		if !containsStr(known, t) {
			out = append(out, t)
		}
	}
	return out
}

func containsStr(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
