// Package bot provides middleware for the Telegram bot.
package bot

import (
	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"telegram-minigames-bot/internal/config"
)

// WhitelistMiddleware creates a middleware that checks if the chat is
// whitelisted. Private chats always pass; games are chat-scoped, so a
// private chat can at most receive answer DMs.
func WhitelistMiddleware(cfg *config.Config) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil {
				return nil
			}

			if chat.Type == tele.ChatPrivate {
				return next(c)
			}

			if !cfg.IsChatAllowed(chat.ID) {
				log.Debug().
					Int64("chat_id", chat.ID).
					Msg("Ignoring message from non-whitelisted chat")
				return nil
			}

			return next(c)
		}
	}
}

// AdminMiddleware creates a middleware that checks if the user is a bot
// admin.
func AdminMiddleware(cfg *config.Config) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if !cfg.IsAdmin(sender.ID) {
				log.Warn().
					Int64("user_id", sender.ID).
					Str("command", c.Text()).
					Msg("Non-admin attempted admin command")
				return c.Reply("❌ This command requires bot admin permission.")
			}

			return next(c)
		}
	}
}

// LoggingMiddleware creates a middleware that logs all incoming messages.
func LoggingMiddleware() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			chat := c.Chat()

			logEvent := log.Debug()
			if sender != nil {
				logEvent = logEvent.
					Int64("user_id", sender.ID).
					Str("username", sender.Username)
			}
			if chat != nil {
				logEvent = logEvent.
					Int64("chat_id", chat.ID).
					Str("chat_type", string(chat.Type))
			}
			logEvent.
				Str("text", c.Text()).
				Msg("Received message")

			return next(c)
		}
	}
}

// RecoveryMiddleware creates a middleware that recovers from panics.
func RecoveryMiddleware() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Interface("panic", r).
						Msg("Recovered from panic in handler")
					_ = c.Reply("❌ An internal error occurred, please try again.")
				}
			}()
			return next(c)
		}
	}
}
