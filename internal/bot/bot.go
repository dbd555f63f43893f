// Package bot provides the Telegram bot initialization and handler
// registration.
package bot

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"telegram-minigames-bot/internal/config"
	"telegram-minigames-bot/internal/game"
	"telegram-minigames-bot/internal/game/session"
	"telegram-minigames-bot/internal/handler"
	"telegram-minigames-bot/internal/pkg/lock"
	"telegram-minigames-bot/internal/repository"
)

// Bot wraps the telebot instance with application dependencies.
type Bot struct {
	bot        *tele.Bot
	cfg        *config.Config
	controller *session.Controller

	gameHandler  *handler.GameHandler
	adminHandler *handler.AdminHandler
}

// Dependencies holds everything the bot handlers need.
type Dependencies struct {
	Config      *config.Config
	Controller  *session.Controller
	Registry    *game.Registry
	Permissions session.PermissionChecker
	ChatConfigs *repository.ChatConfigRepository
	ChatLock    *lock.ChatLock
}

// New creates a new Bot instance with the given dependencies and binds the
// controller's expiry notifier to the Telegram transport.
func New(deps *Dependencies) (*Bot, error) {
	if deps.Config.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	pref := tele.Settings{
		Token:  deps.Config.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		bot:        teleBot,
		cfg:        deps.Config,
		controller: deps.Controller,
	}

	// Expired games announce their answer through the transport.
	deps.Controller.SetNotifier(&expiryNotifier{bot: teleBot})

	b.gameHandler = handler.NewGameHandler(deps.Config, deps.Controller, deps.Registry, deps.Permissions, deps.ChatLock)
	b.adminHandler = handler.NewAdminHandler(deps.ChatConfigs)

	b.registerMiddleware()
	b.registerHandlers(deps.Registry)

	return b, nil
}

// registerMiddleware registers all middleware.
func (b *Bot) registerMiddleware() {
	b.bot.Use(RecoveryMiddleware())
	b.bot.Use(WhitelistMiddleware(b.cfg))
	b.bot.Use(LoggingMiddleware())
}

// registerHandlers registers all command and text handlers.
func (b *Bot) registerHandlers(registry *game.Registry) {
	// One start command per registered game type.
	for _, t := range registry.Types() {
		b.bot.Handle("/"+t, b.gameHandler.StartCommand(t))
	}
	b.bot.Handle("/endgame", b.gameHandler.HandleEndGame)
	b.bot.Handle("/games", b.gameHandler.HandleGames)

	// Admin handlers (with admin middleware)
	adminGroup := b.bot.Group()
	adminGroup.Use(AdminMiddleware(b.cfg))
	adminGroup.Handle("/gamemgr_add", b.adminHandler.HandleManagerAdd)
	adminGroup.Handle("/gamemgr_del", b.adminHandler.HandleManagerRemove)
	adminGroup.Handle("/gamemgrs", b.adminHandler.HandleManagerList)

	// Every other text message is a potential answer.
	b.bot.Handle(tele.OnText, b.gameHandler.HandleAnswer)
}

// Start starts the bot polling.
func (b *Bot) Start() {
	log.Info().Msg("Starting bot...")
	b.bot.Start()
}

// Stop stops the bot gracefully.
func (b *Bot) Stop() {
	log.Info().Msg("Stopping bot...")
	b.bot.Stop()
}

// GetBot returns the underlying telebot instance.
func (b *Bot) GetBot() *tele.Bot {
	return b.bot
}

// expiryNotifier announces expired sessions in their chat. The session has
// already been removed when this runs; a failed send only loses the
// announcement.
type expiryNotifier struct {
	bot *tele.Bot
}

func (n *expiryNotifier) GameExpired(chatID int64, gameType string, answer game.Answer) {
	_, err := n.bot.Send(
		&tele.Chat{ID: chatID},
		fmt.Sprintf("⏰ Time is up! The answer was: %s", answer.Display()),
	)
	if err != nil {
		log.Warn().Err(err).Int64("chat_id", chatID).Str("game", gameType).
			Msg("Failed to announce expired game")
	}
}
