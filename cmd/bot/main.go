// Package main is the entry point for the Telegram mini-games bot.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"telegram-minigames-bot/internal/bot"
	"telegram-minigames-bot/internal/config"
	"telegram-minigames-bot/internal/game"
	"telegram-minigames-bot/internal/game/equation"
	"telegram-minigames-bot/internal/game/hidden"
	"telegram-minigames-bot/internal/game/mathquiz"
	"telegram-minigames-bot/internal/game/memory"
	"telegram-minigames-bot/internal/game/reverse"
	"telegram-minigames-bot/internal/game/session"
	"telegram-minigames-bot/internal/game/vowels"
	"telegram-minigames-bot/internal/pkg/db"
	"telegram-minigames-bot/internal/pkg/lock"
	"telegram-minigames-bot/internal/repository"
	"telegram-minigames-bot/internal/service"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	dbPool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// Initialize repository and run its migration
	chatConfigRepo := repository.NewChatConfigRepository(dbPool.Pool)
	if err := chatConfigRepo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize game registry and register generator/matcher pairs
	registry := game.NewRegistry()
	numeric := game.NumericMatcher{}
	text := game.TextMatcher{}

	for _, reg := range []struct {
		gen game.Generator
		m   game.Matcher
	}{
		{equation.New(nil), numeric},
		{hidden.New(), numeric},
		{mathquiz.New(), numeric},
		{memory.New(), text},
		{reverse.New(), text},
		{vowels.New(), text},
	} {
		if err := registry.Register(reg.gen, reg.m); err != nil {
			log.Fatal().Err(err).Str("game", reg.gen.Type()).Msg("Failed to register game")
		}
	}

	log.Info().
		Int("game_count", registry.Count()).
		Strs("games", registry.Types()).
		Msg("Games registered")

	// Initialize permission service and session engine
	permissions := service.NewPermissionService(cfg, chatConfigRepo)
	store := session.NewStore()
	controller := session.NewController(store, registry, permissions, nil)
	chatLock := lock.NewChatLock()

	// Initialize bot; bot.New binds the controller's expiry notifier
	telegramBot, err := bot.New(&bot.Dependencies{
		Config:      cfg,
		Controller:  controller,
		Registry:    registry,
		Permissions: permissions,
		ChatConfigs: chatConfigRepo,
		ChatLock:    chatLock,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start bot in a goroutine
	go func() {
		log.Info().Msg("Bot is starting...")
		telegramBot.Start()
	}()

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")

	telegramBot.Stop()
	log.Info().Msg("Bot stopped, goodbye")
}
