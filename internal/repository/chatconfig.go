// Package repository provides data access layer implementations.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"telegram-minigames-bot/internal/model"
)

// Common errors for repository operations.
var (
	ErrChatNotFound = errors.New("chat config not found")
)

// ChatConfigRepository handles per-chat game configuration persistence.
type ChatConfigRepository struct {
	pool *pgxpool.Pool
}

// NewChatConfigRepository creates a new ChatConfigRepository instance.
func NewChatConfigRepository(pool *pgxpool.Pool) *ChatConfigRepository {
	return &ChatConfigRepository{pool: pool}
}

// Migrate creates the chat_configs table if it does not exist.
func (r *ChatConfigRepository) Migrate(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS chat_configs (
			chat_id BIGINT PRIMARY KEY,
			managers BIGINT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to migrate chat_configs: %w", err)
	}
	return nil
}

// Get retrieves a chat's configuration.
// Returns ErrChatNotFound if no row exists for the chat.
func (r *ChatConfigRepository) Get(ctx context.Context, chatID int64) (*model.ChatConfig, error) {
	const query = `
		SELECT chat_id, managers, created_at, updated_at
		FROM chat_configs
		WHERE chat_id = $1
	`

	var cfg model.ChatConfig
	err := r.pool.QueryRow(ctx, query, chatID).Scan(
		&cfg.ChatID,
		&cfg.Managers,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("failed to get chat config: %w", err)
	}

	return &cfg, nil
}

// AddManager grants a user the manager role in a chat, creating the chat
// row if needed. Adding an existing manager is a no-op.
func (r *ChatConfigRepository) AddManager(ctx context.Context, chatID, userID int64) error {
	const query = `
		INSERT INTO chat_configs (chat_id, managers, created_at, updated_at)
		VALUES ($1, ARRAY[$2]::BIGINT[], NOW(), NOW())
		ON CONFLICT (chat_id) DO UPDATE
		SET managers = (
			SELECT ARRAY(SELECT DISTINCT unnest(chat_configs.managers || $2::BIGINT))
		),
		updated_at = NOW()
	`
	if _, err := r.pool.Exec(ctx, query, chatID, userID); err != nil {
		return fmt.Errorf("failed to add manager: %w", err)
	}
	return nil
}

// RemoveManager revokes a user's manager role in a chat.
// Removing a non-manager is a no-op; a missing chat returns ErrChatNotFound.
func (r *ChatConfigRepository) RemoveManager(ctx context.Context, chatID, userID int64) error {
	const query = `
		UPDATE chat_configs
		SET managers = array_remove(managers, $2), updated_at = NOW()
		WHERE chat_id = $1
	`
	tag, err := r.pool.Exec(ctx, query, chatID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove manager: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrChatNotFound
	}
	return nil
}

// IsManager reports whether a user is a manager of a chat. A chat without
// a config row has no managers.
func (r *ChatConfigRepository) IsManager(ctx context.Context, chatID, userID int64) (bool, error) {
	const query = `
		SELECT $2 = ANY(managers)
		FROM chat_configs
		WHERE chat_id = $1
	`

	var isManager bool
	err := r.pool.QueryRow(ctx, query, chatID, userID).Scan(&isManager)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check manager: %w", err)
	}
	return isManager, nil
}

// ListManagers returns the managers of a chat, empty when the chat has no
// config row.
func (r *ChatConfigRepository) ListManagers(ctx context.Context, chatID int64) ([]int64, error) {
	cfg, err := r.Get(ctx, chatID)
	if err != nil {
		if errors.Is(err, ErrChatNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cfg.Managers, nil
}
