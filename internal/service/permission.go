// Package service provides application services on top of the repositories.
package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"telegram-minigames-bot/internal/config"
)

// ManagerChecker is the repository surface the permission service needs.
type ManagerChecker interface {
	IsManager(ctx context.Context, chatID, userID int64) (bool, error)
}

// PermissionService decides who holds the elevated game-management
// capability: bot admins (configuration) and per-chat managers (database).
// It implements the session controller's PermissionChecker.
type PermissionService struct {
	cfg      *config.Config
	managers ManagerChecker
}

// NewPermissionService creates a new PermissionService.
func NewPermissionService(cfg *config.Config, managers ManagerChecker) *PermissionService {
	return &PermissionService{
		cfg:      cfg,
		managers: managers,
	}
}

// HasElevated reports whether the user may manage games in the chat.
// Database errors fail closed: the user is treated as not elevated.
func (s *PermissionService) HasElevated(ctx context.Context, userID, chatID int64) bool {
	if s.cfg.IsAdmin(userID) {
		return true
	}
	if s.managers == nil {
		return false
	}

	ok, err := s.managers.IsManager(ctx, chatID, userID)
	if err != nil {
		log.Warn().
			Err(err).
			Int64("chat_id", chatID).
			Int64("user_id", userID).
			Msg("Manager lookup failed, denying elevated capability")
		return false
	}
	return ok
}
