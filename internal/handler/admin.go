package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"telegram-minigames-bot/internal/repository"
)

// AdminHandler handles chat-manager administration commands. These are
// registered behind the admin middleware, so only bot admins reach them.
type AdminHandler struct {
	chatConfigs *repository.ChatConfigRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(chatConfigs *repository.ChatConfigRepository) *AdminHandler {
	return &AdminHandler{chatConfigs: chatConfigs}
}

// targetUser resolves the command target: a replied-to message's sender, or
// a numeric user ID argument.
func targetUser(c tele.Context) (int64, error) {
	if msg := c.Message(); msg != nil && msg.ReplyTo != nil && msg.ReplyTo.Sender != nil {
		return msg.ReplyTo.Sender.ID, nil
	}
	args := c.Args()
	if len(args) < 1 {
		return 0, fmt.Errorf("reply to a user or pass a user ID")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID %q", args[0])
	}
	return id, nil
}

// HandleManagerAdd handles /gamemgr_add: grants a user the game-manager
// role in the current chat.
func (h *AdminHandler) HandleManagerAdd(c tele.Context) error {
	ctx := context.Background()
	chat := c.Chat()
	if chat == nil {
		return nil
	}

	userID, err := targetUser(c)
	if err != nil {
		return c.Reply(fmt.Sprintf("❌ %v\nUsage: /gamemgr_add <user_id> (or reply to a message)", err))
	}

	if err := h.chatConfigs.AddManager(ctx, chat.ID, userID); err != nil {
		log.Error().Err(err).Int64("chat_id", chat.ID).Int64("user_id", userID).
			Msg("Failed to add game manager")
		return c.Reply("❌ Could not add the manager, please try again.")
	}

	return c.Reply(fmt.Sprintf("✅ User %d can now manage games in this chat.", userID))
}

// HandleManagerRemove handles /gamemgr_del: revokes a user's game-manager
// role in the current chat.
func (h *AdminHandler) HandleManagerRemove(c tele.Context) error {
	ctx := context.Background()
	chat := c.Chat()
	if chat == nil {
		return nil
	}

	userID, err := targetUser(c)
	if err != nil {
		return c.Reply(fmt.Sprintf("❌ %v\nUsage: /gamemgr_del <user_id> (or reply to a message)", err))
	}

	if err := h.chatConfigs.RemoveManager(ctx, chat.ID, userID); err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return c.Reply("This chat has no game managers.")
		}
		log.Error().Err(err).Int64("chat_id", chat.ID).Int64("user_id", userID).
			Msg("Failed to remove game manager")
		return c.Reply("❌ Could not remove the manager, please try again.")
	}

	return c.Reply(fmt.Sprintf("✅ User %d is no longer a game manager in this chat.", userID))
}

// HandleManagerList handles /gamemgrs: lists the chat's game managers.
func (h *AdminHandler) HandleManagerList(c tele.Context) error {
	ctx := context.Background()
	chat := c.Chat()
	if chat == nil {
		return nil
	}

	managers, err := h.chatConfigs.ListManagers(ctx, chat.ID)
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chat.ID).Msg("Failed to list game managers")
		return c.Reply("❌ Could not list managers, please try again.")
	}
	if len(managers) == 0 {
		return c.Reply("This chat has no game managers. Bot admins can always manage games.")
	}

	ids := make([]string, len(managers))
	for i, id := range managers {
		ids[i] = strconv.FormatInt(id, 10)
	}
	return c.Reply("Game managers: " + strings.Join(ids, ", "))
}
