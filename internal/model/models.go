// Package model defines the data models for the mini-games bot.
package model

import "time"

// ChatConfig holds the per-chat game configuration row. Managers are users
// who may start and stop games in the chat without being bot admins.
type ChatConfig struct {
	ChatID    int64     `db:"chat_id"`
	Managers  []int64   `db:"managers"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsManager reports whether the user is a manager of this chat.
func (c *ChatConfig) IsManager(userID int64) bool {
	for _, id := range c.Managers {
		if id == userID {
			return true
		}
	}
	return false
}
