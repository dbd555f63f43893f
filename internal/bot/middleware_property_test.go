package bot

import (
	"testing"

	"pgregory.net/rapid"

	"telegram-minigames-bot/internal/config"
)

// TestWhitelistEnforcementProperty checks that a chat passes the whitelist
// exactly when the whitelist is empty or contains the chat's ID.
func TestWhitelistEnforcementProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numChats := rapid.IntRange(0, 10).Draw(t, "numChats")
		chats := make([]int64, numChats)
		allowed := make(map[int64]bool, numChats)
		for i := range chats {
			chats[i] = rapid.Int64Range(-1_000_000_000, -1).Draw(t, "chatID")
			allowed[chats[i]] = true
		}

		cfg := &config.Config{
			Whitelist: config.WhitelistConfig{Chats: chats},
		}

		probe := rapid.Int64Range(-1_000_000_000, -1).Draw(t, "probe")
		want := numChats == 0 || allowed[probe]
		if got := cfg.IsChatAllowed(probe); got != want {
			t.Fatalf("IsChatAllowed(%d)=%v, want %v (whitelist %v)", probe, got, want, chats)
		}

		// A whitelisted chat is always allowed.
		if numChats > 0 {
			idx := rapid.IntRange(0, numChats-1).Draw(t, "idx")
			if !cfg.IsChatAllowed(chats[idx]) {
				t.Fatalf("whitelisted chat %d rejected", chats[idx])
			}
		}
	})
}
