package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-minigames-bot/internal/game/equation"
	"telegram-minigames-bot/internal/game/hidden"
	"telegram-minigames-bot/internal/game/mathquiz"
	"telegram-minigames-bot/internal/game/memory"
	"telegram-minigames-bot/internal/game/reverse"
	"telegram-minigames-bot/internal/game/vowels"
)

func TestPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{
			"equation",
			&equation.Payload{
				Lines: []string{"🍎 + 🍎 = 10", "🍌 + 🍎 = 8"},
				Final: "🍎 + 🍌 = ?",
			},
			"🍎 + 🍎 = 10\n🍌 + 🍎 = 8\n\n🍎 + 🍌 = ?",
		},
		{
			"memory",
			&memory.Payload{Sequence: []string{"🍎", "🐶", "⚽"}},
			"🍎 🐶 ⚽",
		},
		{
			"hidden",
			&hidden.Payload{Rows: []string{"🟦 1️⃣ 🟩", "🟨 2️⃣ 🟪"}},
			"🟦 1️⃣ 🟩\n🟨 2️⃣ 🟪",
		},
		{
			"math",
			&mathquiz.Payload{Expression: "3 + 4 * 2 = ?"},
			"3 + 4 * 2 = ?",
		},
		{
			"reverse",
			&reverse.Payload{Original: "hello world"},
			"hello world",
		},
		{
			"vowels",
			&vowels.Payload{Masked: "b_n_n_"},
			"b_n_n_",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Payload(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayloadUnknownType(t *testing.T) {
	_, err := Payload(struct{}{})
	assert.ErrorIs(t, err, ErrUnknownPayload)
}

func TestInstructions(t *testing.T) {
	for _, gt := range []string{
		equation.GameType, memory.GameType, hidden.GameType,
		mathquiz.GameType, reverse.GameType, vowels.GameType, "other",
	} {
		assert.NotEmpty(t, Instructions(gt))
	}
	assert.NotEqual(t, Instructions(equation.GameType), Instructions("other"))
}
