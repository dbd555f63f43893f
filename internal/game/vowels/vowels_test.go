package vowels

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-minigames-bot/internal/game"
)

func TestMaskVowels(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		hidden int
	}{
		{"banana", "b_n_n_", 3},
		{"rhythm", "rhythm", 0},
		{"Orange", "_r_ng_", 3},
		{"", "", 0},
	}
	for _, tt := range tests {
		got, n := maskVowels(tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.hidden, n)
	}
}

func TestGenerate(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(31))

	for _, diff := range []game.Difficulty{game.DifficultyEasy, game.DifficultyMedium, game.DifficultyHard} {
		t.Run(string(diff), func(t *testing.T) {
			minLen, maxLen := lengthBand(diff)
			for i := 0; i < 100; i++ {
				puzzle, err := g.Generate(rng, game.Params{Difficulty: diff})
				require.NoError(t, err)

				require.Equal(t, game.AnswerText, puzzle.Answer.Kind)
				word := puzzle.Answer.Text
				assert.GreaterOrEqual(t, len(word), minLen)
				assert.LessOrEqual(t, len(word), maxLen)

				p, ok := puzzle.Payload.(*Payload)
				require.True(t, ok)
				assert.Len(t, p.Masked, len(word))
				assert.Contains(t, p.Masked, "_", "at least one vowel must be hidden")
				assert.False(t, strings.ContainsAny(strings.ToLower(p.Masked), "aeiou"), "masked %q leaks a vowel", p.Masked)

				// Non-vowel characters survive in place.
				masked, _ := maskVowels(word)
				assert.Equal(t, masked, p.Masked)
			}
		})
	}
}
