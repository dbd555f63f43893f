package reverse

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-minigames-bot/internal/game"
)

func TestReverseString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a"},
		{"hello", "olleh"},
		{"hello world", "dlrow olleh"},
		{"héllo", "olléh"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reverseString(tt.in))
	}
}

func TestGenerate(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(17))

	for _, diff := range []game.Difficulty{game.DifficultyEasy, game.DifficultyMedium, game.DifficultyHard} {
		t.Run(string(diff), func(t *testing.T) {
			minLen, maxLen := lengthBand(diff)
			for i := 0; i < 100; i++ {
				puzzle, err := g.Generate(rng, game.Params{Difficulty: diff, Count: 3})
				require.NoError(t, err)

				p, ok := puzzle.Payload.(*Payload)
				require.True(t, ok)
				ws := strings.Split(p.Original, " ")
				require.Len(t, ws, 3)
				for _, w := range ws {
					assert.GreaterOrEqual(t, len(w), minLen)
					assert.LessOrEqual(t, len(w), maxLen)
				}

				require.Equal(t, game.AnswerText, puzzle.Answer.Kind)
				assert.Equal(t, p.Original, reverseString(puzzle.Answer.Text))
			}
		})
	}
}

func TestGenerateCountClamping(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(17))

	puzzle, err := g.Generate(rng, game.Params{})
	require.NoError(t, err)
	assert.Len(t, strings.Split(puzzle.Payload.(*Payload).Original, " "), DefaultWordCount)

	puzzle, err = g.Generate(rng, game.Params{Count: 100})
	require.NoError(t, err)
	assert.Len(t, strings.Split(puzzle.Payload.(*Payload).Original, " "), MaxWordCount)
}

func TestGenerateWinningMessage(t *testing.T) {
	g := New()
	rng := rand.New(rand.NewSource(23))
	m := game.TextMatcher{}

	puzzle, err := g.Generate(rng, game.Params{Difficulty: game.DifficultyMedium})
	require.NoError(t, err)
	p := puzzle.Payload.(*Payload)

	assert.True(t, m.Match(puzzle.Answer, reverseString(p.Original)))
	assert.True(t, m.Match(puzzle.Answer, strings.ToUpper(reverseString(p.Original))))
	assert.False(t, m.Match(puzzle.Answer, p.Original) && p.Original != reverseString(p.Original),
		"the unreversed phrase must not win unless palindromic")
}
