// Package reverse implements the reversed-text game: players see a phrase
// and must type it backwards, character by character.
package reverse

import (
	"math/rand"
	"strings"

	"telegram-minigames-bot/internal/game"
	"telegram-minigames-bot/internal/game/words"
)

const (
	// GameType is the registry tag for this game.
	GameType = "reverse"

	// DefaultWordCount is used when the start command omits a count.
	DefaultWordCount = 2

	// MaxWordCount caps the phrase length.
	MaxWordCount = 5
)

// Payload carries the text shown to players.
type Payload struct {
	Original string
}

// Generator implements game.Generator for the reverse game.
type Generator struct{}

// New creates a reverse generator.
func New() *Generator {
	return &Generator{}
}

// Type returns the game type tag.
func (g *Generator) Type() string {
	return GameType
}

// Generate samples words in the difficulty's length band and reverses the
// joined phrase. The answer is the reversed text, matched case-insensitively.
func (g *Generator) Generate(rng *rand.Rand, p game.Params) (*game.Puzzle, error) {
	count := p.Count
	if count <= 0 {
		count = DefaultWordCount
	}
	if count > MaxWordCount {
		count = MaxWordCount
	}

	minLen, maxLen := lengthBand(p.Difficulty)
	pool := words.ByLength(minLen, maxLen)
	original := strings.Join(words.Sample(rng, pool, count), " ")

	return &game.Puzzle{
		Payload: &Payload{Original: original},
		Answer:  game.TextAnswer(reverseString(original)),
	}, nil
}

// lengthBand maps difficulty to the word-length band used when sampling.
func lengthBand(d game.Difficulty) (int, int) {
	switch d {
	case game.DifficultyMedium:
		return 5, 8
	case game.DifficultyHard:
		return 8, 15
	default:
		return 3, 5
	}
}

// reverseString reverses by rune so multi-byte characters survive.
func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
