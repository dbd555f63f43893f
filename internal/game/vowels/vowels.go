// Package vowels implements the missing-vowels game: a word is shown with
// its vowels blanked out and players must type the original word.
package vowels

import (
	"errors"
	"math/rand"
	"strings"

	"telegram-minigames-bot/internal/game"
	"telegram-minigames-bot/internal/game/words"
)

const (
	// GameType is the registry tag for this game.
	GameType = "vowels"

	// maxAttempts bounds the redraw loop for words without enough vowels.
	maxAttempts = 50
)

// ErrNoCandidate is returned when no sampled word contains a vowel.
var ErrNoCandidate = errors.New("no word with vowels found")

// Payload carries the masked word shown to players.
type Payload struct {
	Masked string
}

// Generator implements game.Generator for the vowels game.
type Generator struct{}

// New creates a vowels generator.
func New() *Generator {
	return &Generator{}
}

// Type returns the game type tag.
func (g *Generator) Type() string {
	return GameType
}

// Generate picks a word in the difficulty's length band and masks its
// vowels. Words without at least one vowel are redrawn; the answer is the
// original word, matched case-insensitively.
func (g *Generator) Generate(rng *rand.Rand, p game.Params) (*game.Puzzle, error) {
	minLen, maxLen := lengthBand(p.Difficulty)
	pool := words.ByLength(minLen, maxLen)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		word := pool[rng.Intn(len(pool))]
		masked, n := maskVowels(word)
		if n == 0 {
			continue
		}
		return &game.Puzzle{
			Payload: &Payload{Masked: masked},
			Answer:  game.TextAnswer(word),
		}, nil
	}
	return nil, ErrNoCandidate
}

// lengthBand maps difficulty to the word-length band used when sampling.
func lengthBand(d game.Difficulty) (int, int) {
	switch d {
	case game.DifficultyMedium:
		return 6, 8
	case game.DifficultyHard:
		return 8, 15
	default:
		return 4, 6
	}
}

// maskVowels replaces vowels with underscores, returning the masked word
// and how many characters were hidden.
func maskVowels(word string) (string, int) {
	var b strings.Builder
	hidden := 0
	for _, r := range word {
		if strings.ContainsRune("aeiouAEIOU", r) {
			b.WriteRune('_')
			hidden++
		} else {
			b.WriteRune(r)
		}
	}
	return b.String(), hidden
}
