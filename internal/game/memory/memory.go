// Package memory implements the memory game: an emoji sequence is shown
// and players must retype it in order from memory.
package memory

import (
	"math/rand"
	"strings"

	"telegram-minigames-bot/internal/game"
)

const (
	// GameType is the registry tag for this game.
	GameType = "memory"

	// DefaultCount is the sequence length when the start command omits one.
	DefaultCount = 5

	// MinCount and MaxCount bound the sequence length.
	MinCount = 3
	MaxCount = 10
)

// emojiPool is the alphabet sequences are drawn from.
var emojiPool = []string{
	"🍎", "🍌", "🍇", "🍉", "🍒", "🍓", "🍍", "🥝", "🥑", "🥕",
	"🐶", "🐱", "🐭", "🐰", "🦊", "🐻", "🐼", "🐨", "🐯", "🦁",
	"⚽", "🏀", "🏈", "🎾", "🎱", "🚗", "🚌", "🚀", "⛵", "🚁",
	"🌹", "🌻", "🌙", "⭐", "🔥", "🎲", "🎁", "🎈", "🔔", "🎵",
}

// Payload carries the sequence shown to players.
type Payload struct {
	Sequence []string
}

// Generator implements game.Generator for the memory game.
type Generator struct{}

// New creates a memory generator.
func New() *Generator {
	return &Generator{}
}

// Type returns the game type tag.
func (g *Generator) Type() string {
	return GameType
}

// Generate draws a random emoji sequence of the requested length. The
// answer is the space-joined sequence; a winning message must repeat it
// exactly, in order.
func (g *Generator) Generate(rng *rand.Rand, p game.Params) (*game.Puzzle, error) {
	count := p.Count
	if count <= 0 {
		count = DefaultCount
	}
	if count < MinCount {
		count = MinCount
	}
	if count > MaxCount {
		count = MaxCount
	}

	seq := make([]string, count)
	for i := range seq {
		seq[i] = emojiPool[rng.Intn(len(emojiPool))]
	}

	return &game.Puzzle{
		Payload: &Payload{Sequence: seq},
		Answer:  game.TextAnswer(strings.Join(seq, " ")),
	}, nil
}
