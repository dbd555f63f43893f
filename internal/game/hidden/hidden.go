// Package hidden implements the hidden-number game: the digits of a target
// number are buried in reading order inside a grid of emoji noise, and
// players must spot them and type the number.
package hidden

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"telegram-minigames-bot/internal/game"
)

// GameType is the registry tag for this game.
const GameType = "hidden"

// noisePool fills the grid cells that do not hold a digit.
var noisePool = []string{
	"🟦", "🟩", "🟨", "🟧", "🟪", "⬜", "🔷", "🔶", "🔵", "🟢",
	"🌸", "🍀", "🌀", "✨", "❄️", "🌊", "🍂", "🌲", "🪨", "☁️",
}

// Payload carries the grid shown to players, one string per row.
type Payload struct {
	Rows []string
}

type settings struct {
	rows, cols int
	min, max   int64 // inclusive target range
}

// settingsFor maps difficulty to grid size and target magnitude.
func settingsFor(d game.Difficulty) settings {
	switch d {
	case game.DifficultyMedium:
		return settings{rows: 4, cols: 8, min: 100, max: 999}
	case game.DifficultyHard:
		return settings{rows: 5, cols: 10, min: 1000, max: 9999}
	default:
		return settings{rows: 3, cols: 6, min: 10, max: 99}
	}
}

// Generator implements game.Generator for the hidden-number game.
type Generator struct{}

// New creates a hidden-number generator.
func New() *Generator {
	return &Generator{}
}

// Type returns the game type tag.
func (g *Generator) Type() string {
	return GameType
}

// Generate picks a target in the difficulty's range and scatters its
// digits across the grid at increasing cell offsets, so reading the grid
// left to right, top to bottom yields the digits in order.
func (g *Generator) Generate(rng *rand.Rand, p game.Params) (*game.Puzzle, error) {
	st := settingsFor(p.Difficulty)

	target := st.min + rng.Int63n(st.max-st.min+1)
	digits := strings.Split(strconv.FormatInt(target, 10), "")

	cellCount := st.rows * st.cols
	positions := rng.Perm(cellCount)[:len(digits)]
	sort.Ints(positions)

	cells := make([]string, cellCount)
	for i := range cells {
		cells[i] = noisePool[rng.Intn(len(noisePool))]
	}
	for i, pos := range positions {
		cells[pos] = digitKeycap(digits[i])
	}

	rows := make([]string, st.rows)
	for r := 0; r < st.rows; r++ {
		rows[r] = strings.Join(cells[r*st.cols:(r+1)*st.cols], " ")
	}

	return &game.Puzzle{
		Payload: &Payload{Rows: rows},
		Answer:  game.NumericAnswer(target),
	}, nil
}

// digitKeycap renders a digit as its keycap emoji so it stands out from
// the noise just enough to be findable.
func digitKeycap(d string) string {
	return d + "️⃣"
}
