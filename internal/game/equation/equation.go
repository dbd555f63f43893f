// Package equation implements the cascading emoji-equation puzzle.
//
// The generated puzzle is a system of definition lines, one per symbol,
// ordered so that line i is the first line to mention symbol i and uses
// only symbols 0..i. A player can therefore solve the symbols strictly in
// the presented order, without simultaneous equations. All lines evaluate
// left to right with no operator precedence, which keeps the generator and
// the human mental model aligned.
package equation

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"telegram-minigames-bot/internal/game"
)

const (
	// GameType is the registry tag for this game.
	GameType = "equation"

	// DefaultMaxAttempts bounds the generate-and-reject loop.
	DefaultMaxAttempts = 200
)

// ErrNoSettings is returned for a difficulty without a parameter set.
var ErrNoSettings = errors.New("no equation settings for difficulty")

// Settings are the per-difficulty generation parameters.
type Settings struct {
	Variables    int      // distinct symbols, one definition line each
	Operators    []string // allowed operators for lines after the first
	AnswerMin    int64    // inclusive final-answer range
	AnswerMax    int64
	MaxTermValue int64 // symbol values are drawn from [1, MaxTermValue]
	FinalTerms   int   // term count of the final line
}

// defaultSettings mirrors the difficulty table of the original game.
var defaultSettings = map[game.Difficulty]Settings{
	game.DifficultyEasy: {
		Variables:    3,
		Operators:    []string{"+"},
		AnswerMin:    10,
		AnswerMax:    20,
		MaxTermValue: 10,
		FinalTerms:   3,
	},
	game.DifficultyMedium: {
		Variables:    3,
		Operators:    []string{"+", "-"},
		AnswerMin:    30,
		AnswerMax:    70,
		MaxTermValue: 20,
		FinalTerms:   3,
	},
	game.DifficultyHard: {
		Variables:    4,
		Operators:    []string{"+", "-", "*"},
		AnswerMin:    80,
		AnswerMax:    140,
		MaxTermValue: 30,
		FinalTerms:   4,
	},
}

// symbolPool is the fixed pool definition lines draw from.
var symbolPool = []string{
	"🍎", "🍌", "🍇", "🍉", "🍒", "🍓", "🍍", "🥝", "🥑", "🍆",
	"🥕", "🌽", "🥦", "🍄", "🥜", "🌰", "🍞", "🥐", "🥖", "🥨",
	"🧀", "🍔", "🍟", "🍕", "🌭", "🌮", "🍋", "🍊", "🍐", "🍑",
	"🥭", "🥥", "🥔", "🧄", "🧅", "🍿", "🍣", "🍤", "🍪", "🍩",
	"🍫", "🍭", "🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼",
	"🐨", "🐯", "🦁", "🐮", "🐷", "🐸", "🐵", "🐔", "🐧", "🦆",
	"⚽", "🏀", "🏈", "⚾", "🎾", "🎱", "🚗", "🚕", "🚌", "🚀",
}

// Payload is the rendered artifact of a generated puzzle.
type Payload struct {
	Lines []string // definition lines, "🍎 + 🍎 = 10"
	Final string   // final line with placeholder, "🍎 + 🍌 = ?"

	// Symbols and Values record the solution for replay verification.
	Symbols []string
	Values  map[string]int64
}

// Config holds optional generator overrides.
type Config struct {
	MaxAttempts int
	Settings    map[game.Difficulty]Settings
}

// Generator implements game.Generator for the equation puzzle.
type Generator struct {
	maxAttempts int
	settings    map[game.Difficulty]Settings
	fallbacks   atomic.Int64
}

// New creates an equation generator. A nil config uses the defaults.
func New(cfg *Config) *Generator {
	g := &Generator{
		maxAttempts: DefaultMaxAttempts,
		settings:    defaultSettings,
	}
	if cfg != nil {
		if cfg.MaxAttempts > 0 {
			g.maxAttempts = cfg.MaxAttempts
		}
		if cfg.Settings != nil {
			g.settings = cfg.Settings
		}
	}
	return g
}

// Type returns the game type tag.
func (g *Generator) Type() string {
	return GameType
}

// FallbackCount reports how many times generation exhausted its attempt
// budget and served the safety puzzle.
func (g *Generator) FallbackCount() int64 {
	return g.fallbacks.Load()
}

// Generate builds a puzzle for the requested difficulty. It retries up to
// the attempt bound when the final answer lands outside the configured
// range or the final line textually duplicates a definition line, and
// falls back to a fixed trivial puzzle when the budget is exhausted.
func (g *Generator) Generate(rng *rand.Rand, p game.Params) (*game.Puzzle, error) {
	st, ok := g.settings[p.Difficulty]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSettings, p.Difficulty)
	}

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if puzzle := g.attempt(rng, st); puzzle != nil {
			return puzzle, nil
		}
	}

	g.fallbacks.Add(1)
	log.Warn().
		Str("difficulty", string(p.Difficulty)).
		Int("attempts", g.maxAttempts).
		Msg("Equation generation exhausted retries, serving fallback puzzle")
	return fallbackPuzzle(), nil
}

// attempt runs one generation pass, returning nil on rejection.
func (g *Generator) attempt(rng *rand.Rand, st Settings) *game.Puzzle {
	symbols := pickSymbols(rng, st.Variables)
	values := make(map[string]int64, st.Variables)
	for _, s := range symbols {
		values[s] = rng.Int63n(st.MaxTermValue) + 1
	}

	lines := make([]string, 0, st.Variables+1)
	leftSides := make([]string, 0, st.Variables)
	for i := range symbols {
		terms, ops := g.definitionLine(rng, st, symbols, i)
		lhs := joinExpr(terms, ops)
		val := evalLeftToRight(terms, ops, values)
		lines = append(lines, fmt.Sprintf("%s = %d", lhs, val))
		leftSides = append(leftSides, lhs)
	}

	finalTerms := make([]string, st.FinalTerms)
	finalOps := make([]string, st.FinalTerms-1)
	for i := range finalTerms {
		finalTerms[i] = symbols[rng.Intn(len(symbols))]
	}
	for i := range finalOps {
		finalOps[i] = st.Operators[rng.Intn(len(st.Operators))]
	}

	answer := evalLeftToRight(finalTerms, finalOps, values)
	if answer < st.AnswerMin || answer > st.AnswerMax {
		return nil
	}

	finalLHS := joinExpr(finalTerms, finalOps)
	for _, lhs := range leftSides {
		// Presentation uniqueness: only exact textual equality against a
		// definition line rejects; reordered near-duplicates are allowed.
		if lhs == finalLHS {
			return nil
		}
	}

	return &game.Puzzle{
		Payload: &Payload{
			Lines:   lines,
			Final:   finalLHS + " = ?",
			Symbols: symbols,
			Values:  values,
		},
		Answer: game.NumericAnswer(answer),
	}
}

// definitionLine builds the terms and operators of definition line i.
// Line 0 repeats symbol 0 with non-cancelling operators so it cannot
// self-cancel; line i>0 contains exactly one occurrence of symbol i plus
// terms drawn from the already-defined symbols, shuffled so the new symbol
// is not always first.
func (g *Generator) definitionLine(rng *rand.Rand, st Settings, symbols []string, i int) ([]string, []string) {
	termCount := rng.Intn(2) + 2

	var terms []string
	var opSet []string
	if i == 0 {
		terms = make([]string, termCount)
		for k := range terms {
			terms[k] = symbols[0]
		}
		opSet = []string{"+"}
		if containsOp(st.Operators, "*") {
			opSet = []string{"+", "*"}
		}
	} else {
		terms = make([]string, 0, termCount)
		terms = append(terms, symbols[i])
		for k := 1; k < termCount; k++ {
			terms = append(terms, symbols[rng.Intn(i)])
		}
		rng.Shuffle(len(terms), func(a, b int) {
			terms[a], terms[b] = terms[b], terms[a]
		})
		opSet = st.Operators
	}

	ops := make([]string, len(terms)-1)
	for k := range ops {
		ops[k] = opSet[rng.Intn(len(opSet))]
	}
	return terms, ops
}

// pickSymbols draws n distinct symbols from the pool.
func pickSymbols(rng *rand.Rand, n int) []string {
	perm := rng.Perm(len(symbolPool))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = symbolPool[perm[i]]
	}
	return out
}

// evalLeftToRight evaluates terms and operators strictly left to right.
func evalLeftToRight(terms, ops []string, values map[string]int64) int64 {
	acc := values[terms[0]]
	for k, op := range ops {
		v := values[terms[k+1]]
		switch op {
		case "+":
			acc += v
		case "-":
			acc -= v
		case "*":
			acc *= v
		}
	}
	return acc
}

// joinExpr renders terms and operators as "a op b op c".
func joinExpr(terms, ops []string) string {
	var b strings.Builder
	b.WriteString(terms[0])
	for k, op := range ops {
		b.WriteString(" ")
		b.WriteString(op)
		b.WriteString(" ")
		b.WriteString(terms[k+1])
	}
	return b.String()
}

func containsOp(ops []string, op string) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

// fallbackPuzzle is the fixed trivial puzzle served when generation
// exhausts its retry budget. Always solvable, known answer.
func fallbackPuzzle() *game.Puzzle {
	s := symbolPool[0]
	return &game.Puzzle{
		Payload: &Payload{
			Lines:   []string{fmt.Sprintf("%s + %s = 10", s, s)},
			Final:   fmt.Sprintf("%s + %s + %s = ?", s, s, s),
			Symbols: []string{s},
			Values:  map[string]int64{s: 5},
		},
		Answer:   game.NumericAnswer(15),
		Fallback: true,
	}
}
