// Package game defines the generator and matcher contracts shared by all
// mini-games, plus the registry that binds a game type to its pair.
// Adding a new game only requires implementing Generator and registering it
// with a matcher.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Difficulty selects the parameter set a generator uses.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Errors shared across game packages.
var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// ParseDifficulty parses a user-supplied difficulty string, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// AnswerKind distinguishes numeric from text answers.
type AnswerKind int

const (
	AnswerNumeric AnswerKind = iota
	AnswerText
)

// Answer is the canonical correct value of a puzzle. Immutable once set.
type Answer struct {
	Kind   AnswerKind
	Number int64
	Text   string
}

// NumericAnswer builds a numeric Answer.
func NumericAnswer(n int64) Answer {
	return Answer{Kind: AnswerNumeric, Number: n}
}

// TextAnswer builds a text Answer.
func TextAnswer(s string) Answer {
	return Answer{Kind: AnswerText, Text: s}
}

// Display returns the answer as shown to users when a game ends.
func (a Answer) Display() string {
	if a.Kind == AnswerNumeric {
		return fmt.Sprintf("%d", a.Number)
	}
	return a.Text
}

// Puzzle is the output of a generator: an opaque payload handed to the
// renderer, the canonical answer, and whether the safety fallback was used.
type Puzzle struct {
	Payload  any
	Answer   Answer
	Fallback bool
}

// Params carries the knobs a start command can set.
type Params struct {
	Difficulty Difficulty
	// Count is game-specific: emojis for memory, words for reverse.
	// Zero means the game's default.
	Count int
}

// Generator produces a puzzle payload plus its canonical answer.
// Generate must be deterministic given a seeded rng; it must never return a
// puzzle whose answer is ambiguous or outside the game's configured range.
type Generator interface {
	// Type returns the game type tag, e.g. "equation".
	Type() string

	Generate(rng *rand.Rand, p Params) (*Puzzle, error)
}

// Matcher decides whether a candidate chat message satisfies an answer.
// Implementations are pure functions of their arguments.
type Matcher interface {
	Match(ans Answer, candidate string) bool
}
