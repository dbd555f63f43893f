// Package mathquiz implements the quick-math game: an arithmetic expression
// evaluated strictly left to right, no operator precedence.
package mathquiz

import (
	"fmt"
	"math/rand"
	"strings"

	"telegram-minigames-bot/internal/game"
)

// GameType is the registry tag for this game.
const GameType = "math"

// Payload carries the expression shown to players.
type Payload struct {
	Expression string
}

type settings struct {
	terms      int
	maxOperand int64
	operators  []string
}

// settingsFor maps difficulty to term count, operand range, and operators.
func settingsFor(d game.Difficulty) settings {
	switch d {
	case game.DifficultyMedium:
		return settings{terms: 4, maxOperand: 25, operators: []string{"+", "-"}}
	case game.DifficultyHard:
		return settings{terms: 5, maxOperand: 12, operators: []string{"+", "-", "*"}}
	default:
		return settings{terms: 3, maxOperand: 10, operators: []string{"+"}}
	}
}

// Generator implements game.Generator for the quick-math game.
type Generator struct{}

// New creates a math generator.
func New() *Generator {
	return &Generator{}
}

// Type returns the game type tag.
func (g *Generator) Type() string {
	return GameType
}

// Generate builds a random expression and evaluates it left to right, the
// same way players are told to read it.
func (g *Generator) Generate(rng *rand.Rand, p game.Params) (*game.Puzzle, error) {
	st := settingsFor(p.Difficulty)

	operands := make([]int64, st.terms)
	for i := range operands {
		operands[i] = rng.Int63n(st.maxOperand) + 1
	}
	ops := make([]string, st.terms-1)
	for i := range ops {
		ops[i] = st.operators[rng.Intn(len(st.operators))]
	}

	answer := operands[0]
	var b strings.Builder
	fmt.Fprintf(&b, "%d", operands[0])
	for i, op := range ops {
		v := operands[i+1]
		switch op {
		case "+":
			answer += v
		case "-":
			answer -= v
		case "*":
			answer *= v
		}
		fmt.Fprintf(&b, " %s %d", op, v)
	}

	return &game.Puzzle{
		Payload: &Payload{Expression: b.String() + " = ?"},
		Answer:  game.NumericAnswer(answer),
	}, nil
}
