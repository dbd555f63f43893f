// Package render turns game payloads into Telegram message text. Telegram
// renders emoji natively, so every puzzle artifact maps to plain text.
package render

import (
	"errors"
	"fmt"
	"strings"

	"telegram-minigames-bot/internal/game/equation"
	"telegram-minigames-bot/internal/game/hidden"
	"telegram-minigames-bot/internal/game/mathquiz"
	"telegram-minigames-bot/internal/game/memory"
	"telegram-minigames-bot/internal/game/reverse"
	"telegram-minigames-bot/internal/game/vowels"
)

// ErrUnknownPayload is returned for a payload type no game produced.
var ErrUnknownPayload = errors.New("unknown payload type")

// Payload renders a puzzle payload as message text, without the
// surrounding instructions (those belong to the handler).
func Payload(payload any) (string, error) {
	switch p := payload.(type) {
	case *equation.Payload:
		var b strings.Builder
		for _, line := range p.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(p.Final)
		return b.String(), nil
	case *memory.Payload:
		return strings.Join(p.Sequence, " "), nil
	case *hidden.Payload:
		return strings.Join(p.Rows, "\n"), nil
	case *mathquiz.Payload:
		return p.Expression, nil
	case *reverse.Payload:
		return p.Original, nil
	case *vowels.Payload:
		return p.Masked, nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownPayload, payload)
	}
}

// Instructions returns the one-line prompt shown under a puzzle.
func Instructions(gameType string) string {
	switch gameType {
	case equation.GameType:
		return "Solve the final equation! Type the missing number. First correct answer wins."
	case memory.GameType:
		return "Memorize the sequence, then type it back in order. First exact match wins."
	case hidden.GameType:
		return "A number is hidden in the grid, digits in reading order. Type it! First correct answer wins."
	case mathquiz.GameType:
		return "Solve left to right, no precedence. Type the number. First correct answer wins."
	case reverse.GameType:
		return "Type this text reversed, character by character. First exact match wins."
	case vowels.GameType:
		return "The vowels are missing. Type the full word. First exact match wins."
	default:
		return "First correct answer wins."
	}
}
