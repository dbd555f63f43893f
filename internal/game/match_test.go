package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericMatcher(t *testing.T) {
	m := NumericMatcher{}
	ans := NumericAnswer(42)

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"exact", "42", true},
		{"surrounding whitespace", "  42  ", true},
		{"negative sign match", "-42", false},
		{"wrong number", "41", false},
		{"decimal form rejected", "42.0", false},
		{"words rejected", "forty-two", false},
		{"embedded number rejected", "the answer is 42", false},
		{"empty", "", false},
		{"hex rejected", "0x2a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(ans, tt.candidate))
		})
	}

	negative := NumericAnswer(-7)
	assert.True(t, m.Match(negative, "-7"))
	assert.False(t, m.Match(negative, "7"))

	// A numeric matcher never matches a text answer.
	assert.False(t, m.Match(TextAnswer("42"), "42"))
}

func TestTextMatcher(t *testing.T) {
	m := TextMatcher{}
	ans := TextAnswer("Olleh Dlrow")

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"exact", "Olleh Dlrow", true},
		{"case insensitive", "olleh dlrow", true},
		{"upper", "OLLEH DLROW", true},
		{"surrounding whitespace", "  olleh dlrow ", true},
		{"inner whitespace differs", "olleh  dlrow", false},
		{"prefix only", "olleh", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(ans, tt.candidate))
		})
	}

	// A text matcher never matches a numeric answer.
	assert.False(t, m.Match(NumericAnswer(5), "5"))
}
