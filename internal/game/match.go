package game

import (
	"strconv"
	"strings"
)

// NumericMatcher matches candidates by exact integer parse. A message that
// does not parse as an integer is not an attempt ("42.0" never matches 42).
type NumericMatcher struct{}

// Match implements Matcher.
func (NumericMatcher) Match(ans Answer, candidate string) bool {
	if ans.Kind != AnswerNumeric {
		return false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(candidate), 10, 64)
	if err != nil {
		return false
	}
	return n == ans.Number
}

// TextMatcher matches candidates by trimmed, case-folded exact comparison.
type TextMatcher struct{}

// Match implements Matcher.
func (TextMatcher) Match(ans Answer, candidate string) bool {
	if ans.Kind != AnswerText {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(candidate), strings.TrimSpace(ans.Text))
}
