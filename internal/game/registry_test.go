package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	typ string
}

func (g *fakeGenerator) Type() string { return g.typ }

func (g *fakeGenerator) Generate(rng *rand.Rand, p Params) (*Puzzle, error) {
	return &Puzzle{Answer: NumericAnswer(1)}, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Count())

	require.NoError(t, r.Register(&fakeGenerator{typ: "alpha"}, NumericMatcher{}))
	require.NoError(t, r.Register(&fakeGenerator{typ: "beta"}, TextMatcher{}))
	assert.Equal(t, 2, r.Count())

	entry, ok := r.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", entry.Generator.Type())
	assert.IsType(t, NumericMatcher{}, entry.Matcher)

	_, ok = r.Get("gamma")
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"alpha", "beta"}, r.Types())
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	first := &fakeGenerator{typ: "alpha"}
	second := &fakeGenerator{typ: "alpha"}
	require.NoError(t, r.Register(first, NumericMatcher{}))
	require.NoError(t, r.Register(second, NumericMatcher{}))

	entry, ok := r.Get("alpha")
	require.True(t, ok)
	assert.Same(t, second, entry.Generator)
	assert.Equal(t, 1, r.Count())
}

func TestRegistryRejectsNil(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(nil, NumericMatcher{}))
	assert.Error(t, r.Register(&fakeGenerator{typ: "alpha"}, nil))
	assert.Equal(t, 0, r.Count())
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"MEDIUM", DifficultyMedium, false},
		{"Hard", DifficultyHard, false},
		{"", DifficultyEasy, false},
		{"extreme", "", true},
	}
	for _, tt := range tests {
		t.Run("in="+tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownDifficulty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswerDisplay(t *testing.T) {
	assert.Equal(t, "42", NumericAnswer(42).Display())
	assert.Equal(t, "-3", NumericAnswer(-3).Display())
	assert.Equal(t, "hello", TextAnswer("hello").Display())
}
