package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-minigames-bot/internal/game"
)

func newSession(chatID int64, token string) *Session {
	return &Session{
		ChatID: chatID,
		Token:  token,
		Answer: game.NumericAnswer(1),
	}
}

func TestStoreTryCreate(t *testing.T) {
	st := NewStore()

	require.NoError(t, st.TryCreate(newSession(1, "a")))
	assert.ErrorIs(t, st.TryCreate(newSession(1, "b")), ErrConflict)
	require.NoError(t, st.TryCreate(newSession(2, "c")))
	assert.Equal(t, 2, st.Len())

	// The conflicting insert must not have replaced the original.
	s, ok := st.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", s.Token)
}

func TestStoreRemoveTokenMatch(t *testing.T) {
	st := NewStore()
	require.NoError(t, st.TryCreate(newSession(1, "a")))

	assert.False(t, st.Remove(1, "stale"), "wrong token must not remove")
	assert.Equal(t, 1, st.Len())

	assert.True(t, st.Remove(1, "a"))
	assert.False(t, st.Remove(1, "a"), "second remove loses")
	assert.Equal(t, 0, st.Len())

	assert.False(t, st.Remove(99, "a"), "unknown chat")
}

func TestStoreRemoveAfterReplacement(t *testing.T) {
	st := NewStore()
	require.NoError(t, st.TryCreate(newSession(1, "old")))
	require.True(t, st.Remove(1, "old"))
	require.NoError(t, st.TryCreate(newSession(1, "new")))

	// The old session's token can never evict its replacement.
	assert.False(t, st.Remove(1, "old"))
	s, ok := st.Get(1)
	require.True(t, ok)
	assert.Equal(t, "new", s.Token)
}

func TestStoreConcurrentCreate(t *testing.T) {
	st := NewStore()

	const workers = 64
	var created int32
	var mu sync.Mutex
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			if st.TryCreate(newSession(1, string(rune('a'+i%26)))) == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), created, "exactly one concurrent create succeeds")
	assert.Equal(t, 1, st.Len())
}
