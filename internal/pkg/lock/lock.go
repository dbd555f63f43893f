// Package lock provides per-chat locking so concurrent start commands in
// one chat don't both run puzzle generation before losing the store race.
package lock

import "sync"

// chatMutex wraps a mutex kept alive in the map for the chat's lifetime.
type chatMutex struct {
	mu sync.Mutex
}

// ChatLock provides non-blocking per-chat mutual exclusion.
type ChatLock struct {
	locks sync.Map // map[int64]*chatMutex
}

// NewChatLock creates a new ChatLock instance.
func NewChatLock() *ChatLock {
	return &ChatLock{}
}

// getLock retrieves or creates a mutex for the given chat ID.
func (cl *ChatLock) getLock(chatID int64) *chatMutex {
	if v, ok := cl.locks.Load(chatID); ok {
		return v.(*chatMutex)
	}
	actual, _ := cl.locks.LoadOrStore(chatID, &chatMutex{})
	return actual.(*chatMutex)
}

// TryLock attempts to acquire the chat's lock without blocking.
// Returns true if the lock was acquired.
func (cl *ChatLock) TryLock(chatID int64) bool {
	return cl.getLock(chatID).mu.TryLock()
}

// Unlock releases the chat's lock. Callers must hold it.
func (cl *ChatLock) Unlock(chatID int64) {
	if v, ok := cl.locks.Load(chatID); ok {
		v.(*chatMutex).mu.Unlock()
	}
}
