package game

import (
	"fmt"
	"sync"
)

// Entry binds a generator to the matcher that validates its answers.
type Entry struct {
	Generator Generator
	Matcher   Matcher
}

// Registry manages game registration and lookup by game type.
// It is an explicit dependency: construct one in main and pass it down.
type Registry struct {
	games map[string]Entry
	mu    sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		games: make(map[string]Entry),
	}
}

// Register adds a generator/matcher pair to the registry.
// Registering the same game type twice replaces the earlier entry.
func (r *Registry) Register(g Generator, m Matcher) error {
	if g == nil {
		return fmt.Errorf("cannot register nil generator")
	}
	if m == nil {
		return fmt.Errorf("cannot register nil matcher")
	}
	if g.Type() == "" {
		return fmt.Errorf("game type cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.Type()] = Entry{Generator: g, Matcher: m}
	return nil
}

// Get retrieves the entry for a game type.
func (r *Registry) Get(gameType string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.games[gameType]
	return e, ok
}

// Types returns all registered game types.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.games))
	for t := range r.games {
		types = append(types, t)
	}
	return types
}

// Count returns the number of registered games.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
