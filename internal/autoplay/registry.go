// Package autoplay provides move-choosing policies and a headless runner for
// playing 2048 sessions without a terminal. Policies register themselves in
// init() functions, so commands can look them up by name.
package autoplay

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/grid"
)

// Policy picks the next move for a board.
type Policy interface {
	// Name returns the registered policy name (e.g., "greedy").
	Name() string

	// Choose returns the direction to play. ok is false when no direction
	// changes the board.
	Choose(b game.Board) (d grid.Direction, ok bool)
}

// Factory creates a policy. Policies that need randomness derive it from seed.
type Factory func(seed int64) Policy

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a policy factory to the registry.
// Panics if a policy with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("autoplay: policy %q already registered", name))
	}
	factories[name] = f
}

// List returns all registered policy names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create instantiates a policy by name.
func Create(name string, seed int64) (Policy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("autoplay: unknown policy %q", name)
	}
	return f(seed), nil
}

// Exists checks if a policy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
