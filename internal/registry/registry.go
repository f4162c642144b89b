// Package registry keeps the playable levels known to the front ends.
// Levels register a factory from an init() function; front ends list and
// create them by id without importing the level packages directly.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/veiled-path/internal/core"
)

// Game is the interface the front ends drive.
// Implementations hold pure logic with no terminal or window code.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (e.g., "tutorial", "level1").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name, translated at call time.
	Title() string

	// Reset starts the level from scratch.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current level state.
	State() core.GameState
}

// GameInfo describes a registered level.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh level instance.
type Factory func() Game

type entry struct {
	id      string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	index   = make(map[string]int)
)

// Register adds a level factory.
// Panics if the id is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := index[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}
	index[id] = len(entries)
	entries = append(entries, entry{id: id, factory: f})
}

// List returns the registered levels in registration order.
// Titles are read from a fresh instance on every call so they follow the
// current language.
func List() []GameInfo {
	mu.RLock()
	snapshot := slices.Clone(entries)
	mu.RUnlock()

	result := make([]GameInfo, 0, len(snapshot))
	for _, e := range snapshot {
		result = append(result, GameInfo{ID: e.id, Title: e.factory().Title()})
	}
	return result
}

// Create instantiates a level by id.
func Create(id string) (Game, error) {
	mu.RLock()
	i, ok := index[id]
	var f Factory
	if ok {
		f = entries[i].factory
	}
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}
	return f(), nil
}

// Exists reports whether a level with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := index[id]
	return ok
}
