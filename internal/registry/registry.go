// Package registry keeps the game factories. Games register themselves in
// init() functions, so the CLI and the terminal platform can create them by
// ID without importing concrete game types.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/alien-evolution/internal/core"
)

// Game is what the platform drives. Games contain pure logic: the platform
// handles timing, input mapping and terminal output.
type Game interface {
	// ID returns a unique identifier used on the command line.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes the game for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game to frame.Now, applying the frame's input first.
	Step(frame core.Frame) core.StepResult

	// Render draws the current state into a cleared screen buffer.
	Render(dst *core.Screen)
}

// Resizer is implemented by games that adapt to a new screen size in place.
// Games without it are Reset on resize.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
