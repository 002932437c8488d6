// Package registry keeps the catalog of playable levels.
// Levels register a factory in init(); the platform discovers them by id
// without importing level packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Game is a fixed-step simulation the platform can drive.
// Implementations hold pure logic and never touch the terminal.
type Game interface {
	// ID is the stable identifier used by the CLI and the run history.
	ID() string

	// Title is shown in listings.
	Title() string

	// Reset builds a fresh run. It is called at start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the input collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the run into a pre-sized screen buffer.
	Render(dst *core.Screen)

	// State reports distance, game over and pause flags.
	State() core.GameState
}

// GameInfo describes a registered level.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new level instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered level sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the level registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the title registered under id, or id itself if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
