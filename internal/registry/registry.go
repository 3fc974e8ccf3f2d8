// Package registry provides a global registry for presentation backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-pixels/internal/config"
	"github.com/vovakirdan/snake-pixels/internal/core"
)

// RunOptions carries everything a backend needs to start a game.
type RunOptions struct {
	Game    config.SnakeConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Backend is an event source plus presenter pair that runs one game
// until it stops.
type Backend interface {
	// ID returns a unique identifier for this backend (e.g., "terminal").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run blocks until the game ends, the user exits or presentation fails.
	Run(opts RunOptions) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new backend instance.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BackendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a backend by its ID.
func Create(id string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return f(), nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
