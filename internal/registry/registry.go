// Package registry maps game ids to factories. Games register themselves in
// init(), so the CLI and the SSH server can start a fresh instance per run or
// per session without importing game packages directly.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tusk/internal/core"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives. Implementations hold pure logic; the
// platform owns input mapping, timing and drawing to the terminal.
type Game interface {
	// ID is the stable identifier used on the command line and in logs.
	ID() string

	// Title is shown in headers.
	Title() string

	// Reset starts over with the given screen size and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick worth of actions, in order.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst. dst is cleared before the call.
	Render(dst *core.Screen)

	// State reports the level being played and its progress.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without losing their state. Other games are Reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// IDs returns the registered ids in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownGame, id, IDs())
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
