// Package registry keeps the table of playable games. Each variant
// registers a factory from its package's init(), so hosts such as the TUI,
// the SSH server and the inspect API can list and build games by ID.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/blobrun/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a pure, tick-driven simulation. It never touches the terminal,
// the clock or the network; the host feeds it input and draws its screen.
type Game interface {
	// ID is the stable key used by the CLI and the score store.
	ID() string

	// Title is the display name.
	Title() string

	// Reset builds a fresh run. It is called before the first Step and
	// again after every game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. dst is cleared by the caller.
	Render(dst *core.Screen)

	// State returns score and the game over / paused flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	title string
	make  Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game factory under id. The factory is called once here
// to learn the title. Registering an id twice panics.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, make: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func lookup(id string) (entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e, ok
}

// Create builds a fresh instance of id.
func Create(id string) (Game, error) {
	e, ok := lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.make(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := lookup(id)
	return ok
}

// Title returns the display name of id, or id itself when unknown.
func Title(id string) string {
	if e, ok := lookup(id); ok {
		return e.title
	}
	return id
}
