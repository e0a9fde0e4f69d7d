package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blobrun/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "up", "w", "k", " ":
		return core.ActionJump, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// Hold windows for HeldKeys. The first press has to bridge the terminal's
// auto-repeat delay; repeats arrive every few tens of milliseconds.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// HeldKeys turns key presses into held state. Terminals report presses
// and auto-repeats but never releases, so an action stays down until its
// hold window runs out without another press.
type HeldKeys struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
}

// NewHeldKeys creates a latch with the given hold windows.
func NewHeldKeys(initial, repeat time.Duration) *HeldKeys {
	return &HeldKeys{
		initial: initial,
		repeat:  repeat,
		until:   make(map[core.Action]time.Time),
	}
}

// holdable reports whether a is a movement action that is held rather than
// triggered once.
func holdable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionJump
}

// Press records a press of a at now. Pressing one direction releases the
// other.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if !holdable(a) {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}

	hold := h.initial
	if h.Held(a, now) {
		hold = h.repeat
	}
	if end := now.Add(hold); end.After(h.until[a]) {
		h.until[a] = end
	}
}

// Held reports whether a is down at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	end, ok := h.until[a]
	return ok && now.Before(end)
}

// Apply sets every held action on frame and forgets expired ones.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, end := range h.until {
		if now.Before(end) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.until)
}
