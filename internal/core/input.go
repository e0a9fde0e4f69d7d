package core

import "strings"

// Action is a semantic input, decoupled from the physical key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionJump           // Up arrow, W, K, Space
	ActionPause          // P
	ActionRestart        // R
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionQuit           // Q, Ctrl+C

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Jump", "Pause", "Restart", "Confirm", "Back", "Quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions held or triggered during one tick.
// Movement actions mean "key is down" for the whole tick. The zero value
// is an empty frame and frames copy by value.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// InputOf builds a frame holding the given actions.
func InputOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear drops every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// String lists the active actions, e.g. "Left+Jump".
func (f InputFrame) String() string {
	var names []string
	for a := ActionLeft; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "+")
}
