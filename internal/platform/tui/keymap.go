package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rock-boy/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionJump, false
	case "s", "down":
		return core.ActionDown, false
	case " ": // Space restarts on end screens
		return core.ActionPrimary, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "]":
		return core.ActionLevelUp, false
	case "[":
		return core.ActionLevelDown, false
	case "\\":
		return core.ActionToggleDebug, false
	}

	return core.ActionNone, false
}

// IsHeld reports whether an action follows the key being held down.
// Everything else fires once per key press.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}

// HoldWindow is how long a key counts as down after its last press or repeat.
// Terminals send no key-up events, so holds are inferred from auto-repeat.
const HoldWindow = 180 * time.Millisecond

// HoldTracker turns press and auto-repeat events into held actions.
type HoldTracker struct {
	window time.Duration
	seen   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window, seen: make(map[core.Action]time.Time)}
}

var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// Press records a key event. Pressing a direction releases the opposite one.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if opp, ok := opposite[a]; ok {
		delete(h.seen, opp)
	}
	h.seen[a] = now
}

// Apply sets every action still inside the hold window and forgets the rest.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.seen {
		if now.Sub(t) <= h.window {
			frame.Set(a)
		} else {
			delete(h.seen, a)
		}
	}
}

// Reset releases all keys.
func (h *HoldTracker) Reset() {
	clear(h.seen)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
