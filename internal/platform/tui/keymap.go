package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/limitless/internal/core"
)

// moveLatch is how long a movement key stays held after its last press.
// Terminals report no key release, so a held key shows up as a stream of
// repeated presses and the latch bridges the gaps between them.
const moveLatch = 180 * time.Millisecond

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
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "1":
		return core.ActionBlue, false
	case "2":
		return core.ActionRed, false
	case "3":
		return core.ActionPurple, false
	case "4":
		return core.ActionDomain, false
	case " ":
		return core.ActionLimitless, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "tab":
		return core.ActionScores, false
	}

	return core.ActionNone, false
}

// IsMovement reports whether the action is one of the four directions.
func IsMovement(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// MoveLatch keeps movement directions held for a few ticks after each press.
type MoveLatch struct {
	ticks int
	held  map[core.Action]int
}

// NewMoveLatch creates a latch sized for the given tick rate.
func NewMoveLatch(tickRate int) *MoveLatch {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(moveLatch * time.Duration(tickRate) / time.Second)
	return &MoveLatch{
		ticks: core.Max(ticks, 1),
		held:  make(map[core.Action]int),
	}
}

// Press holds a direction and releases its opposite.
func (l *MoveLatch) Press(a core.Action) {
	if !IsMovement(a) {
		return
	}
	delete(l.held, opposite[a])
	l.held[a] = l.ticks
}

// Apply sets every held direction on the frame and ages the latch by one tick.
func (l *MoveLatch) Apply(frame *core.InputFrame) {
	for a, left := range l.held {
		frame.Set(a)
		if left <= 1 {
			delete(l.held, a)
		} else {
			l.held[a] = left - 1
		}
	}
}

// Release drops every held direction.
func (l *MoveLatch) Release() {
	clear(l.held)
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
