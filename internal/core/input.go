package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move up
	ActionDown             // S, Down arrow - move down
	ActionLeft             // A, Left arrow - move left
	ActionRight            // D, Right arrow - move right
	ActionBlue             // 1 - cast Blue
	ActionRed              // 2 - cast Red
	ActionPurple           // 3 - cast Purple
	ActionDomain           // 4 - cast Domain
	ActionLimitless        // Space - toggle Limitless
	ActionConfirm          // Enter - start from the title screen
	ActionBack             // B, Escape - go back
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
	ActionScores           // Tab - open the scoreboard
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionBlue:
		return "Blue"
	case ActionRed:
		return "Red"
	case ActionPurple:
		return "Purple"
	case ActionDomain:
		return "Domain"
	case ActionLimitless:
		return "Limitless"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame plus the pointer
// position in screen cells, when the terminal reported one.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	Pointer    Vec2 // Pointer position in screen cells
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetPointer records the pointer position for this frame.
func (f *InputFrame) SetPointer(x, y float64) {
	f.Pointer = V(x, y)
	f.HasPointer = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// MoveDir returns the unit movement direction derived from the directional actions.
// Opposing directions cancel out.
func (f InputFrame) MoveDir() Vec2 {
	var d Vec2
	if f.Has(ActionUp) {
		d.Y--
	}
	if f.Has(ActionDown) {
		d.Y++
	}
	if f.Has(ActionLeft) {
		d.X--
	}
	if f.Has(ActionRight) {
		d.X++
	}
	return d.Normalize()
}

// Clear resets all actions for the next frame.
// The pointer position is sticky and survives Clear.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.HasPointer = f.HasPointer
	return clone
}
