package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left / turn left
	ActionRight          // D, Right arrow - move right / turn right
	ActionUp             // W, Up arrow - jump (platformer) / turn up (snake)
	ActionDown           // S, Down arrow - turn down (snake)
	ActionJump           // Space - jump, restart after game over
	ActionConfirm        // Enter - confirm selection in menu, restart after game over
	ActionBack           // Escape, B - return to menu
	ActionRestart        // R, F1 - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is a known, non-empty action.
func (a Action) Valid() bool {
	return a > ActionNone && a <= ActionQuit
}

// RestartsGame reports whether a restarts a finished game.
// Space, Enter and the dedicated restart key all do.
func (a Action) RestartsGame() bool {
	return a == ActionRestart || a == ActionJump || a == ActionConfirm
}

// InputKind distinguishes press from release.
type InputKind int

const (
	KeyDown InputKind = iota
	KeyUp
)

// InputEvent is a single discrete input delivered to a game.
// Pointer presses arrive here already mapped to their logical action.
type InputEvent struct {
	Kind   InputKind
	Action Action
}

// Pressed returns a key-down event for a.
func Pressed(a Action) InputEvent {
	return InputEvent{Kind: KeyDown, Action: a}
}

// Released returns a key-up event for a.
func Released(a Action) InputEvent {
	return InputEvent{Kind: KeyUp, Action: a}
}
