package core

import "unicode"

// Action represents a semantic input intent, abstracted from physical key presses.
// This allows the snake and the menus to work with high-level intents rather
// than raw key codes.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - steer up / previous option
	ActionDown             // S, Down arrow - steer down / next option
	ActionLeft             // A, Left arrow - steer left
	ActionRight            // D, Right arrow - steer right
	ActionConfirm          // Enter - confirm selection in menu
	ActionCancel           // Escape - leave a menu, pause a game
	ActionBackspace        // Backspace - delete last character in text entry
	ActionPause            // P - pause the game
	ActionQuit             // Ctrl+C - exit the session from anywhere
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
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionBackspace:
		return "Backspace"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the steering direction for a movement action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// KeyPress is one polled keystroke. The zero value means no key was pending.
// Rune holds the typed character, if any, so text entry can see letters that
// are also bound to actions (e.g. 'w').
type KeyPress struct {
	Action Action
	Rune   rune
}

// NoKey is the sentinel returned by a poll with nothing pending.
var NoKey = KeyPress{}

// Empty reports whether k is the no-key sentinel.
func (k KeyPress) Empty() bool {
	return k == NoKey
}

// Alphanumeric reports whether the key typed an ASCII letter or digit.
func (k KeyPress) Alphanumeric() bool {
	r := k.Rune
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
