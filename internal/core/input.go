// Package core provides the small shared types the shell layers use to talk
// to a game session: semantic actions and the runtime configuration.
// It has no Bubble Tea dependency so it stays testable.
package core

import "github.com/vovakirdan/t2048/internal/grid"

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h, a
	ActionRight          // Right arrow, l, d
	ActionUp             // Up arrow, k, w
	ActionDown           // Down arrow, j, s
	ActionRestart        // r - discard the grid and start over
	ActionHelp           // ? - toggle the key help
	ActionQuit           // q, Ctrl+C - exit the session
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
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the slide direction for a directional action.
// ok is false for every other action.
func (a Action) Direction() (d grid.Direction, ok bool) {
	switch a {
	case ActionLeft:
		return grid.Left, true
	case ActionRight:
		return grid.Right, true
	case ActionUp:
		return grid.Up, true
	case ActionDown:
		return grid.Down, true
	default:
		return grid.Left, false
	}
}
