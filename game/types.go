// Package game defines the controller state machine types, sentinel
// errors, and geometry defaults shared by the controller and player.
package game

import (
	"errors"
	"fmt"
)

// DefaultCellSize is the pixel size of one grid cell used for geometry
// conversion when the rendering collaborator does not supply its own.
const DefaultCellSize = 24.0

// DefaultSpeed is the player's motion speed in pixels per second.
const DefaultSpeed = 150.0

// Sentinel errors for controller operations.
var (
	// ErrNilModel is returned when a nil maze model is supplied.
	ErrNilModel = errors.New("game: maze model is nil")

	// ErrNilPlayer is returned when a nil player is supplied.
	ErrNilPlayer = errors.New("game: player is nil")

	// ErrSearchActive is returned by SetStrategy outside the Paused
	// state: switching strategies must always go through Reset, never be
	// applied to a live search.
	ErrSearchActive = errors.New("game: strategy change requires reset")

	// ErrQuit is returned by Update after Quit has been called.
	ErrQuit = errors.New("game: controller has quit")
)

// State enumerates the controller's life cycle:
// Paused → Searching → Moving → Paused (on reset), with Quit terminal
// and reachable from any state.
type State int

const (
	// Paused is the initial state; no search is bound.
	Paused State = iota
	// Searching advances the bound search one snapshot per tick.
	Searching
	// Moving advances the player along the reconstructed path.
	Moving
	// Quit is terminal.
	Quit
)

// String returns a short label for the state.
func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Searching:
		return "searching"
	case Moving:
		return "moving"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
