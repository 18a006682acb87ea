// Package game runs play sessions on a merge board, either interactively in
// the terminal or driven by scripted turns.
package game

// State represents the current input state.
type State int

const (
	// StatePlacing waits for the first (or only) tile of a turn.
	StatePlacing State = iota
	// StateSecondTile holds a staged tile and waits for the second of a double move.
	StateSecondTile
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlacing:
		return "placing"
	case StateSecondTile:
		return "second tile"
	default:
		return "unknown"
	}
}
