package game

import "github.com/samdwyer/merged/internal/board"

// Cursor is the highlighted cell on the board.
type Cursor struct {
	X, Y          int
	width, height int
}

// NewCursor creates a cursor in the middle of a width×height board.
func NewCursor(width, height int) *Cursor {
	return &Cursor{X: width / 2, Y: height / 2, width: width, height: height}
}

// Move shifts the cursor by the given delta, staying on the board.
func (c *Cursor) Move(dx, dy int) {
	c.X = clamp(c.X+dx, 0, c.width-1)
	c.Y = clamp(c.Y+dy, 0, c.height-1)
}

// Position returns the cursor cell.
func (c *Cursor) Position() board.Position {
	return board.Position{X: c.X, Y: c.Y}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
