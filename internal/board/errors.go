package board

import "errors"

var (
	// ErrInvalidDimensions is returned when a board is created with a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrPositionOccupied is returned when a move targets a cell that already holds a tile.
	ErrPositionOccupied = errors.New("position is taken on the board")
	// ErrInvalidTileValue is returned when a move's value is not one of the configured tiers.
	ErrInvalidTileValue = errors.New("invalid tile value")
	// ErrOutOfBounds is returned when a move's coordinates fall outside the board.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrInvalidRules is returned for an unusable tier sequence or minimum merge size.
	ErrInvalidRules = errors.New("invalid rules")
)
