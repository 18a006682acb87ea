package board

import (
	"fmt"
)

// Board owns the grid and the set of tiles awaiting resolution.
// A Board is not safe for concurrent use.
type Board struct {
	width, height int
	cells         grid
	pending       *pendingSet
	tiers         *Tiers
	minimumMerge  int
	observer      Observer
	nextID        uint64
}

// Option configures a Board.
type Option func(*Board) error

// WithTiers sets the tier sequence. The default is DefaultTiers.
func WithTiers(t *Tiers) Option {
	return func(b *Board) error {
		if t == nil {
			return fmt.Errorf("%w: nil tiers", ErrInvalidRules)
		}
		b.tiers = t
		return nil
	}
}

// WithMinimumMerge sets the smallest chain that merges. It must be at least 2.
func WithMinimumMerge(n int) Option {
	return func(b *Board) error {
		if n < 2 {
			return fmt.Errorf("%w: minimum merge must be at least 2, got %d", ErrInvalidRules, n)
		}
		b.minimumMerge = n
		return nil
	}
}

// WithObserver registers o to be told about every merge and explosion.
func WithObserver(o Observer) Option {
	return func(b *Board) error {
		b.observer = o
		return nil
	}
}

// New creates an empty width × height board.
func New(width, height int, opts ...Option) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidDimensions, width, height)
	}

	b := &Board{
		width:        width,
		height:       height,
		cells:        newGrid(width, height),
		pending:      newPendingSet(),
		tiers:        DefaultTiers(),
		minimumMerge: DefaultMinimumMerge,
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Tiers returns the board's tier sequence.
func (b *Board) Tiers() *Tiers { return b.tiers }

// MinimumMerge returns the smallest chain that merges.
func (b *Board) MinimumMerge() int { return b.minimumMerge }

// At returns the tile at (x,y), if any.
func (b *Board) At(x, y int) (Tile, bool) {
	return b.cells.get(x, y)
}

// Grid returns a copy of the board indexed [x][y]; vacant cells hold Empty.
func (b *Board) Grid() [][]Value {
	return b.cells.values()
}

// Rows returns a copy of the board indexed [y][x], top row first.
func (b *Board) Rows() [][]Value {
	out := make([][]Value, b.height)
	for y := range out {
		out[y] = make([]Value, b.width)
		for x := range out[y] {
			out[y][x] = b.cells.at(x, y).value
		}
	}
	return out
}

// TileCount returns the number of occupied cells.
func (b *Board) TileCount() int {
	n := 0
	for _, c := range b.cells.cells {
		if c.id != 0 {
			n++
		}
	}
	return n
}

// PendingCount returns the number of tiles awaiting resolution.
func (b *Board) PendingCount() int {
	return b.pending.Len()
}

// Clear empties the grid and the pending set. Dimensions and rules are kept.
func (b *Board) Clear() {
	b.cells.reset()
	b.pending.reset()
}

// Check reports why m could not be placed right now, or nil if it could.
func (b *Board) Check(m Move) error {
	if !b.tiers.Contains(m.Value) {
		return fmt.Errorf("%w: %q", ErrInvalidTileValue, m.Value)
	}
	if !b.cells.inBounds(m.X, m.Y) {
		return fmt.Errorf("%w: (%d,%d) on %d×%d board", ErrOutOfBounds, m.X, m.Y, b.width, b.height)
	}
	if _, taken := b.cells.get(m.X, m.Y); taken {
		return fmt.Errorf("%w: (%d,%d)", ErrPositionOccupied, m.X, m.Y)
	}
	return nil
}

// PlaceMove puts a new tile on the board and queues it for resolution.
// A rejected move leaves the board unchanged.
func (b *Board) PlaceMove(m Move) (Tile, error) {
	if err := b.Check(m); err != nil {
		return Tile{}, err
	}

	b.nextID++
	t := Tile{ID: b.nextID, Value: m.Value, X: m.X, Y: m.Y}
	b.place(t)
	return t, nil
}

// ApplyMoves places each move in order. It stops at the first rejected move;
// moves placed before it stay on the board.
func (b *Board) ApplyMoves(moves []Move) error {
	for i, m := range moves {
		if _, err := b.PlaceMove(m); err != nil {
			return fmt.Errorf("move %d %s: %w", i+1, m, err)
		}
	}
	return nil
}

// place stores t and queues it. The target cell must be vacant.
func (b *Board) place(t Tile) {
	b.cells.set(t)
	rank, _ := b.tiers.Index(t.Value)
	b.pending.add(pendingEntry{id: t.ID, pos: t.Position(), rank: rank})
}

// remove takes t off the board and out of the pending set.
func (b *Board) remove(t Tile) {
	b.cells.clear(t.X, t.Y)
	b.pending.remove(t.ID)
}
