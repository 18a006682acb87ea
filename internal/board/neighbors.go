package board

// offset is a neighbour direction.
type offset struct{ dx, dy int }

var (
	cardinals = []offset{
		{0, -1}, // above
		{0, 1},  // below
		{-1, 0}, // left
		{1, 0},  // right
	}
	diagonals = []offset{
		{-1, -1}, // above-left
		{1, -1},  // above-right
		{-1, 1},  // below-left
		{1, 1},   // below-right
	}
)

// Above returns the tile directly above p.
func (b *Board) Above(p Position) (Tile, bool) { return b.cells.get(p.X, p.Y-1) }

// Below returns the tile directly below p.
func (b *Board) Below(p Position) (Tile, bool) { return b.cells.get(p.X, p.Y+1) }

// Left returns the tile directly left of p.
func (b *Board) Left(p Position) (Tile, bool) { return b.cells.get(p.X-1, p.Y) }

// Right returns the tile directly right of p.
func (b *Board) Right(p Position) (Tile, bool) { return b.cells.get(p.X+1, p.Y) }

// AboveLeft returns the tile diagonally above and left of p.
func (b *Board) AboveLeft(p Position) (Tile, bool) { return b.cells.get(p.X-1, p.Y-1) }

// AboveRight returns the tile diagonally above and right of p.
func (b *Board) AboveRight(p Position) (Tile, bool) { return b.cells.get(p.X+1, p.Y-1) }

// BelowLeft returns the tile diagonally below and left of p.
func (b *Board) BelowLeft(p Position) (Tile, bool) { return b.cells.get(p.X-1, p.Y+1) }

// BelowRight returns the tile diagonally below and right of p.
func (b *Board) BelowRight(p Position) (Tile, bool) { return b.cells.get(p.X+1, p.Y+1) }

// Adjacent returns the occupied cardinal neighbours of p, in the order
// above, below, left, right.
func (b *Board) Adjacent(p Position) []Tile {
	return b.collect(p, cardinals, nil)
}

// Surrounding returns the occupied cells among all eight neighbours of p:
// the cardinal ones first, then above-left, above-right, below-left, below-right.
func (b *Board) Surrounding(p Position) []Tile {
	out := b.collect(p, cardinals, nil)
	return b.collect(p, diagonals, out)
}

// AdjacentSame returns the cardinal neighbours of the tile at p that share its value.
func (b *Board) AdjacentSame(p Position) []Tile {
	t, ok := b.cells.get(p.X, p.Y)
	if !ok {
		return nil
	}
	return b.adjacentSame(p, t.Value)
}

func (b *Board) adjacentSame(p Position, v Value) []Tile {
	var out []Tile
	for _, n := range b.Adjacent(p) {
		if n.Value == v {
			out = append(out, n)
		}
	}
	return out
}

func (b *Board) collect(p Position, dirs []offset, out []Tile) []Tile {
	for _, d := range dirs {
		if t, ok := b.cells.get(p.X+d.dx, p.Y+d.dy); ok {
			out = append(out, t)
		}
	}
	return out
}
