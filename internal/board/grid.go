package board

import "fmt"

// Position is a cell coordinate. X counts columns from the left, Y rows from the top.
type Position struct {
	X, Y int
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Tile is a placed piece. ID identifies the piece for as long as it stays on the
// board, including across the upgrade of a merge survivor.
type Tile struct {
	ID    uint64
	Value Value
	X, Y  int
}

// Position returns the tile's coordinates.
func (t Tile) Position() Position {
	return Position{X: t.X, Y: t.Y}
}

// String returns the tile's value.
func (t Tile) String() string {
	return string(t.Value)
}

// Move is a request to place a tile.
type Move struct {
	Value Value
	X, Y  int
}

// String returns the move in VALUE@X,Y notation.
func (m Move) String() string {
	return fmt.Sprintf("%s@%d,%d", m.Value, m.X, m.Y)
}

// cell holds at most one tile; id 0 means vacant.
type cell struct {
	id    uint64
	value Value
}

// grid is column-major storage: cells[x*height+y].
type grid struct {
	width, height int
	cells         []cell
}

func newGrid(width, height int) grid {
	return grid{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

func (g *grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *grid) at(x, y int) *cell {
	return &g.cells[x*g.height+y]
}

// get returns the tile at (x,y). Out of bounds and vacant cells both report false.
func (g *grid) get(x, y int) (Tile, bool) {
	if !g.inBounds(x, y) {
		return Tile{}, false
	}
	c := g.at(x, y)
	if c.id == 0 {
		return Tile{}, false
	}
	return Tile{ID: c.id, Value: c.value, X: x, Y: y}, true
}

func (g *grid) set(t Tile) {
	*g.at(t.X, t.Y) = cell{id: t.ID, value: t.Value}
}

func (g *grid) clear(x, y int) {
	*g.at(x, y) = cell{}
}

func (g *grid) reset() {
	for i := range g.cells {
		g.cells[i] = cell{}
	}
}

// values copies the grid into [x][y] form.
func (g *grid) values() [][]Value {
	out := make([][]Value, g.width)
	for x := range out {
		out[x] = make([]Value, g.height)
		for y := range out[x] {
			out[x][y] = g.at(x, y).value
		}
	}
	return out
}
