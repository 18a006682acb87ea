package board

// Chain is a set of same-valued tiles connected through cardinal neighbours.
// The seed tile comes first.
type Chain struct {
	tiles []Tile
	seen  map[Position]struct{}
}

func newChain() *Chain {
	return &Chain{seen: make(map[Position]struct{})}
}

// add records t and reports whether it was new.
func (c *Chain) add(t Tile) bool {
	p := t.Position()
	if _, ok := c.seen[p]; ok {
		return false
	}
	c.seen[p] = struct{}{}
	c.tiles = append(c.tiles, t)
	return true
}

// Len returns the number of tiles in the chain.
func (c *Chain) Len() int {
	return len(c.tiles)
}

// Contains reports whether the chain includes the cell at p.
func (c *Chain) Contains(p Position) bool {
	_, ok := c.seen[p]
	return ok
}

// Tiles returns the chain members, seed first.
func (c *Chain) Tiles() []Tile {
	out := make([]Tile, len(c.tiles))
	copy(out, c.tiles)
	return out
}

// ChainFrom returns every tile reachable from the tile at p by stepping between
// cardinal neighbours of equal value. An empty cell gives an empty chain.
func (b *Board) ChainFrom(p Position) *Chain {
	chain := newChain()
	seed, ok := b.cells.get(p.X, p.Y)
	if !ok {
		return chain
	}

	chain.add(seed)
	stack := []Tile{seed}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, sibling := range b.adjacentSame(t.Position(), seed.Value) {
			if chain.add(sibling) {
				stack = append(stack, sibling)
			}
		}
	}
	return chain
}
