package board

// MergeEvent describes a chain collapsing into one upgraded tile.
type MergeEvent struct {
	At   Position
	From Value
	To   Value
	Size int
}

// ExplosionEvent describes a terminal-tier merge clearing its neighbourhood.
type ExplosionEvent struct {
	At        Position
	Value     Value
	ChainSize int
	Cleared   []Tile
}

// Observer is told about each merge and explosion as Resolve performs it.
type Observer interface {
	Merged(MergeEvent)
	Exploded(ExplosionEvent)
}

// Resolve drains the pending set until the board is stable and returns the
// resulting grid indexed [x][y]. Each drain pass handles lower tiers first and,
// within a tier, the most recently placed tile first. Tiles removed by an
// earlier merge in the same pass are skipped.
func (b *Board) Resolve() [][]Value {
	for b.pending.Len() > 0 {
		for _, e := range b.pending.drainOrder() {
			if !b.pending.remove(e.id) {
				continue
			}
			b.resolveOne(e)
		}
	}
	return b.Grid()
}

// resolveOne merges the chain seeded at e, if it is long enough. It reports
// whether the board changed.
func (b *Board) resolveOne(e pendingEntry) bool {
	seed, ok := b.cells.get(e.pos.X, e.pos.Y)
	if !ok || seed.ID != e.id {
		return false
	}

	chain := b.ChainFrom(e.pos)
	if chain.Len() < b.minimumMerge {
		return false
	}

	for _, t := range chain.tiles {
		b.remove(t)
	}

	next, ok := b.tiers.Next(seed.Value)
	if !ok {
		b.explode(seed, chain.Len())
		return true
	}

	b.place(Tile{ID: seed.ID, Value: next, X: seed.X, Y: seed.Y})
	if b.observer != nil {
		b.observer.Merged(MergeEvent{At: e.pos, From: seed.Value, To: next, Size: chain.Len()})
	}
	return true
}

// explode clears every occupied neighbour of the already removed seed.
func (b *Board) explode(seed Tile, chainSize int) {
	cleared := b.Surrounding(seed.Position())
	for _, t := range cleared {
		b.remove(t)
	}
	if b.observer != nil {
		b.observer.Exploded(ExplosionEvent{
			At:        seed.Position(),
			Value:     seed.Value,
			ChainSize: chainSize,
			Cleared:   cleared,
		})
	}
}
