package board

import "slices"

// pendingEntry is a handle to a placed tile awaiting chain evaluation.
type pendingEntry struct {
	id  uint64
	pos Position
	// rank is the tile's tier index, used for drain ordering.
	rank int
}

// pendingSet keeps entries in insertion order and indexes them by tile ID.
// Re-adding a removed tile appends it as the newest entry.
type pendingSet struct {
	entries []pendingEntry
	index   map[uint64]int
}

func newPendingSet() *pendingSet {
	return &pendingSet{index: make(map[uint64]int)}
}

func (s *pendingSet) Len() int {
	return len(s.entries)
}

func (s *pendingSet) has(id uint64) bool {
	_, ok := s.index[id]
	return ok
}

func (s *pendingSet) add(e pendingEntry) {
	if s.has(e.id) {
		return
	}
	s.index[e.id] = len(s.entries)
	s.entries = append(s.entries, e)
}

// remove drops the entry for id and reports whether it was present.
func (s *pendingSet) remove(id uint64) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	delete(s.index, id)
	s.entries = slices.Delete(s.entries, i, i+1)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].id] = j
	}
	return true
}

func (s *pendingSet) reset() {
	s.entries = nil
	clear(s.index)
}

// drainOrder returns a snapshot of the entries, newest first, then stably
// sorted by tier so lower values drain before higher ones.
func (s *pendingSet) drainOrder() []pendingEntry {
	out := slices.Clone(s.entries)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b pendingEntry) int {
		return a.rank - b.rank
	})
	return out
}
