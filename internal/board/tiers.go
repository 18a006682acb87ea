// Package board provides the tile-merging engine: placement, chain discovery,
// and cascade resolution on a fixed-size grid.
package board

import (
	"fmt"
	"strings"
)

// Value is a tile value such as "1" or "M".
type Value string

// Empty is the value reported for a vacant cell.
const Empty Value = ""

// String returns the value as printed on the board.
func (v Value) String() string {
	return string(v)
}

// DefaultMinimumMerge is the smallest chain that merges unless configured otherwise.
const DefaultMinimumMerge = 3

// Tiers is the ordered sequence of valid tile values. Merging a chain advances
// the survivor one step; the last value is terminal and explodes instead.
type Tiers struct {
	values []Value
	index  map[Value]int
}

// NewTiers builds a tier sequence from the given values, lowest first.
func NewTiers(values ...Value) (*Tiers, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 tiers, got %d", ErrInvalidRules, len(values))
	}

	t := &Tiers{
		values: make([]Value, len(values)),
		index:  make(map[Value]int, len(values)),
	}
	for i, v := range values {
		if v == Empty {
			return nil, fmt.Errorf("%w: tier %d is empty", ErrInvalidRules, i)
		}
		if _, dup := t.index[v]; dup {
			return nil, fmt.Errorf("%w: duplicate tier %q", ErrInvalidRules, v)
		}
		t.values[i] = v
		t.index[v] = i
	}
	return t, nil
}

// DefaultTiers returns the ranks 1 through 6 followed by the terminal M tile.
func DefaultTiers() *Tiers {
	t, err := NewTiers("1", "2", "3", "4", "5", "6", "M")
	if err != nil {
		panic(err)
	}
	return t
}

// Contains reports whether v is one of the tiers.
func (t *Tiers) Contains(v Value) bool {
	_, ok := t.index[v]
	return ok
}

// Index returns the position of v in the sequence.
func (t *Tiers) Index(v Value) (int, bool) {
	i, ok := t.index[v]
	return i, ok
}

// Next returns the tier after v. It returns false when v is terminal or unknown.
func (t *Tiers) Next(v Value) (Value, bool) {
	i, ok := t.index[v]
	if !ok || i+1 >= len(t.values) {
		return Empty, false
	}
	return t.values[i+1], true
}

// Terminal returns the highest tier.
func (t *Tiers) Terminal() Value {
	return t.values[len(t.values)-1]
}

// IsTerminal reports whether v is the highest tier.
func (t *Tiers) IsTerminal(v Value) bool {
	return v == t.Terminal()
}

// Values returns a copy of the sequence.
func (t *Tiers) Values() []Value {
	out := make([]Value, len(t.values))
	copy(out, t.values)
	return out
}

// Len returns the number of tiers.
func (t *Tiers) Len() int {
	return len(t.values)
}

// String joins the tiers with arrows, e.g. "1 → 2 → M".
func (t *Tiers) String() string {
	parts := make([]string, len(t.values))
	for i, v := range t.values {
		parts[i] = string(v)
	}
	return strings.Join(parts, " → ")
}
