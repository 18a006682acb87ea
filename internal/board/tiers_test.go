package board

import (
	"errors"
	"testing"
)

func TestDefaultTiers(t *testing.T) {
	tiers := DefaultTiers()

	if tiers.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", tiers.Len())
	}
	if got := tiers.String(); got != "1 → 2 → 3 → 4 → 5 → 6 → M" {
		t.Errorf("String() = %q", got)
	}

	tests := []struct {
		from   Value
		next   Value
		hasNxt bool
	}{
		{"1", "2", true},
		{"5", "6", true},
		{"6", "M", true},
		{"M", Empty, false},
		{"7", Empty, false},
	}
	for _, tt := range tests {
		next, ok := tiers.Next(tt.from)
		if next != tt.next || ok != tt.hasNxt {
			t.Errorf("Next(%q) = %q, %v; want %q, %v", tt.from, next, ok, tt.next, tt.hasNxt)
		}
	}

	if !tiers.IsTerminal("M") || tiers.IsTerminal("6") {
		t.Error("IsTerminal() should be true only for M")
	}
	if i, ok := tiers.Index("3"); !ok || i != 2 {
		t.Errorf("Index(3) = %d, %v; want 2, true", i, ok)
	}
	if tiers.Contains("0") {
		t.Error("Contains(0) = true, want false")
	}
}

func TestNewTiersInvalid(t *testing.T) {
	tests := []struct {
		name   string
		values []Value
	}{
		{"none", nil},
		{"single", []Value{"1"}},
		{"duplicate", []Value{"1", "2", "1"}},
		{"empty value", []Value{"1", Empty, "M"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTiers(tt.values...)
			if !errors.Is(err, ErrInvalidRules) {
				t.Errorf("NewTiers(%v) error = %v, want ErrInvalidRules", tt.values, err)
			}
		})
	}
}

func TestTiersValuesIsCopy(t *testing.T) {
	tiers := DefaultTiers()
	values := tiers.Values()
	values[0] = "X"

	if tiers.Contains("X") || tiers.Values()[0] != "1" {
		t.Error("mutating Values() changed the tier sequence")
	}
}
