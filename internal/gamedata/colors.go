package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/merged/internal/board"
)

// ParseColor converts a hex code ("#FF0000") or colour name ("red") to a tcell.Color.
func ParseColor(s string) (tcell.Color, error) {
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}

// TCellColor returns the tier colour, white if unset or invalid.
func (t *TierDef) TCellColor() tcell.Color {
	color, err := ParseColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// Color returns the display colour for v.
func (r *RuleSet) Color(v board.Value) tcell.Color {
	if def := r.ByValue(v); def != nil {
		return def.TCellColor()
	}
	return tcell.ColorWhite
}
