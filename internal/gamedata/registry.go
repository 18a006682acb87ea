package gamedata

import "github.com/samdwyer/merged/internal/board"

// ByValue returns the tier definition for v, or nil if not found.
func (r *RuleSet) ByValue(v board.Value) *TierDef {
	for i := range r.Tiers {
		if r.Tiers[i].Value == string(v) {
			return &r.Tiers[i]
		}
	}
	return nil
}

// ByGlyph returns the tier whose glyph is g, or nil if not found.
// Letters match either case so 'm' selects "M".
func (r *RuleSet) ByGlyph(g rune) *TierDef {
	for i := range r.Tiers {
		glyph := r.Tiers[i].GlyphRune()
		if glyph == g || (isLetter(g) && toUpper(glyph) == toUpper(g)) {
			return &r.Tiers[i]
		}
	}
	return nil
}

// Glyph returns the display rune for v, falling back to the value's first rune.
func (r *RuleSet) Glyph(v board.Value) rune {
	if def := r.ByValue(v); def != nil {
		return def.GlyphRune()
	}
	for _, ch := range v {
		return ch
	}
	return ' '
}

// All returns all tier definitions, lowest first.
func (r *RuleSet) All() []TierDef {
	return r.Tiers
}

// Count returns the number of tiers.
func (r *RuleSet) Count() int {
	return len(r.Tiers)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
