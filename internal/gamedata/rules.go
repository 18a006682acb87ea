package gamedata

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samdwyer/merged/internal/board"
)

// DefaultRulesFile is the embedded rule set used when none is configured.
const DefaultRulesFile = "rules.json"

// ReservedGlyphs are keys the terminal game binds to commands.
const ReservedGlyphs = " qQcC"

// TierDef defines one tile tier, lowest first in a rule set.
type TierDef struct {
	Value string `json:"value" yaml:"value"` // Tile value as placed and merged (e.g., "3")
	Glyph string `json:"glyph" yaml:"glyph"` // Single character for rendering and key selection
	Color string `json:"color" yaml:"color"` // Hex code or colour name (e.g., "#FF005F")
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TierDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(t.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// RuleSet is a named tier sequence and merge threshold.
type RuleSet struct {
	Name         string    `json:"name" yaml:"name"`
	MinimumMerge int       `json:"minimumMerge" yaml:"minimumMerge"`
	Tiers        []TierDef `json:"tiers" yaml:"tiers"`
}

// ValidateRules checks a rule set before it is handed to the board.
func ValidateRules(r *RuleSet) error {
	if r.Name == "" {
		return errors.New("rules validation: name is required")
	}
	if r.MinimumMerge < 2 {
		return fmt.Errorf("rules validation: minimumMerge must be at least 2, got %d", r.MinimumMerge)
	}
	if len(r.Tiers) < 2 {
		return fmt.Errorf("rules validation: need at least 2 tiers, got %d", len(r.Tiers))
	}

	values := make(map[string]bool, len(r.Tiers))
	glyphs := make(map[string]bool, len(r.Tiers))
	for i, t := range r.Tiers {
		if t.Value == "" {
			return fmt.Errorf("rules validation: tier %d has no value", i+1)
		}
		if values[t.Value] {
			return fmt.Errorf("rules validation: duplicate tier value %q", t.Value)
		}
		values[t.Value] = true

		if utf8.RuneCountInString(t.Glyph) != 1 {
			return fmt.Errorf("rules validation: tier %q glyph must be one character, got %q", t.Value, t.Glyph)
		}
		if strings.ContainsAny(t.Glyph, ReservedGlyphs) {
			return fmt.Errorf("rules validation: tier %q glyph %q is a control key", t.Value, t.Glyph)
		}
		if glyphs[t.Glyph] {
			return fmt.Errorf("rules validation: duplicate glyph %q", t.Glyph)
		}
		glyphs[t.Glyph] = true

		if t.Color != "" {
			if _, err := ParseColor(t.Color); err != nil {
				return fmt.Errorf("rules validation: tier %q: %w", t.Value, err)
			}
		}
	}
	return nil
}

// LoadRules loads the embedded default rule set.
func LoadRules() (*RuleSet, error) {
	rules, err := Load[RuleSet](DefaultRulesFile)
	if err != nil {
		return nil, err
	}
	if err := ValidateRules(&rules); err != nil {
		return nil, err
	}
	return &rules, nil
}

// MustLoadRules loads the embedded default rule set, panicking on error.
func MustLoadRules() *RuleSet {
	rules, err := LoadRules()
	if err != nil {
		panic(err)
	}
	return rules
}

// LoadRulesFile loads and validates a YAML or JSON rule set from disk.
// A missing minimumMerge falls back to board.DefaultMinimumMerge.
func LoadRulesFile(path string) (*RuleSet, error) {
	rules, err := LoadFile[RuleSet](path)
	if err != nil {
		return nil, err
	}
	if rules.MinimumMerge == 0 {
		rules.MinimumMerge = board.DefaultMinimumMerge
	}
	if err := ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("invalid rules %s: %w", path, err)
	}
	return &rules, nil
}

// BoardTiers converts the rule set's tiers into a board tier sequence.
func (r *RuleSet) BoardTiers() (*board.Tiers, error) {
	values := make([]board.Value, len(r.Tiers))
	for i, t := range r.Tiers {
		values[i] = board.Value(t.Value)
	}
	return board.NewTiers(values...)
}

// BoardOptions returns the board options that apply this rule set.
func (r *RuleSet) BoardOptions() ([]board.Option, error) {
	tiers, err := r.BoardTiers()
	if err != nil {
		return nil, err
	}
	return []board.Option{
		board.WithTiers(tiers),
		board.WithMinimumMerge(r.MinimumMerge),
	}, nil
}
