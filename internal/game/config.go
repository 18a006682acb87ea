package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samdwyer/merged/internal/gamedata"
)

// Board size limits for randomly sized boards.
const (
	MinDimension = 3
	MaxDimension = 20
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible board sizes.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Width and Height of the board. Zero picks a random size in
	// [MinDimension, MaxDimension].
	Width, Height int

	// RulesPath is a YAML or JSON rule file. Empty uses the embedded rules.
	RulesPath string

	// DoubleMove places two tiles per turn before resolving.
	DoubleMove bool
}

// DefaultConfig returns a config with a random board and the embedded rules.
func DefaultConfig() Config {
	return Config{}
}

// Validate rejects negative dimensions.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid board size %d×%d", c.Width, c.Height)
	}
	return nil
}

// Rand returns a source seeded from Seed, or from the clock when Seed is 0.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandomDimension returns a board side length in [MinDimension, MaxDimension].
func RandomDimension(rng *rand.Rand) int {
	return MinDimension + rng.Intn(MaxDimension-MinDimension+1)
}

// Dimensions returns the configured size, drawing any zero side from rng.
func (c Config) Dimensions(rng *rand.Rand) (width, height int) {
	width, height = c.Width, c.Height
	if width == 0 {
		width = RandomDimension(rng)
	}
	if height == 0 {
		height = RandomDimension(rng)
	}
	return width, height
}

// Rules loads the configured rule file, or the embedded rules if none is set.
func (c Config) Rules() (*gamedata.RuleSet, error) {
	if c.RulesPath == "" {
		return gamedata.LoadRules()
	}
	return gamedata.LoadRulesFile(c.RulesPath)
}
