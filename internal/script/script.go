// Package script replays recorded turns against a game session.
//
// A scenario is a YAML document:
//
//	name: example
//	width: 3
//	height: 4
//	turns:
//	  - 1@0,0 1@1,0
//	  - 2@0,1 2@0,2
//	  - 1@1,1
//	expect:
//	  - "..."
//	  - ".3."
//	  - "..."
//	  - "..."
//
// Each turn lists one or more moves written VALUE@X,Y separated by spaces.
// The optional expect block gives the final rows top to bottom, '.' for empty.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/merged/internal/board"
	"github.com/samdwyer/merged/internal/game"
	"github.com/samdwyer/merged/internal/ui"
)

// ErrBadMove reports move notation that cannot be parsed.
var ErrBadMove = errors.New("bad move notation")

// ErrMismatch reports a final board that differs from the expected rows.
var ErrMismatch = errors.New("board does not match expected rows")

// Scenario is a recorded game.
type Scenario struct {
	Name   string   `yaml:"name"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Turns  []string `yaml:"turns"`
	Expect []string `yaml:"expect,omitempty"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scenario and checks its turns are well formed.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if _, err := sc.Moves(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// ParseMove parses VALUE@X,Y, e.g. "3@0,2".
func ParseMove(s string) (board.Move, error) {
	value, coords, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok || value == "" {
		return board.Move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return board.Move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %q: %v", ErrBadMove, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %q: %v", ErrBadMove, s, err)
	}
	return board.Move{Value: board.Value(value), X: x, Y: y}, nil
}

// ParseTurn parses space-separated moves.
func ParseTurn(s string) ([]board.Move, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty turn", ErrBadMove)
	}
	moves := make([]board.Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Moves parses every turn in the scenario.
func (sc *Scenario) Moves() ([][]board.Move, error) {
	turns := make([][]board.Move, 0, len(sc.Turns))
	for i, t := range sc.Turns {
		moves, err := ParseTurn(t)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i+1, err)
		}
		turns = append(turns, moves)
	}
	return turns, nil
}

// Verify compares rows (indexed [y][x]) with the expected block. A scenario
// without one always verifies.
func (sc *Scenario) Verify(rows [][]board.Value) error {
	if len(sc.Expect) == 0 {
		return nil
	}
	got := make([]string, len(rows))
	for y, row := range rows {
		var sb strings.Builder
		for _, v := range row {
			if v == board.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(v.String())
			}
		}
		got[y] = sb.String()
	}

	if len(got) != len(sc.Expect) {
		return fmt.Errorf("%w: %d rows, want %d", ErrMismatch, len(got), len(sc.Expect))
	}
	for y := range got {
		if got[y] != sc.Expect[y] {
			return fmt.Errorf("%w: row %d is %q, want %q", ErrMismatch, y, got[y], sc.Expect[y])
		}
	}
	return nil
}

// Run plays turns on s in order, writing the board after each one. It stops
// at the first rejected turn.
func Run(ctx context.Context, s *game.Session, turns [][]board.Move, w io.Writer) error {
	glyph := s.Rules().Glyph
	for i, moves := range turns {
		if _, err := s.Play(ctx, moves...); err != nil {
			return fmt.Errorf("turn %d: %w", i+1, err)
		}

		names := make([]string, len(moves))
		for j, m := range moves {
			names[j] = m.String()
		}
		fmt.Fprintf(w, "turn %d: %s\n%s\n", i+1, strings.Join(names, " "), ui.FormatBoard(s.Rows(), glyph))
	}
	return nil
}
