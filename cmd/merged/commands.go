package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samdwyer/merged/internal/board"
	"github.com/samdwyer/merged/internal/game"
	"github.com/samdwyer/merged/internal/script"
	"github.com/samdwyer/merged/internal/telemetry"
	"github.com/samdwyer/merged/internal/ui"
)

// configFrom reads the shared flags.
func configFrom(cmd *cli.Command) game.Config {
	cfg := game.DefaultConfig()
	cfg.Seed = int64(cmd.Int("seed"))
	cfg.Width = cmd.Int("width")
	cfg.Height = cmd.Int("height")
	cfg.RulesPath = cmd.String("rules")
	cfg.DoubleMove = cmd.Bool("double")
	return cfg
}

// openLog points the logger at --log, or at w when no file is given.
// The returned func closes the file.
func openLog(cmd *cli.Command, w io.Writer) (func(), error) {
	path := cmd.String("log")
	if path == "" {
		log.SetOutput(w)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// newSession builds a session from the flags. Zero scenario dimensions fall
// back to the flags, then to a random size.
func newSession(cmd *cli.Command, width, height int) (*game.Session, game.Config, error) {
	cfg := configFrom(cmd)
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return nil, cfg, err
	}

	rules, err := cfg.Rules()
	if err != nil {
		return nil, cfg, err
	}
	w, h := cfg.Dimensions(cfg.Rand())
	opts := []game.SessionOption{game.WithLogger(log)}
	if !telemetry.Configured() {
		opts = append(opts, game.WithTracer(telemetry.NoopTracer()))
	}
	s, err := game.NewSession(w, h, rules, opts...)
	return s, cfg, err
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	// The terminal owns stdout and stderr while playing.
	closeLog, err := openLog(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	s, cfg, err := newSession(cmd, 0, 0)
	if err != nil {
		return err
	}

	g, err := game.New(s, cfg.DoubleMove)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	return g.Run(ctx)
}

func replayAction(ctx context.Context, cmd *cli.Command) error {
	closeLog, err := openLog(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	sc := &script.Scenario{}
	if path := cmd.Args().First(); path != "" {
		if sc, err = script.Load(path); err != nil {
			return err
		}
	}
	sc.Turns = append(sc.Turns, cmd.StringSlice("move")...)
	turns, err := sc.Moves()
	if err != nil {
		return err
	}
	if len(turns) == 0 {
		return errors.New("nothing to replay: pass a scenario file or --move")
	}

	s, _, err := newSession(cmd, sc.Width, sc.Height)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Generated game board of %d × %d\n%s\n", s.Width(), s.Height(), ui.FormatBoard(s.Rows(), s.Rules().Glyph))

	if err := script.Run(ctx, s, turns, out); err != nil {
		return err
	}

	st := s.Stats()
	fmt.Fprintf(out, "%d turns, %d tiles placed, %d merges, %d explosions\n", st.Turns, st.Placed, st.Merges, st.Explosions)
	return sc.Verify(s.Rows())
}

func tiersAction(ctx context.Context, cmd *cli.Command) error {
	rules, err := configFrom(cmd).Rules()
	if err != nil {
		return err
	}
	tiers, err := rules.BoardTiers()
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "%s: %s (merge %d or more)\n", rules.Name, tiers, rules.MinimumMerge)
	for _, def := range rules.All() {
		kind := "upgrades"
		if tiers.IsTerminal(board.Value(def.Value)) {
			kind = "explodes"
		}
		fmt.Fprintf(out, "  %s  glyph %s  colour %-8s %s\n", def.Value, def.Glyph, def.Color, kind)
	}
	return nil
}
