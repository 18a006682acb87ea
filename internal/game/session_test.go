package game

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/merged/internal/board"
	"github.com/samdwyer/merged/internal/gamedata"
)

func mv(v board.Value, x, y int) board.Move {
	return board.Move{Value: v, X: x, Y: y}
}

func newTestSession(t *testing.T, width, height int, opts ...SessionOption) *Session {
	t.Helper()
	s, err := NewSession(width, height, gamedata.MustLoadRules(), opts...)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

func pairRules() *gamedata.RuleSet {
	return &gamedata.RuleSet{
		Name:         "pair",
		MinimumMerge: 2,
		Tiers: []gamedata.TierDef{
			{Value: "a", Glyph: "a"},
			{Value: "b", Glyph: "b"},
		},
	}
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, 4, 3)
	if s.ID == "" {
		t.Error("session ID is empty")
	}
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("size = %d×%d, want 4×3", s.Width(), s.Height())
	}
	if other := newTestSession(t, 4, 3); other.ID == s.ID {
		t.Error("two sessions share an ID")
	}

	if _, err := NewSession(0, 3, gamedata.MustLoadRules()); !errors.Is(err, board.ErrInvalidDimensions) {
		t.Errorf("NewSession(0, 3) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestSessionPlayMerges(t *testing.T) {
	s := newTestSession(t, 3, 3)
	ctx := context.Background()

	if _, err := s.Play(ctx, mv("1", 0, 0), mv("1", 1, 0)); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	grid, err := s.Play(ctx, mv("1", 2, 0))
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if grid[2][0] != "2" || grid[0][0] != board.Empty || grid[1][0] != board.Empty {
		t.Errorf("grid after merge = %v, want single 2 at (2,0)", grid)
	}

	want := Stats{Turns: 2, Placed: 3, Merges: 1}
	if got := s.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestSessionExplosion(t *testing.T) {
	s, err := NewSession(3, 3, pairRules())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	ctx := context.Background()

	turns := []board.Move{
		mv("a", 0, 0),
		mv("a", 1, 0), // a pair becomes b at (1,0)
		mv("a", 1, 2),
		mv("b", 0, 1),
		mv("b", 1, 1), // three b tiles explode and clear the a below
	}
	for _, m := range turns {
		if _, err := s.Play(ctx, m); err != nil {
			t.Fatalf("Play(%s) error = %v", m, err)
		}
	}

	want := Stats{Turns: 5, Placed: 5, Merges: 1, Explosions: 1, Cleared: 1}
	if got := s.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
	for y, row := range s.Rows() {
		for x, v := range row {
			if v != board.Empty {
				t.Errorf("(%d,%d) = %s, want empty board", x, y, v)
			}
		}
	}
}

func TestSessionRejectedMove(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := newTestSession(t, 3, 3, WithLogger(logger))
	ctx := context.Background()

	if _, err := s.Play(ctx, mv("1", 0, 0)); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	_, err := s.Play(ctx, mv("2", 1, 1), mv("1", 0, 0))
	if !errors.Is(err, board.ErrPositionOccupied) {
		t.Fatalf("Play() error = %v, want ErrPositionOccupied", err)
	}

	st := s.Stats()
	if st.Turns != 1 || st.Placed != 2 {
		t.Errorf("Stats() = %+v, want 1 turn and 2 placed", st)
	}
	if got := s.Grid()[1][1]; got != "2" {
		t.Errorf("(1,1) = %q, want the move placed before the rejection", got)
	}
	s.Resolve(ctx)

	last := hook.LastEntry()
	if last == nil {
		t.Fatal("no log entries")
	}
	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "move rejected" {
			warned = true
			if e.Data["game_id"] != s.ID {
				t.Errorf("game_id = %v, want %s", e.Data["game_id"], s.ID)
			}
		}
	}
	if !warned {
		t.Error("rejected move was not logged at warn level")
	}
}

func TestSessionCheck(t *testing.T) {
	s := newTestSession(t, 2, 2)
	if err := s.Check(mv("1", 0, 0)); err != nil {
		t.Errorf("Check() on empty cell = %v, want nil", err)
	}
	if err := s.Check(mv("9", 0, 0)); !errors.Is(err, board.ErrInvalidTileValue) {
		t.Errorf("Check(9) = %v, want ErrInvalidTileValue", err)
	}
	if err := s.Check(mv("1", 2, 0)); !errors.Is(err, board.ErrOutOfBounds) {
		t.Errorf("Check(out of bounds) = %v, want ErrOutOfBounds", err)
	}
}

func TestSessionClear(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := newTestSession(t, 3, 3, WithLogger(logger))
	ctx := context.Background()

	if _, err := s.Play(ctx, mv("4", 1, 1), mv("5", 2, 2)); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if got := s.AdjacentSame(board.Position{X: 1, Y: 1}); len(got) != 0 {
		t.Errorf("AdjacentSame() = %v, want none", got)
	}

	s.Clear(ctx)
	for _, col := range s.Grid() {
		for _, v := range col {
			if v != board.Empty {
				t.Fatalf("Clear() left %s on board", v)
			}
		}
	}
	if hook.LastEntry().Message != "board cleared" {
		t.Errorf("last log = %q, want %q", hook.LastEntry().Message, "board cleared")
	}
	if s.Stats().Turns != 1 {
		t.Error("Clear() reset stats")
	}
}

func TestSessionSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	s := newTestSession(t, 3, 3, WithTracer(tp.Tracer("test")))
	ctx := context.Background()

	if _, err := s.Play(ctx, mv("1", 0, 0), mv("1", 1, 0), mv("1", 2, 0)); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if _, err := s.Play(ctx, mv("1", 0, 0), mv("9", 0, 1)); err == nil {
		t.Fatal("Play() with bad value error = nil")
	}
	s.Clear(ctx)

	var names []string
	var merges, errored int
	for _, span := range sr.Ended() {
		names = append(names, span.Name())
		for _, ev := range span.Events() {
			if ev.Name == "merge" {
				merges++
			}
		}
		if span.Status().Code.String() == "Error" {
			errored++
		}
	}

	want := []string{"game.apply_moves", "game.resolve", "game.apply_moves", "game.clear"}
	if len(names) != len(want) {
		t.Fatalf("spans = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("span %d = %s, want %s", i, names[i], want[i])
		}
	}
	if merges != 1 {
		t.Errorf("merge events = %d, want 1", merges)
	}
	if errored != 1 {
		t.Errorf("error spans = %d, want 1", errored)
	}
}

func TestSessionConcurrentPlay(t *testing.T) {
	s := newTestSession(t, 10, 10)
	ctx := context.Background()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 50; i++ {
				m := mv("1", rng.Intn(10), rng.Intn(10))
				_, _ = s.Play(ctx, m)
			}
		}(int64(w))
	}
	wg.Wait()

	st := s.Stats()
	if st.Turns > 200 || st.Placed != st.Turns {
		t.Errorf("Stats() = %+v, want placed == turns <= 200", st)
	}
}
