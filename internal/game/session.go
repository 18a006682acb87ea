package game

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/merged/internal/board"
	"github.com/samdwyer/merged/internal/gamedata"
	"github.com/samdwyer/merged/internal/telemetry"
)

// Stats counts what happened during a session.
type Stats struct {
	Turns      int
	Placed     int
	Merges     int
	Explosions int
	Cleared    int // tiles removed by explosions
}

// Session is one board plus the rules it is played with. All methods are
// safe for concurrent use; each turn runs to completion under the lock.
type Session struct {
	ID string

	mu     sync.Mutex
	board  *board.Board
	rules  *gamedata.RuleSet
	log    *logrus.Entry
	tracer trace.Tracer
	span   trace.Span // span receiving merge events during resolve
	stats  Stats
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger. Sessions log nowhere by default.
func WithLogger(l *logrus.Logger) SessionOption {
	return func(s *Session) {
		s.log = l.WithField("game_id", s.ID)
	}
}

// WithTracer sets the tracer used for turn spans.
func WithTracer(t trace.Tracer) SessionOption {
	return func(s *Session) {
		s.tracer = t
	}
}

// NewSession creates a width×height board played with rules.
func NewSession(width, height int, rules *gamedata.RuleSet, opts ...SessionOption) (*Session, error) {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := &Session{
		ID:     uuid.NewString(),
		rules:  rules,
		tracer: telemetry.Tracer("game"),
		span:   trace.SpanFromContext(context.Background()),
	}
	s.log = quiet.WithField("game_id", s.ID)
	for _, opt := range opts {
		opt(s)
	}

	boardOpts, err := rules.BoardOptions()
	if err != nil {
		return nil, err
	}
	boardOpts = append(boardOpts, board.WithObserver(s))

	b, err := board.New(width, height, boardOpts...)
	if err != nil {
		return nil, err
	}
	s.board = b
	s.log = s.log.WithFields(logrus.Fields{"width": width, "height": height})
	s.log.WithField("rules", rules.Name).Debug("session started")
	return s, nil
}

// Play places moves in order and resolves the board. If a move is rejected,
// the moves before it stay on the board unresolved and the error is returned.
func (s *Session) Play(ctx context.Context, moves ...board.Move) ([][]board.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := s.tracer.Start(ctx, "game.apply_moves")
	span.SetAttributes(attribute.Int("moves.count", len(moves)))

	before := s.board.TileCount()
	err := s.board.ApplyMoves(moves)
	s.stats.Placed += s.board.TileCount() - before
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		s.log.WithError(err).Warn("move rejected")
		return s.board.Grid(), err
	}
	for _, m := range moves {
		s.log.WithField("move", m.String()).Debug("tile placed")
	}
	span.End()

	grid := s.resolve(ctx)
	s.stats.Turns++
	return grid, nil
}

// Resolve settles any tiles left pending by a rejected turn.
func (s *Session) Resolve(ctx context.Context) [][]board.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolve(ctx)
}

func (s *Session) resolve(ctx context.Context) [][]board.Value {
	_, span := s.tracer.Start(ctx, "game.resolve")
	defer span.End()
	span.SetAttributes(attribute.Int("pending.count", s.board.PendingCount()))

	s.span = span
	grid := s.board.Resolve()
	s.span = trace.SpanFromContext(context.Background())

	span.SetAttributes(attribute.Int("board.tiles", s.board.TileCount()))
	s.log.WithField("tiles", s.board.TileCount()).Debug("board resolved")
	return grid
}

// Clear empties the board. Stats are kept.
func (s *Session) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, span := s.tracer.Start(ctx, "game.clear")
	defer span.End()
	span.SetAttributes(attribute.Int("board.tiles", s.board.TileCount()))

	s.board.Clear()
	s.log.Info("board cleared")
}

// Merged implements board.Observer.
func (s *Session) Merged(e board.MergeEvent) {
	s.stats.Merges++
	s.span.AddEvent("merge", trace.WithAttributes(
		attribute.String("merge.from", e.From.String()),
		attribute.String("merge.to", e.To.String()),
		attribute.Int("merge.size", e.Size),
		attribute.Int("merge.x", e.At.X),
		attribute.Int("merge.y", e.At.Y),
	))
	s.log.WithFields(logrus.Fields{
		"at":   e.At.String(),
		"from": e.From.String(),
		"to":   e.To.String(),
		"size": e.Size,
	}).Info("tiles merged")
}

// Exploded implements board.Observer.
func (s *Session) Exploded(e board.ExplosionEvent) {
	s.stats.Explosions++
	s.stats.Cleared += len(e.Cleared)
	s.span.AddEvent("explosion", trace.WithAttributes(
		attribute.String("explosion.value", e.Value.String()),
		attribute.Int("explosion.chain", e.ChainSize),
		attribute.Int("explosion.cleared", len(e.Cleared)),
		attribute.Int("explosion.x", e.At.X),
		attribute.Int("explosion.y", e.At.Y),
	))
	s.log.WithFields(logrus.Fields{
		"at":      e.At.String(),
		"chain":   e.ChainSize,
		"cleared": len(e.Cleared),
	}).Info("tiles exploded")
}

// Check reports whether m could be placed now.
func (s *Session) Check(m board.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Check(m)
}

// Rows returns the board indexed [y][x].
func (s *Session) Rows() [][]board.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Rows()
}

// Grid returns the board indexed [x][y].
func (s *Session) Grid() [][]board.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Grid()
}

// AdjacentSame returns the tiles next to p sharing its value.
func (s *Session) AdjacentSame(p board.Position) []board.Tile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.AdjacentSame(p)
}

// Stats returns a copy of the session counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Width returns the board width.
func (s *Session) Width() int { return s.board.Width() }

// Height returns the board height.
func (s *Session) Height() int { return s.board.Height() }

// Rules returns the rule set the session plays with.
func (s *Session) Rules() *gamedata.RuleSet { return s.rules }
