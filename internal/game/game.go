package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/merged/internal/board"
	"github.com/samdwyer/merged/internal/telemetry"
	"github.com/samdwyer/merged/internal/ui"
)

// Game is an interactive terminal session.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	cursor   *Cursor
	selected board.Value
	staged   *board.Move
	double   bool
	state    State
	message  string
	running  bool
}

// New opens the terminal and creates a game around session.
func New(session *Session, doubleMove bool) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return NewWithScreen(session, doubleMove, screen), nil
}

// NewWithScreen creates a game drawing on an already initialized screen.
func NewWithScreen(session *Session, doubleMove bool, screen *ui.Screen) *Game {
	g := newGame(session, doubleMove)
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, session.Rules())
	return g
}

// newGame builds the game state without a terminal.
func newGame(session *Session, doubleMove bool) *Game {
	tiers := session.Rules().All()
	return &Game{
		session:  session,
		cursor:   NewCursor(session.Width(), session.Height()),
		selected: board.Value(tiers[0].Value),
		double:   doubleMove,
		state:    StatePlacing,
		running:  true,
	}
}

// Run executes the main game loop until the player quits or ctx is done.
// The screen is closed on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()
	stop := context.AfterFunc(ctx, g.screen.Interrupt)
	defer stop()

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	span.SetAttributes(
		attribute.String("game.id", g.session.ID),
		attribute.Int("board.width", g.session.Width()),
		attribute.Int("board.height", g.session.Height()),
		attribute.Bool("game.double_move", g.double),
	)
	span.End()

	for g.running && ctx.Err() == nil {
		g.renderer.Render(g.View())
		g.handleInput(ctx)
	}
	return nil
}

// View returns the frame for the current state.
func (g *Game) View() ui.View {
	return ui.View{
		Rows:     g.session.Rows(),
		Cursor:   g.cursor.Position(),
		Staged:   g.staged,
		Selected: g.selected,
		Status:   g.status(),
		Message:  g.message,
	}
}

func (g *Game) status() string {
	st := g.session.Stats()
	line := fmt.Sprintf("%d×%d  tile %s  %s  turns %d  merges %d",
		g.session.Width(), g.session.Height(), g.selected, g.state, st.Turns, st.Merges)
	if same := g.session.AdjacentSame(g.cursor.Position()); len(same) > 0 {
		line += fmt.Sprintf("  linked %d", len(same))
	}
	return line + "  [arrows] move [space] place [c] clear [q] quit"
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.apply(ctx, commandFor(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// apply performs one player command.
func (g *Game) apply(ctx context.Context, c command) {
	g.message = ""

	switch c.kind {
	case cmdQuit:
		g.running = false
	case cmdMove:
		g.cursor.Move(c.dx, c.dy)
	case cmdSelect:
		def := g.session.Rules().ByGlyph(c.glyph)
		if def == nil {
			g.message = fmt.Sprintf("no tile %q", c.glyph)
			return
		}
		g.selected = board.Value(def.Value)
	case cmdPlace:
		g.place(ctx)
	case cmdClear:
		g.staged = nil
		g.state = StatePlacing
		g.session.Clear(ctx)
		g.message = "board cleared"
	case cmdCancel:
		if g.staged != nil {
			g.staged = nil
			g.state = StatePlacing
			g.message = "first tile discarded"
		}
	}
}

// place puts the selected tile under the cursor. In double-move mode the
// first tile is staged until the second arrives.
func (g *Game) place(ctx context.Context) {
	p := g.cursor.Position()
	m := board.Move{Value: g.selected, X: p.X, Y: p.Y}

	if err := g.session.Check(m); err != nil {
		g.message = err.Error()
		return
	}

	if g.double && g.staged == nil {
		g.staged = &m
		g.state = StateSecondTile
		return
	}

	moves := []board.Move{m}
	if g.staged != nil {
		if g.staged.X == m.X && g.staged.Y == m.Y {
			g.message = fmt.Sprintf("%s: %s", board.ErrPositionOccupied, p)
			return
		}
		moves = []board.Move{*g.staged, m}
	}
	g.staged = nil
	g.state = StatePlacing

	if _, err := g.session.Play(ctx, moves...); err != nil {
		g.message = err.Error()
	}
}
