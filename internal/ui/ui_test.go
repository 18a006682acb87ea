package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/merged/internal/board"
	"github.com/samdwyer/merged/internal/gamedata"
)

type fakeCell struct {
	r     rune
	style tcell.Style
}

type fakeSurface struct {
	cells  map[[2]int]fakeCell
	shown  int
	clears int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{cells: make(map[[2]int]fakeCell)}
}

func (f *fakeSurface) Clear() {
	f.clears++
	f.cells = make(map[[2]int]fakeCell)
}

func (f *fakeSurface) SetContent(x, y int, r rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = fakeCell{r: r, style: style}
}

func (f *fakeSurface) Show() { f.shown++ }

func (f *fakeSurface) line(y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		c, ok := f.cells[[2]int{x, y}]
		if !ok {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.r)
	}
	return sb.String()
}

func TestFormatBoard(t *testing.T) {
	rows := [][]board.Value{
		{"1", board.Empty},
		{board.Empty, "2"},
	}
	want := "┌─┬─┐\n" +
		"│1│ │\n" +
		"├─┼─┤\n" +
		"│ │2│\n" +
		"└─┴─┘"

	if got := FormatBoard(rows, nil); got != want {
		t.Errorf("FormatBoard() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatBoardNonSquare(t *testing.T) {
	rows := [][]board.Value{
		{"1", "M", board.Empty},
	}
	want := "┌─┬─┬─┐\n│1│M│ │\n└─┴─┴─┘"
	if got := FormatBoard(rows, nil); got != want {
		t.Errorf("FormatBoard() =\n%s\nwant\n%s", got, want)
	}

	lines := BoardLines([][]board.Value{{"a"}, {"b"}, {"c"}}, nil)
	if len(lines) != 7 {
		t.Errorf("BoardLines() for 1×3 = %d lines, want 7", len(lines))
	}
	if FormatBoard(nil, nil) != "" {
		t.Error("FormatBoard(nil) should be empty")
	}
}

func TestFormatBoardGlyphs(t *testing.T) {
	glyph := func(v board.Value) rune {
		if v == "M" {
			return '*'
		}
		return ValueGlyph(v)
	}
	got := FormatBoard([][]board.Value{{"M", "3"}}, glyph)
	if !strings.Contains(got, "│*│3│") {
		t.Errorf("FormatBoard() with glyphs =\n%s", got)
	}
}

func TestRendererDrawsBoard(t *testing.T) {
	rules := gamedata.MustLoadRules()
	surface := newFakeSurface()
	r := NewRenderer(surface, rules)

	rows := [][]board.Value{
		{"1", board.Empty, board.Empty},
		{board.Empty, "M", board.Empty},
	}
	r.Render(View{
		Rows:     rows,
		Cursor:   board.Position{X: 2, Y: 1},
		Selected: "3",
		Status:   "status line",
		Message:  "hello",
	})

	if surface.shown != 1 {
		t.Errorf("Show() called %d times, want 1", surface.shown)
	}

	wantLines := []string{
		"┌─┬─┬─┐",
		"│1│ │ │",
		"├─┼─┼─┤",
		"│ │M│3│", // cursor previews the selected tile
		"└─┴─┴─┘",
	}
	for y, want := range wantLines {
		if got := surface.line(y, 7); got != want {
			t.Errorf("line %d = %q, want %q", y, got, want)
		}
	}
	if got := surface.line(5, 11); got != "status line" {
		t.Errorf("status = %q, want %q", got, "status line")
	}
	if got := surface.line(6, 5); got != "hello" {
		t.Errorf("message = %q, want %q", got, "hello")
	}

	sx, sy := cellAt(0, 0)
	if got := surface.cells[[2]int{sx, sy}].style; got != r.tileStyle("1") {
		t.Errorf("tile style = %v, want tier colour", got)
	}
	sx, sy = cellAt(2, 1)
	want := r.tileStyle(board.Empty).Reverse(true).Bold(true)
	if got := surface.cells[[2]int{sx, sy}].style; got != want {
		t.Errorf("cursor style = %v, want %v", got, want)
	}
}

func TestRendererStagedTile(t *testing.T) {
	rules := gamedata.MustLoadRules()
	surface := newFakeSurface()
	r := NewRenderer(surface, rules)

	rows := [][]board.Value{
		{board.Empty, board.Empty},
		{board.Empty, board.Empty},
	}
	r.Render(View{
		Rows:   rows,
		Cursor: board.Position{X: 0, Y: 0},
		Staged: &board.Move{Value: "2", X: 1, Y: 1},
	})

	sx, sy := cellAt(1, 1)
	c := surface.cells[[2]int{sx, sy}]
	if c.r != '2' {
		t.Errorf("staged cell = %q, want '2'", c.r)
	}
	if c.style != r.tileStyle("2").Underline(true) {
		t.Errorf("staged style = %v, want underlined tier colour", c.style)
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		x, y   int
		sx, sy int
	}{
		{0, 0, 1, 1},
		{1, 0, 3, 1},
		{2, 3, 5, 7},
	}
	for _, tt := range tests {
		sx, sy := cellAt(tt.x, tt.y)
		if sx != tt.sx || sy != tt.sy {
			t.Errorf("cellAt(%d, %d) = (%d, %d), want (%d, %d)", tt.x, tt.y, sx, sy, tt.sx, tt.sy)
		}
	}
}
