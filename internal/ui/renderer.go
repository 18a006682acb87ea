package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/merged/internal/board"
	"github.com/samdwyer/merged/internal/gamedata"
)

// View is everything the renderer needs for one frame.
type View struct {
	Rows     [][]board.Value // board indexed [y][x]
	Cursor   board.Position
	Staged   *board.Move // first tile of a double move, not yet on the board
	Selected board.Value
	Status   string
	Message  string
}

// Renderer handles drawing the game to a surface.
type Renderer struct {
	surface Surface
	rules   *gamedata.RuleSet
}

// NewRenderer creates a renderer drawing tiles with the rule set's glyphs and colours.
func NewRenderer(surface Surface, rules *gamedata.RuleSet) *Renderer {
	return &Renderer{surface: surface, rules: rules}
}

// cellAt returns the surface position of board cell (x, y) inside the frame.
func cellAt(x, y int) (int, int) {
	return 1 + 2*x, 1 + 2*y
}

// Render draws one frame.
func (r *Renderer) Render(v View) {
	r.surface.Clear()

	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)
	lines := BoardLines(v.Rows, r.rules.Glyph)
	for y, line := range lines {
		r.drawText(0, y, line, frame)
	}

	for y, row := range v.Rows {
		for x, val := range row {
			if val == board.Empty {
				continue
			}
			sx, sy := cellAt(x, y)
			r.surface.SetContent(sx, sy, r.rules.Glyph(val), r.tileStyle(val))
		}
	}

	if v.Staged != nil {
		sx, sy := cellAt(v.Staged.X, v.Staged.Y)
		r.surface.SetContent(sx, sy, r.rules.Glyph(v.Staged.Value), r.tileStyle(v.Staged.Value).Underline(true))
	}

	if len(v.Rows) > 0 {
		r.drawCursor(v)
	}

	bottom := len(lines)
	r.drawText(0, bottom, v.Status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, bottom+1, v.Message, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	r.surface.Show()
}

// drawCursor highlights the cursor cell, previewing the selected tile when the cell is free.
func (r *Renderer) drawCursor(v View) {
	c := v.Cursor
	if c.Y < 0 || c.Y >= len(v.Rows) || c.X < 0 || c.X >= len(v.Rows[c.Y]) {
		return
	}
	sx, sy := cellAt(c.X, c.Y)

	val := v.Rows[c.Y][c.X]
	ch := r.rules.Glyph(val)
	if val == board.Empty {
		ch = r.rules.Glyph(v.Selected)
	}
	r.surface.SetContent(sx, sy, ch, r.tileStyle(val).Reverse(true).Bold(true))
}

// tileStyle returns the style for a tile value.
func (r *Renderer) tileStyle(v board.Value) tcell.Style {
	if v == board.Empty {
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
	style := tcell.StyleDefault.Foreground(r.rules.Color(v))
	if tiers := r.rules.All(); len(tiers) > 0 && tiers[len(tiers)-1].Value == string(v) {
		style = style.Bold(true)
	}
	return style
}

// drawText writes s starting at (x, y), one rune per column.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	col := x
	for _, ch := range s {
		r.surface.SetContent(col, y, ch, style)
		col++
	}
}
