package ui

import (
	"strings"

	"github.com/samdwyer/merged/internal/board"
)

// GlyphFunc maps a tile value to the rune drawn for it.
type GlyphFunc func(board.Value) rune

// ValueGlyph draws a value as its first rune.
func ValueGlyph(v board.Value) rune {
	for _, r := range v {
		return r
	}
	return ' '
}

// BoardLines lays out rows (indexed [y][x]) as a box-drawing grid, one cell
// per tile with separators between them. Empty cells are blank.
//
//	┌─┬─┐
//	│1│ │
//	├─┼─┤
//	│ │2│
//	└─┴─┘
func BoardLines(rows [][]board.Value, glyph GlyphFunc) []string {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	if glyph == nil {
		glyph = ValueGlyph
	}

	width := len(rows[0])
	ruled := func(left, mid, right string) string {
		return left + strings.Repeat("─"+mid, width-1) + "─" + right
	}
	top := ruled("┌", "┬", "┐")
	middle := ruled("├", "┼", "┤")
	bottom := ruled("└", "┴", "┘")

	lines := make([]string, 0, 2*len(rows)+1)
	lines = append(lines, top)
	for y, row := range rows {
		if y > 0 {
			lines = append(lines, middle)
		}
		var sb strings.Builder
		sb.WriteString("│")
		for _, v := range row {
			if v == board.Empty {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(glyph(v))
			}
			sb.WriteString("│")
		}
		lines = append(lines, sb.String())
	}
	return append(lines, bottom)
}

// FormatBoard renders rows as box-drawing text without a trailing newline.
func FormatBoard(rows [][]board.Value, glyph GlyphFunc) string {
	return strings.Join(BoardLines(rows, glyph), "\n")
}
