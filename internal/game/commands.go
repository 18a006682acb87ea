package game

import "github.com/gdamore/tcell/v2"

type commandKind int

const (
	cmdNone commandKind = iota
	cmdQuit
	cmdMove
	cmdSelect
	cmdPlace
	cmdClear
	cmdCancel
)

// command is a decoded key press.
type command struct {
	kind   commandKind
	dx, dy int
	glyph  rune
}

// commandFor maps a key press to a command. Any rune other than the control
// keys selects the tile with that glyph; gamedata reserves those keys.
func commandFor(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return command{kind: cmdQuit}
	case tcell.KeyUp:
		return command{kind: cmdMove, dy: -1}
	case tcell.KeyDown:
		return command{kind: cmdMove, dy: 1}
	case tcell.KeyLeft:
		return command{kind: cmdMove, dx: -1}
	case tcell.KeyRight:
		return command{kind: cmdMove, dx: 1}
	case tcell.KeyEnter:
		return command{kind: cmdPlace}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return command{kind: cmdCancel}
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return command{kind: cmdQuit}
		case ' ':
			return command{kind: cmdPlace}
		case 'c', 'C':
			return command{kind: cmdClear}
		default:
			return command{kind: cmdSelect, glyph: r}
		}
	}
	return command{kind: cmdNone}
}
