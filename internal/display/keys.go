package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rovaughn/termsnake/internal/loop"
	"github.com/rovaughn/termsnake/internal/termapp"
)

// commandForRune maps the letter controls. Movement letters are lowercase only.
func commandForRune(r rune) loop.Command {
	switch r {
	case 'w':
		return loop.Up
	case 'd':
		return loop.Right
	case 's':
		return loop.Down
	case 'a':
		return loop.Left
	case 'p', 'P':
		return loop.TogglePause
	case 'q', 'Q':
		return loop.Quit
	default:
		return loop.None
	}
}

func commandForTcell(ev *tcell.EventKey) loop.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return loop.Up
	case tcell.KeyDown:
		return loop.Down
	case tcell.KeyLeft:
		return loop.Left
	case tcell.KeyRight:
		return loop.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return loop.Quit
	case tcell.KeyRune:
		return commandForRune(ev.Rune())
	default:
		return loop.None
	}
}

func commandForKey(k termapp.Key) loop.Command {
	switch k {
	case termapp.KeyUp:
		return loop.Up
	case termapp.KeyDown:
		return loop.Down
	case termapp.KeyLeft:
		return loop.Left
	case termapp.KeyRight:
		return loop.Right
	case termapp.KeyEscape, termapp.KeyCtrlC:
		return loop.Quit
	default:
		return commandForRune(rune(k))
	}
}
