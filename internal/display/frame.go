package display

import (
	"fmt"

	"github.com/rovaughn/termsnake/internal/snake"
)

// Kind says what a cell shows; backends pick colors per kind.
type Kind int

const (
	KindEmpty Kind = iota
	KindBorder
	KindBody
	KindHead
	KindFood
	KindText
)

const (
	runeBorder = '#'
	runeBody   = 'o'
	runeHead   = '@'
	runeFood   = '*'
	runeEmpty  = ' '
)

type Glyph struct {
	Rune rune
	Kind Kind
}

// Frame is a composed picture of a snapshot: the board, a blank row, and the
// status line.
type Frame struct {
	Width, Height int
	cells         []Glyph
}

func (f *Frame) At(x, y int) Glyph {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Glyph{Rune: runeEmpty}
	}
	return f.cells[y*f.Width+x]
}

func (f *Frame) set(x, y int, g Glyph) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.cells[y*f.Width+x] = g
}

func (f *Frame) text(x, y int, s string) {
	for _, r := range s {
		f.set(x, y, Glyph{Rune: r, Kind: KindText})
		x++
	}
}

// Row returns row y as a string, handy for logs and tests.
func (f *Frame) Row(y int) string {
	row := make([]rune, f.Width)
	for x := range row {
		row[x] = f.At(x, y).Rune
	}
	return string(row)
}

func StatusLine(score int) string {
	return fmt.Sprintf("Score: %d   |   P: Pause   |   Q: Quit", score)
}

const (
	pauseTitle = "GAME PAUSED"
	pauseHint  = "Press P to continue"
)

// Compose lays out a snapshot. The head is drawn over any body segment sharing
// its cell and the food over both.
func Compose(s snake.Snapshot) Frame {
	status := StatusLine(s.Score)
	f := Frame{
		Width:  max(s.Width, len(status)),
		Height: s.Height + 2,
	}
	f.cells = make([]Glyph, f.Width*f.Height)
	for i := range f.cells {
		f.cells[i] = Glyph{Rune: runeEmpty}
	}

	board := snake.Board{Width: s.Width, Height: s.Height}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if board.Wall(snake.Point{X: x, Y: y}) {
				f.set(x, y, Glyph{Rune: runeBorder, Kind: KindBorder})
			}
		}
	}

	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		if !board.Contains(p) {
			continue
		}
		g := Glyph{Rune: runeBody, Kind: KindBody}
		if i == 0 {
			g = Glyph{Rune: runeHead, Kind: KindHead}
		}
		f.set(p.X, p.Y, g)
	}

	if board.Contains(s.Food) {
		f.set(s.Food.X, s.Food.Y, Glyph{Rune: runeFood, Kind: KindFood})
	}

	f.text(0, s.Height+1, status)

	if s.Paused {
		f.text(s.Width/2-5, s.Height/2, pauseTitle)
		f.text(s.Width/2-9, s.Height/2+1, pauseHint)
	}
	return f
}
