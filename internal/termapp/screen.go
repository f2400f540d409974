package termapp

import "unicode/utf8"

type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0x00, 0x00, 0x00}
	White = Color{0xff, 0xff, 0xff}
	Red   = Color{0xcd, 0x00, 0x00}
	Green = Color{0x00, 0xcd, 0x00}
	Blue  = Color{0x00, 0x00, 0xee}
	Cyan  = Color{0x00, 0xcd, 0xcd}
)

type Style struct {
	fore Color
	back Color
}

type Cell struct {
	Style
	text rune
}

// Text returns the rune in the cell, or 0 for a never-written cell.
func (c Cell) Text() rune { return c.text }

func (c Cell) Fore() Color { return c.fore }
func (c Cell) Back() Color { return c.back }

type Cursor struct {
	Style
	styled  bool // Style was emitted since the last reset
	x, y    int
	visible bool
}

// Screen is a full frame of cells. Render functions build a fresh one on every
// redraw and the terminal diffs it against what is already on screen.
type Screen struct {
	width, height int
	cells         []Cell
	cursor        Cursor
}

func NewScreen(width, height int) *Screen {
	return &Screen{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// Print writes text starting at (x, y), one rune per column. Anything that
// falls off the screen is dropped.
func (s *Screen) Print(x, y int, back, fore Color, text string) {
	for _, r := range text {
		s.PrintRune(x, y, back, fore, r)
		x++
	}
}

func (s *Screen) PrintRune(x, y int, back, fore Color, r rune) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	if r == utf8.RuneError {
		r = '?'
	}
	s.cells[y*s.width+x] = Cell{
		Style: Style{
			back: back,
			fore: fore,
		},
		text: r,
	}
}

// At returns the cell at (x, y). Off-screen positions return an empty cell.
func (s *Screen) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return Cell{}
	}
	return s.cells[y*s.width+x]
}

func (s *Screen) SetCursor(x, y int, visible bool) {
	s.cursor.x = x
	s.cursor.y = y
	s.cursor.visible = visible
}
