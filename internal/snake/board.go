package snake

import "github.com/pkg/errors"

const (
	DefaultWidth  = 30
	DefaultHeight = 20

	// InitialSize is the length of a freshly created snake.
	InitialSize = 3
)

var ErrBoardTooSmall = errors.New("snake: board too small for the initial snake")

// Config sizes the board. The outermost ring of cells is the wall.
type Config struct {
	Width, Height int
}

func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight}
}

func (c Config) validate() error {
	// The initial body spans (W/2-2 .. W/2, H/2), all of which must be interior.
	if c.Width/2-(InitialSize-1) < 1 || c.Width/2 > c.Width-2 {
		return ErrBoardTooSmall
	}
	if c.Height/2 < 1 || c.Height/2 > c.Height-2 {
		return ErrBoardTooSmall
	}
	return nil
}

// Board is the fixed grid the snake moves on.
type Board struct {
	Width, Height int
}

// Contains reports whether p lies anywhere on the grid, wall included.
func (b Board) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Interior reports whether p is a playable cell, i.e. not on the wall ring.
func (b Board) Interior(p Point) bool {
	return p.X >= 1 && p.X <= b.Width-2 && p.Y >= 1 && p.Y <= b.Height-2
}

// Wall reports whether p is on the outer ring.
func (b Board) Wall(p Point) bool {
	return b.Contains(p) && !b.Interior(p)
}

// Capacity is the number of interior cells.
func (b Board) Capacity() int {
	return (b.Width - 2) * (b.Height - 2)
}

// Wrap maps a point that stepped onto or past the wall to the opposite interior
// edge. The mapping is only exact for single-cell steps: x <= 0 goes to W-2 and
// x >= W-1 goes to 1, and the same for y.
func (b Board) Wrap(p Point) Point {
	if p.X <= 0 {
		p.X = b.Width - 2
	} else if p.X >= b.Width-1 {
		p.X = 1
	}
	if p.Y <= 0 {
		p.Y = b.Height - 2
	} else if p.Y >= b.Height-1 {
		p.Y = 1
	}
	return p
}
