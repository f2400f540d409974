package snake

import (
	"golang.org/x/exp/rand"
)

// RNG is the random source used for food placement.
type RNG interface {
	Intn(n int) int
}

// NewRand returns a seeded RNG. Equal seeds give equal food sequences.
func NewRand(seed uint64) RNG {
	return rand.New(rand.NewSource(seed))
}

// emptyCells lists interior cells not covered by the snake, row by row.
func (g *GameState) emptyCells() []Point {
	empty := make([]Point, 0, g.board.Capacity())
	for y := 1; y < g.board.Height-1; y++ {
		for x := 1; x < g.board.Width-1; x++ {
			p := Point{x, y}
			if !g.body.occupies(p) {
				empty = append(empty, p)
			}
		}
	}
	return empty
}

// placeFood moves the food to a uniformly chosen empty cell. With no empty cell
// left the food stays where it is.
func (g *GameState) placeFood() bool {
	empty := g.emptyCells()
	if len(empty) == 0 {
		return false
	}
	g.food = empty[g.rng.Intn(len(empty))]
	return true
}
