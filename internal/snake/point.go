package snake

import "strconv"

// Point is a cell on the board.
type Point struct {
	X, Y int
}

func (p Point) add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}
