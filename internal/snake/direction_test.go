package snake

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		wantDX int
		wantDY int
	}{
		{Up, 0, -1},
		{Right, 1, 0},
		{Down, 0, 1},
		{Left, -1, 0},
		{Direction(9), 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Fatalf("%v.Delta() = (%d,%d), want (%d,%d)", tc.dir, dx, dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite is not an involution", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and %v do not cancel", d, d.Opposite())
		}
	}
}

func TestBoardWrapStaysOnBoard(t *testing.T) {
	b := Board{Width: DefaultWidth, Height: DefaultHeight}
	for x := 1; x < b.Width-1; x++ {
		for y := 1; y < b.Height-1; y++ {
			for _, d := range []Direction{Up, Right, Down, Left} {
				dx, dy := d.Delta()
				p := b.Wrap(Point{x + dx, y + dy})
				if !b.Interior(p) {
					t.Fatalf("Wrap from (%d,%d) %v = %v, not interior", x, y, d, p)
				}
			}
		}
	}
}
