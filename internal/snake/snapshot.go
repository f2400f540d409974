package snake

// Snapshot is a read-only copy of the game for renderers.
type Snapshot struct {
	Width, Height int
	Body          []Point // head first
	Food          Point
	Direction     Direction
	Score         int
	Paused        bool
	GameOver      bool
	Tick          uint64
}

func (g *GameState) Snapshot() Snapshot {
	return Snapshot{
		Width:     g.board.Width,
		Height:    g.board.Height,
		Body:      g.body.clone(),
		Food:      g.food,
		Direction: g.direction,
		Score:     g.Score(),
		Paused:    g.paused,
		GameOver:  g.gameOver,
		Tick:      g.tick,
	}
}

// Head returns the head cell, or false for an empty body.
func (s Snapshot) Head() (Point, bool) {
	if len(s.Body) == 0 {
		return Point{}, false
	}
	return s.Body[0], true
}
