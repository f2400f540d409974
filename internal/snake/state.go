package snake

import "github.com/pkg/errors"

var (
	ErrEmptyBody     = errors.New("snake: body must have at least one segment")
	ErrInvalidLayout = errors.New("snake: layout does not fit the board")
)

// GameState is the whole simulation: snake, food, heading and the pause and
// game-over flags. It is owned by a single caller and is not safe for
// concurrent use.
type GameState struct {
	board     Board
	body      body
	food      Point
	direction Direction
	paused    bool
	gameOver  bool
	tick      uint64
	rng       RNG
}

// StepResult describes what happened during one Step.
type StepResult struct {
	Head    Point
	Ate     bool
	Crashed bool
}

// New creates a game with the snake centered, heading right, and food on a
// random empty cell.
func New(cfg Config, rng RNG) (*GameState, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	start := Point{cfg.Width / 2, cfg.Height / 2}
	segments := make([]Point, InitialSize)
	for i := range segments {
		segments[i] = Point{start.X - i, start.Y}
	}

	g := &GameState{
		board:     Board{Width: cfg.Width, Height: cfg.Height},
		direction: Right,
		rng:       rng,
	}
	g.body = newBody(g.board.Width*g.board.Height, segments)
	g.placeFood()
	return g, nil
}

// FromBody builds a game from an explicit layout. The body is copied, head
// first. Every segment and the food must be interior cells, the food must not
// sit on the body, and dir must be one of the four headings; otherwise
// ErrInvalidLayout is returned.
func FromBody(cfg Config, segments []Point, dir Direction, food Point, rng RNG) (*GameState, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, ErrEmptyBody
	}
	board := Board{Width: cfg.Width, Height: cfg.Height}
	if !dir.valid() {
		return nil, errors.Wrapf(ErrInvalidLayout, "direction %d", int(dir))
	}
	for _, p := range segments {
		if !board.Interior(p) {
			return nil, errors.Wrapf(ErrInvalidLayout, "segment %v", p)
		}
		if p == food {
			return nil, errors.Wrapf(ErrInvalidLayout, "food %v on the body", food)
		}
	}
	if !board.Interior(food) {
		return nil, errors.Wrapf(ErrInvalidLayout, "food %v", food)
	}

	g := &GameState{
		board:     board,
		food:      food,
		direction: dir,
		rng:       rng,
	}
	g.body = newBody(board.Width*board.Height, segments)
	return g, nil
}

// AdvanceHead returns where the head would land after one step in d.
func (g *GameState) AdvanceHead(d Direction) Point {
	return g.board.Wrap(g.body.head().add(d.Delta()))
}

// Step advances the game by one tick. It does nothing while the game is paused
// or over.
func (g *GameState) Step() StepResult {
	if g.paused || g.gameOver {
		return StepResult{}
	}
	g.tick++

	head := g.AdvanceHead(g.direction)
	g.body.moveTo(head)

	res := StepResult{Head: head}
	if head == g.food {
		g.body.grow()
		res.Ate = true
	}

	if g.body.hitsSelf() {
		g.gameOver = true
		res.Crashed = true
	}

	if res.Ate {
		g.placeFood()
	}
	return res
}

// SetDirection changes the heading for the next Step. Reversing onto the neck
// and turning while paused are ignored. It reports whether d was accepted.
func (g *GameState) SetDirection(d Direction) bool {
	if g.paused || !d.valid() || d == g.direction.Opposite() {
		return false
	}
	g.direction = d
	return true
}

func (g *GameState) TogglePause() {
	g.paused = !g.paused
}

func (g *GameState) Paused() bool          { return g.paused }
func (g *GameState) IsGameOver() bool      { return g.gameOver }
func (g *GameState) Direction() Direction  { return g.direction }
func (g *GameState) Head() Point           { return g.body.head() }
func (g *GameState) Food() Point           { return g.food }
func (g *GameState) Len() int              { return g.body.len() }
func (g *GameState) Board() Board          { return g.board }
func (g *GameState) Tick() uint64          { return g.tick }
func (g *GameState) Occupied(p Point) bool { return g.body.occupies(p) }

// Score is the number of segments grown since the start.
func (g *GameState) Score() int {
	return g.body.len() - InitialSize
}
