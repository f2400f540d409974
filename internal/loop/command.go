package loop

import (
	"time"

	"github.com/rovaughn/termsnake/internal/snake"
)

// Command is the single input the loop consumes per tick.
type Command int

const (
	None Command = iota
	Up
	Down
	Left
	Right
	TogglePause
	Quit
)

func (c Command) String() string {
	switch c {
	case None:
		return "None"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case TogglePause:
		return "TogglePause"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps a movement command to a snake heading.
func (c Command) Direction() (snake.Direction, bool) {
	switch c {
	case Up:
		return snake.Up, true
	case Down:
		return snake.Down, true
	case Left:
		return snake.Left, true
	case Right:
		return snake.Right, true
	default:
		return 0, false
	}
}

// Input yields at most one command per call. It must return None once timeout
// has passed without input.
type Input interface {
	PollCommand(timeout time.Duration) Command
}

type Renderer interface {
	Render(s snake.Snapshot)
}

// Display is the terminal collaborator. Acquire and Release bracket a run.
type Display interface {
	Input
	Renderer
	Acquire() error
	Release() error
}

// Listener is told about notable game events. Calls happen on the loop's
// goroutine and must not block.
type Listener interface {
	Ate(score int)
	Crashed(score int)
}
