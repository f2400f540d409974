package loop

import (
	"io"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/rovaughn/termsnake/internal/snake"
)

const DefaultTick = 100 * time.Millisecond

// Loop drives a GameState at a fixed tick, one command per tick.
type Loop struct {
	game      *snake.GameState
	display   Display
	tick      time.Duration
	sleep     func(time.Duration)
	logger    *log.Logger
	listeners []Listener

	state  State
	reason Reason
}

// AcquireError means the display could not be set up and nothing was played.
type AcquireError struct {
	Err error
}

func (e *AcquireError) Error() string { return "acquire display: " + e.Err.Error() }
func (e *AcquireError) Unwrap() error { return e.Err }

type Option func(*Loop)

func WithTick(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.tick = d
		}
	}
}

// WithSleep replaces time.Sleep for the paused wait.
func WithSleep(sleep func(time.Duration)) Option {
	return func(l *Loop) { l.sleep = sleep }
}

func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

func WithListener(listener Listener) Option {
	return func(l *Loop) { l.listeners = append(l.listeners, listener) }
}

// New returns a loop that owns game for the duration of Run.
func New(game *snake.GameState, display Display, opts ...Option) *Loop {
	l := &Loop{
		game:    game,
		display: display,
		tick:    DefaultTick,
		sleep:   time.Sleep,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(l)
	}
	if game.Paused() {
		l.state = Paused
	}
	return l
}

func (l *Loop) State() State { return l.state }

// Run acquires the display, plays until the game is over or the player quits,
// and releases the display on the way out, including on panics.
func (l *Loop) Run() (res Result, err error) {
	if err := l.display.Acquire(); err != nil {
		// Backends may hold partial resources after a failed acquire.
		if rerr := l.display.Release(); rerr != nil {
			l.logger.Printf("release after failed acquire: %v", rerr)
		}
		return Result{}, &AcquireError{Err: err}
	}
	defer func() {
		if rerr := l.display.Release(); rerr != nil && err == nil {
			err = errors.Wrap(rerr, "release display")
		}
	}()

	l.logger.Printf("loop start: tick=%v board=%dx%d", l.tick, l.game.Board().Width, l.game.Board().Height)
	for l.state != Over {
		l.Tick()
	}

	res = Result{
		Score:  l.game.Score(),
		Reason: l.reason,
		Ticks:  l.game.Tick(),
	}
	l.logger.Printf("loop over: reason=%v score=%d ticks=%d", res.Reason, res.Score, res.Ticks)
	return res, nil
}

// Tick runs one iteration: render, poll, dispatch, then either step or wait.
func (l *Loop) Tick() {
	if l.state == Over {
		return
	}

	l.display.Render(l.game.Snapshot())
	l.dispatch(l.display.PollCommand(l.tick))

	switch l.state {
	case Paused:
		l.sleep(l.tick)
	case Running:
		l.step()
	}
}

func (l *Loop) dispatch(cmd Command) {
	if l.state == Over || cmd == None {
		return
	}

	switch cmd {
	case Quit:
		l.reason = ReasonQuit
		l.transition(Over)
	case TogglePause:
		l.game.TogglePause()
		if l.game.Paused() {
			l.transition(Paused)
		} else {
			l.transition(Running)
		}
	default:
		if d, ok := cmd.Direction(); ok && l.state == Running {
			if !l.game.SetDirection(d) {
				l.logger.Printf("ignored turn %v while heading %v", d, l.game.Direction())
			}
		}
	}
}

func (l *Loop) step() {
	res := l.game.Step()
	if res.Ate {
		l.logger.Printf("tick %d: ate at %v, length %d", l.game.Tick(), res.Head, l.game.Len())
		for _, ln := range l.listeners {
			ln.Ate(l.game.Score())
		}
	}
	if l.game.IsGameOver() {
		l.logger.Printf("tick %d: collision at %v", l.game.Tick(), res.Head)
		for _, ln := range l.listeners {
			ln.Crashed(l.game.Score())
		}
		l.reason = ReasonCollision
		l.transition(Over)
	}
}

func (l *Loop) transition(to State) {
	if l.state == to {
		return
	}
	l.logger.Printf("state %v -> %v", l.state, to)
	l.state = to
}
