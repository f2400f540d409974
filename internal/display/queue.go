package display

import (
	"time"

	"github.com/rovaughn/termsnake/internal/loop"
)

// maxPending bounds how many keystrokes carry over to later ticks.
const maxPending = 8

// commandQueue turns a stream of commands into one command per tick. A poll
// always lasts the full timeout so the tick rate does not depend on typing
// speed; extra commands wait for later ticks. Quit is returned at once.
type commandQueue struct {
	ch      chan loop.Command
	pending []loop.Command
}

func newCommandQueue() *commandQueue {
	return &commandQueue{ch: make(chan loop.Command, maxPending)}
}

func (q *commandQueue) poll(timeout time.Duration) loop.Command {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	cmd := loop.None
	if len(q.pending) > 0 {
		cmd, q.pending = q.pending[0], q.pending[1:]
	}

	for {
		select {
		case c := <-q.ch:
			switch {
			case c == loop.Quit:
				return c
			case cmd == loop.None:
				cmd = c
			case len(q.pending) < maxPending:
				q.pending = append(q.pending, c)
			}
		case <-timer.C:
			return cmd
		}
	}
}

// send delivers c unless stop closes first.
func (q *commandQueue) send(c loop.Command, stop <-chan struct{}) bool {
	select {
	case q.ch <- c:
		return true
	case <-stop:
		return false
	}
}
