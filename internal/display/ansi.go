package display

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rovaughn/termsnake/internal/loop"
	"github.com/rovaughn/termsnake/internal/snake"
	"github.com/rovaughn/termsnake/internal/termapp"
)

const ttyPath = "/dev/tty"

var colors = map[Kind]termapp.Color{
	KindBorder: termapp.Blue,
	KindBody:   termapp.Green,
	KindHead:   termapp.Cyan,
	KindFood:   termapp.Red,
	KindText:   termapp.White,
}

// ANSI draws straight to the controlling tty with truecolor escapes, without
// terminfo.
type ANSI struct {
	path   string
	logger *log.Logger

	file  *os.File
	term  *termapp.Terminal
	last  snake.Snapshot
	drawn bool

	queue *commandQueue
	stop  chan struct{}
	group *errgroup.Group
}

func NewANSI(logger *log.Logger) *ANSI {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ANSI{path: ttyPath, logger: logger}
}

func (d *ANSI) Acquire() error {
	f, err := os.OpenFile(d.path, os.O_RDWR, 0)
	if err != nil {
		return errors.Wrapf(err, "open %s", d.path)
	}
	term, err := termapp.NewTerminal(f, d.draw)
	if err != nil {
		f.Close()
		return err
	}

	d.file = f
	d.term = term
	d.queue = newCommandQueue()
	d.stop = make(chan struct{})
	d.group = new(errgroup.Group)

	queue, stop, logger := d.queue, d.stop, d.logger
	d.group.Go(func() error {
		return forwardKeys(term.KeyCh, term.ErrCh, queue, stop, logger)
	})
	return nil
}

// forwardKeys turns decoded keys into commands. A read error ends the game,
// since no further input can arrive.
func forwardKeys(keys <-chan termapp.Key, errs <-chan error, queue *commandQueue, stop <-chan struct{}, logger *log.Logger) error {
	for {
		select {
		case k := <-keys:
			cmd := commandForKey(k)
			if cmd == loop.None {
				continue
			}
			if !queue.send(cmd, stop) {
				return nil
			}
		case err := <-errs:
			logger.Printf("tty read: %v", err)
			queue.send(loop.Quit, stop)
			return nil
		case <-stop:
			return nil
		}
	}
}

func (d *ANSI) draw(width, height int) *termapp.Screen {
	screen := termapp.NewScreen(width, height)
	if !d.drawn {
		return screen
	}
	f := Compose(d.last)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			g := f.At(x, y)
			if g.Kind == KindEmpty {
				continue
			}
			screen.PrintRune(x, y, termapp.Black, colors[g.Kind], g.Rune)
		}
	}
	return screen
}

func (d *ANSI) PollCommand(timeout time.Duration) loop.Command {
	if d.queue == nil {
		return loop.None
	}
	return d.queue.poll(timeout)
}

func (d *ANSI) Render(s snake.Snapshot) {
	if d.term == nil {
		return
	}
	d.last = s
	d.drawn = true
	if err := d.term.Redraw(); err != nil {
		d.logger.Printf("redraw: %v", err)
	}
}

// Release restores the tty and closes it. The key reader unblocks once the
// file is closed.
func (d *ANSI) Release() error {
	if d.term == nil {
		return nil
	}
	close(d.stop)
	err := d.term.Close()
	if cerr := d.file.Close(); cerr != nil && err == nil {
		err = errors.Wrapf(cerr, "close %s", d.path)
	}
	if werr := d.group.Wait(); werr != nil && err == nil {
		err = werr
	}
	d.term = nil
	d.file = nil
	d.queue = nil
	return err
}
