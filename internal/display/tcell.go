package display

import (
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rovaughn/termsnake/internal/loop"
	"github.com/rovaughn/termsnake/internal/snake"
)

var styles = map[Kind]tcell.Style{
	KindEmpty:  tcell.StyleDefault,
	KindBorder: tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack),
	KindBody:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	KindHead:   tcell.StyleDefault.Foreground(tcell.ColorDarkCyan).Background(tcell.ColorBlack),
	KindFood:   tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack),
	KindText:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
}

// Tcell draws with a tcell screen and reads keys from its event stream.
type Tcell struct {
	newScreen func() (tcell.Screen, error)
	logger    *log.Logger

	screen tcell.Screen
	queue  *commandQueue
	stop   chan struct{}
	group  *errgroup.Group
}

func NewTcell(logger *log.Logger) *Tcell {
	return newTcell(tcell.NewScreen, logger)
}

func newTcell(newScreen func() (tcell.Screen, error), logger *log.Logger) *Tcell {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Tcell{newScreen: newScreen, logger: logger}
}

func (d *Tcell) Acquire() error {
	screen, err := d.newScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	d.screen = screen
	d.queue = newCommandQueue()
	d.stop = make(chan struct{})
	d.group = new(errgroup.Group)

	queue, stop := d.queue, d.stop
	d.group.Go(func() error {
		return pump(screen, queue, stop)
	})
	return nil
}

// pump forwards key presses as commands until the screen is finalized.
func pump(screen tcell.Screen, queue *commandQueue, stop <-chan struct{}) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd := commandForTcell(ev)
			if cmd == loop.None {
				continue
			}
			if !queue.send(cmd, stop) {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func (d *Tcell) PollCommand(timeout time.Duration) loop.Command {
	if d.queue == nil {
		return loop.None
	}
	return d.queue.poll(timeout)
}

func (d *Tcell) Render(s snake.Snapshot) {
	if d.screen == nil {
		return
	}
	f := Compose(s)
	d.screen.Clear()
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			g := f.At(x, y)
			if g.Kind == KindEmpty {
				continue
			}
			d.screen.SetContent(x, y, g.Rune, nil, styles[g.Kind])
		}
	}
	d.screen.Show()
}

// Release finalizes the screen and waits for the event pump to exit. It is a
// no-op when nothing was acquired.
func (d *Tcell) Release() error {
	if d.screen == nil {
		return nil
	}
	close(d.stop)
	d.screen.Fini()
	err := d.group.Wait()
	d.screen = nil
	d.queue = nil
	if err != nil {
		d.logger.Printf("tcell event pump: %v", err)
	}
	return err
}
