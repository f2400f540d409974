package termapp

import (
	"io"
	"os"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"
)

// Opportunities for optimization:
// - We don't need to set the foreground color of the cursor if we're just
//   changing the background color of a blank cell.
// - We might be able to make color specifications shorter if it matches a
//   "standard" color.

// CSI is "\x1b["

type RenderFunc func(width, height int) *Screen

// Terminal owns a tty in raw mode and keeps a copy of what it last drew so that
// Redraw only emits the cells that changed.
type Terminal struct {
	out      io.Writer
	fd       int
	oldState *terminal.State
	render   RenderFunc
	buf      []byte
	Screen

	KeyCh chan Key
	ErrCh chan error

	done      chan struct{}
	closeOnce sync.Once
}

// NewTerminal puts f into raw mode, clears it and starts decoding keys from it.
// Close undoes all of that; the caller still owns f, and closing f stops the
// key reader.
func NewTerminal(f *os.File, render RenderFunc) (*Terminal, error) {
	var (
		fd            int
		width, height int
		oldState      *terminal.State
	)
	err := control(f, func(raw int) error {
		var err error
		fd = raw
		if width, height, err = terminal.GetSize(fd); err != nil {
			return errors.Wrap(err, "get terminal size")
		}
		if oldState, err = terminal.MakeRaw(fd); err != nil {
			return errors.Wrap(err, "enter raw mode")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	t := newTerminal(f, width, height, render)
	t.fd = fd
	t.oldState = oldState

	// Clear the screen, so that we are in a known state.
	t.clear()
	t.redraw()

	if err := t.flush(); err != nil {
		terminal.Restore(fd, oldState)
		return nil, errors.Wrap(err, "initial draw")
	}

	go t.readKeys(f)

	return t, nil
}

// control runs fn with the descriptor behind f. Unlike f.Fd it leaves f on the
// runtime poller, so Close still interrupts a Read blocked on f.
func control(f *os.File, fn func(fd int) error) error {
	rc, err := f.SyscallConn()
	if err != nil {
		return errors.Wrap(err, "raw conn")
	}
	var fnErr error
	if err := rc.Control(func(fd uintptr) { fnErr = fn(int(fd)) }); err != nil {
		return errors.Wrap(err, "control")
	}
	return fnErr
}

// newTerminal makes no assumption about what out shows: the first redraw
// paints every cell.
func newTerminal(out io.Writer, width, height int, render RenderFunc) *Terminal {
	t := &Terminal{
		out:    out,
		fd:     -1,
		render: render,
		Screen: Screen{
			width:  width,
			height: height,
			cells:  make([]Cell, width*height),
		},
		KeyCh: make(chan Key, 16),
		ErrCh: make(chan error, 1),
		done:  make(chan struct{}),
	}
	t.blank()
	return t
}

// blank forgets what is on screen. A zero cell never matches a rendered one,
// since redraw turns unwritten cells into spaces.
func (t *Terminal) blank() {
	for i := range t.cells {
		t.cells[i] = Cell{}
	}
}

func (t *Terminal) flush() error {
	n, err := t.out.Write(t.buf)
	if n == len(t.buf) {
		t.buf = t.buf[:0]
	} else {
		copy(t.buf, t.buf[n:])
		t.buf = t.buf[:len(t.buf)-n]
	}
	return err
}

func (t *Terminal) clear() {
	t.buf = append(t.buf, "\x1b[H\x1b[2J\x1b[0m\x1b[?25l"...)
	t.cursor = Cursor{}
	t.blank()
}

func (t *Terminal) moveCursor(x, y int) {
	if t.cursor.x == x && t.cursor.y == y {
		return
	}

	t.buf = append(t.buf, "\x1b["...)
	t.buf = strconv.AppendInt(t.buf, int64(y)+1, 10)
	t.buf = append(t.buf, ';')
	t.buf = strconv.AppendInt(t.buf, int64(x)+1, 10)
	t.buf = append(t.buf, 'H')

	t.cursor.x = x
	t.cursor.y = y
}

var numTable = func() (table []string) {
	table = make([]string, 256)
	for i := 0; i < 256; i++ {
		table[i] = strconv.Itoa(i)
	}
	return
}()

func (t *Terminal) setCursorStyle(s Style) {
	// SGR is short for Select Graphic Rendition
	sgrs := make([]int, 0, 10)

	// After a reset the terminal uses its own default colors, which need not
	// match any Color.
	if !t.cursor.styled || s.fore != t.cursor.fore {
		sgrs = append(sgrs, 38, 2, int(s.fore.R), int(s.fore.G), int(s.fore.B))
		t.cursor.fore = s.fore
	}

	if !t.cursor.styled || s.back != t.cursor.back {
		sgrs = append(sgrs, 48, 2, int(s.back.R), int(s.back.G), int(s.back.B))
		t.cursor.back = s.back
	}
	t.cursor.styled = true

	if len(sgrs) > 0 {
		t.buf = append(t.buf, "\x1b["...)
		t.buf = append(t.buf, numTable[sgrs[0]]...)
		for _, sgr := range sgrs[1:] {
			t.buf = append(t.buf, ';')
			t.buf = append(t.buf, numTable[sgr]...)
		}
		t.buf = append(t.buf, 'm')
	}
}

func (t *Terminal) setCursorVisibility(visible bool) {
	if visible && !t.cursor.visible {
		t.buf = append(t.buf, "\x1b[?25h"...)
	} else if !visible && t.cursor.visible {
		t.buf = append(t.buf, "\x1b[?25l"...)
	}
	t.cursor.visible = visible
}

func (t *Terminal) redraw() {
	newScreen := t.render(t.width, t.height)
	if newScreen == nil || newScreen.width != t.width || newScreen.height != t.height {
		return
	}

	t.setCursorVisibility(newScreen.cursor.visible)

	p := make([]byte, utf8.UTFMax)

	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			i := y*t.width + x

			b := newScreen.cells[i]
			if b.text == 0 {
				b.text = ' '
			}
			if t.cells[i] == b {
				continue
			}

			t.moveCursor(x, y)
			t.setCursorStyle(b.Style)
			n := utf8.EncodeRune(p, b.text)
			t.buf = append(t.buf, p[:n]...)
			t.cells[i] = b
			t.cursor.x++
		}
	}

	t.moveCursor(newScreen.cursor.x, newScreen.cursor.y)
}

func (t *Terminal) Redraw() error {
	t.redraw()
	return t.flush()
}

// Close resets colors, shows the cursor, parks it below the drawn area and
// restores the tty mode. It is safe to call more than once.
func (t *Terminal) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.done)

		t.moveCursor(0, t.height-1)
		t.buf = append(t.buf, "\x1b[0m\x1b[?25h\r\n"...)
		err = t.flush()

		if t.oldState != nil {
			if rerr := terminal.Restore(t.fd, t.oldState); rerr != nil && err == nil {
				err = errors.Wrap(rerr, "restore terminal")
			}
		}
	})
	return err
}

func (t *Terminal) readKeys(r io.Reader) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, k := range decodeKeys(buf[:n]) {
			select {
			case t.KeyCh <- k:
			case <-t.done:
				return
			}
		}
		if err != nil {
			select {
			case t.ErrCh <- err:
			case <-t.done:
			}
			return
		}
	}
}
