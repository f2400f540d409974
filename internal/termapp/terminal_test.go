package termapp

import (
	"bytes"
	"errors"
	"io"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestScreenPrintClips(t *testing.T) {
	s := NewScreen(4, 2)
	s.Print(2, 1, Black, White, "héllo")

	if got := s.At(2, 1).Text(); got != 'h' {
		t.Errorf("At(2,1) = %q, want 'h'", got)
	}
	if got := s.At(3, 1).Text(); got != 'é' {
		t.Errorf("At(3,1) = %q, want 'é'", got)
	}
	if got := s.At(0, 0).Text(); got != 0 {
		t.Errorf("At(0,0) = %q, want untouched cell", got)
	}

	// Off-screen writes are dropped rather than spilling into the next row.
	s.PrintRune(-1, 0, Black, White, 'x')
	s.PrintRune(4, 0, Black, White, 'x')
	s.PrintRune(0, 2, Black, White, 'x')
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if s.At(x, y).Text() == 'x' {
				t.Fatalf("off-screen write landed at (%d,%d)", x, y)
			}
		}
	}
}

func TestRedrawPaintsEverythingFirst(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, 5, 3, func(width, height int) *Screen {
		s := NewScreen(width, height)
		s.PrintRune(2, 1, Black, White, 'x')
		return s
	})

	if err := term.Redraw(); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	got := out.String()
	// The first cell sets both colors, since the terminal's defaults are unknown.
	if !strings.HasPrefix(got, "\x1b[38;2;0;0;0;48;2;0;0;0m ") {
		t.Fatalf("first redraw starts with %q, want an explicit black background", got)
	}
	if n := strings.Count(got, " "); n != 14 {
		t.Fatalf("first redraw painted %d blank cells, want 14", n)
	}
	if !strings.Contains(got, "\x1b[38;2;255;255;255mx") {
		t.Fatalf("first redraw %q is missing the white x", got)
	}
}

func TestRedrawEmitsOnlyChanges(t *testing.T) {
	var out bytes.Buffer
	extra := false
	term := newTerminal(&out, 5, 3, func(width, height int) *Screen {
		s := NewScreen(width, height)
		s.PrintRune(2, 1, Black, White, 'x')
		if extra {
			s.PrintRune(4, 2, Black, White, 'y')
		}
		return s
	})
	if err := term.Redraw(); err != nil {
		t.Fatalf("Redraw: %v", err)
	}

	out.Reset()
	if err := term.Redraw(); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", out.String())
	}

	extra = true
	if err := term.Redraw(); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	want := "\x1b[3;5H\x1b[38;2;255;255;255my\x1b[1;1H"
	if got := out.String(); got != want {
		t.Fatalf("changed frame wrote %q, want %q", got, want)
	}
}

func TestClearForgetsStyle(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, 2, 1, func(width, height int) *Screen {
		return NewScreen(width, height)
	})
	term.Redraw()

	term.clear()
	term.redraw()
	if err := term.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	got := out.String()
	i := strings.LastIndex(got, "\x1b[0m")
	if i < 0 || !strings.Contains(got[i:], "48;2;0;0;0m") {
		t.Fatalf("redraw after clear did not set the background again: %q", got)
	}
}

func TestRedrawCursorVisibility(t *testing.T) {
	var out bytes.Buffer
	visible := false
	term := newTerminal(&out, 3, 3, func(width, height int) *Screen {
		s := NewScreen(width, height)
		s.SetCursor(1, 1, visible)
		return s
	})
	term.Redraw()

	out.Reset()
	visible = true
	term.Redraw()
	if got, want := out.String(), "\x1b[?25h"; got != want {
		t.Fatalf("show cursor wrote %q, want %q", got, want)
	}

	out.Reset()
	visible = false
	term.Redraw()
	if got, want := out.String(), "\x1b[?25l"; got != want {
		t.Fatalf("hide cursor wrote %q, want %q", got, want)
	}
}

func TestRedrawIgnoresWrongSize(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, 3, 3, func(width, height int) *Screen {
		s := NewScreen(1, 1)
		s.PrintRune(0, 0, Black, White, 'x')
		return s
	})
	if err := term.Redraw(); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("mis-sized frame wrote %q", out.String())
	}
}

func TestCloseRestoresCursorOnce(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, 3, 3, func(width, height int) *Screen { return NewScreen(width, height) })

	if err := term.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("\x1b[?25h")) {
		t.Fatalf("Close did not show the cursor: %q", out.String())
	}
	n := out.Len()
	if err := term.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if out.Len() != n {
		t.Fatal("second Close wrote again")
	}
}

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Key
	}{
		{name: "letters", in: "wasd", want: []Key{'w', 'a', 's', 'd'}},
		{name: "arrows", in: "\x1b[A\x1b[B\x1b[C\x1b[D", want: []Key{KeyUp, KeyDown, KeyRight, KeyLeft}},
		{name: "application arrows", in: "\x1bOA", want: []Key{KeyUp}},
		{name: "lone escape", in: "\x1b", want: []Key{KeyEscape}},
		{name: "ctrl-c", in: "\x03", want: []Key{KeyCtrlC}},
		{name: "unknown sequence dropped", in: "\x1b[15~p", want: []Key{'p'}},
		{name: "utf8", in: "é", want: []Key{'é'}},
		{name: "invalid byte dropped", in: "\xffq", want: []Key{'q'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := decodeKeys([]byte(tc.in))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("decodeKeys(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestReadKeysForwardsKeysAndError(t *testing.T) {
	term := newTerminal(io.Discard, 1, 1, nil)
	r := &scriptedReader{chunks: []string{"p", "\x1b[A"}, err: errors.New("tty gone")}

	go term.readKeys(r)

	for _, want := range []Key{'p', KeyUp} {
		select {
		case got := <-term.KeyCh:
			if got != want {
				t.Fatalf("key = %v, want %v", got, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %v", want)
		}
	}
	select {
	case err := <-term.ErrCh:
		if err == nil || err.Error() != "tty gone" {
			t.Fatalf("err = %v, want tty gone", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the read error")
	}
}

func TestClosingFileStopsReadKeys(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	defer w.Close()

	var seen int
	if err := control(r, func(fd int) error {
		seen = fd
		return nil
	}); err != nil {
		t.Fatalf("control: %v", err)
	}
	if seen <= 0 {
		t.Fatalf("control passed fd %d", seen)
	}

	term := newTerminal(io.Discard, 1, 1, nil)
	exited := make(chan struct{})
	go func() {
		term.readKeys(r)
		close(exited)
	}()

	// Let the reader block in Read before closing.
	time.Sleep(50 * time.Millisecond)
	r.Close()

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("readKeys still blocked after the file was closed")
	}
	select {
	case err := <-term.ErrCh:
		if !errors.Is(err, os.ErrClosed) {
			t.Fatalf("err = %v, want os.ErrClosed", err)
		}
	default:
		t.Fatal("close error was not reported")
	}
}

func TestControlReturnsCallbackError(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	want := errors.New("not a tty")
	if err := control(r, func(int) error { return want }); err != want {
		t.Fatalf("control = %v, want %v", err, want)
	}
}

type scriptedReader struct {
	chunks []string
	err    error
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, r.err
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}
