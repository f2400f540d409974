package termapp

import "unicode/utf8"

// Key is either a printable rune or one of the special keys below, which use
// negative values so they never collide with a rune.
type Key rune

const (
	KeyUp Key = -1 - iota
	KeyDown
	KeyRight
	KeyLeft
)

const (
	KeyCtrlC  Key = 0x03
	KeyEscape Key = 0x1b
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyCtrlC:
		return "Ctrl-C"
	case KeyEscape:
		return "Esc"
	}
	if k < 0 {
		return "Unknown"
	}
	return string(rune(k))
}

var arrows = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}

// decodeKeys splits one read from a raw-mode tty into keys. Arrow keys arrive
// as "\x1b[A" (or "\x1bOA" in application mode); a lone escape byte is Esc.
// Unrecognized escape sequences are dropped.
func decodeKeys(p []byte) []Key {
	var keys []Key
	for len(p) > 0 {
		if p[0] == 0x1b {
			if len(p) >= 3 && (p[1] == '[' || p[1] == 'O') {
				if k, ok := arrows[p[2]]; ok {
					keys = append(keys, k)
					p = p[3:]
					continue
				}
				p = skipSequence(p)
				continue
			}
			keys = append(keys, KeyEscape)
			p = p[1:]
			continue
		}

		r, n := utf8.DecodeRune(p)
		if r != utf8.RuneError || n > 1 {
			keys = append(keys, Key(r))
		}
		p = p[n:]
	}
	return keys
}

// skipSequence drops a CSI/SS3 sequence up to and including its final byte.
func skipSequence(p []byte) []byte {
	for i := 2; i < len(p); i++ {
		if p[i] >= 0x40 && p[i] <= 0x7e {
			return p[i+1:]
		}
	}
	return nil
}
