package snake

// body is the ordered list of segments, head first.
type body struct {
	segments []Point
}

func newBody(capacity int, segments []Point) body {
	if capacity < len(segments)+1 {
		capacity = len(segments) + 1
	}
	b := body{segments: make([]Point, len(segments), capacity)}
	copy(b.segments, segments)
	return b
}

func (b *body) head() Point { return b.segments[0] }
func (b *body) tail() Point { return b.segments[len(b.segments)-1] }
func (b *body) len() int    { return len(b.segments) }

// moveTo shifts every segment one place toward the tail and puts the head at p.
func (b *body) moveTo(p Point) {
	copy(b.segments[1:], b.segments[:len(b.segments)-1])
	b.segments[0] = p
}

// grow duplicates the tail segment. The duplicate separates on the next move.
func (b *body) grow() {
	b.segments = append(b.segments, b.tail())
}

// hitsSelf reports whether the head shares a cell with any later segment.
func (b *body) hitsSelf() bool {
	h := b.head()
	for _, s := range b.segments[1:] {
		if s == h {
			return true
		}
	}
	return false
}

func (b *body) occupies(p Point) bool {
	for _, s := range b.segments {
		if s == p {
			return true
		}
	}
	return false
}

func (b *body) clone() []Point {
	out := make([]Point, len(b.segments))
	copy(out, b.segments)
	return out
}
