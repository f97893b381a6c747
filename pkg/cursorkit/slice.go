package cursorkit

// FromSlice returns a bidirectional cursor positioned on the first element of vs.
//
// The cursor ranges over the positions -1 to len(vs),
// where both ends are exhausted positions.
// It reads vs in place, so vs must outlive the cursor.
func FromSlice[T any](vs []T) *SliceCursor[T] {
	return &SliceCursor[T]{vs: vs, pos: 0}
}

// FromSliceEnd returns a bidirectional cursor positioned past the last element of vs.
//
// The cursor starts exhausted, and Advance keeps it there.
// SkipBack is the exact inverse of Advance, so it leaves the end position and lands on the last element.
// The Reverse view of this cursor therefore reports no item at first,
// and only its first Advance reaches the last element.
func FromSliceEnd[T any](vs []T) *SliceCursor[T] {
	return &SliceCursor[T]{vs: vs, pos: len(vs)}
}

type SliceCursor[T any] struct {
	vs  []T
	pos int
}

func (c *SliceCursor[T]) Current() (T, bool) {
	if c.pos < 0 || len(c.vs) <= c.pos {
		var zero T
		return zero, false
	}
	return c.vs[c.pos], true
}

func (c *SliceCursor[T]) Advance() {
	if c.pos < len(c.vs) {
		c.pos++
	}
}

func (c *SliceCursor[T]) SkipBack() {
	if -1 < c.pos {
		c.pos--
	}
}

// Index returns the position of the cursor.
func (c *SliceCursor[T]) Index() int { return c.pos }
