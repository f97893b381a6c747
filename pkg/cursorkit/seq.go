package cursorkit

import "iter"

// ToSeq consumes c as a range-over-func sequence.
func ToSeq[Item any](c Cursor[Item]) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for {
			item, ok := Next(c)
			if !ok {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

// FromSeq turns a push sequence into a cursor.
// The returned stop function releases the sequence and must be called when the cursor is no longer used.
func FromSeq[Item any](seq iter.Seq[Item]) (*SeqCursor[Item], func()) {
	next, stop := iter.Pull(seq)
	c := &SeqCursor[Item]{next: next, stop: stop}
	c.Advance()
	return c, c.Stop
}

type SeqCursor[Item any] struct {
	next    func() (Item, bool)
	stop    func()
	current Item
	ok      bool
	done    bool
}

func (c *SeqCursor[Item]) Current() (Item, bool) {
	return c.current, c.ok
}

func (c *SeqCursor[Item]) Advance() {
	if c.done {
		return
	}
	c.current, c.ok = c.next()
	if !c.ok {
		c.Stop()
	}
}

func (c *SeqCursor[Item]) Stop() {
	if c.done {
		return
	}
	c.done = true
	c.ok = false
	var zero Item
	c.current = zero
	c.stop()
}
