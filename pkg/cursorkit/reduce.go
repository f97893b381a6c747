package cursorkit

// Reduce yields the running left fold of inner.
//
// The accumulator is seeded with the first item of inner.
// Each Advance pulls exactly one more item and folds it into the accumulator,
// so over 1, 2, 3, 4, 5 with addition the cursor yields 1, 3, 6, 10, 15.
// The fold is strict: the combining function runs as soon as an item is pulled.
func Reduce[Item any](inner Cursor[Item], op func(acc, item Item) Item) *ReduceCursor[Item] {
	acc, ok := inner.Current()
	return &ReduceCursor[Item]{inner: inner, op: op, acc: acc, ok: ok}
}

type ReduceCursor[Item any] struct {
	inner Cursor[Item]
	op    func(acc, item Item) Item
	acc   Item
	ok    bool
}

func (c *ReduceCursor[Item]) Current() (Item, bool) {
	if !c.ok {
		var zero Item
		return zero, false
	}
	return c.acc, true
}

func (c *ReduceCursor[Item]) Advance() {
	if !c.ok {
		return
	}
	c.inner.Advance()
	item, ok := c.inner.Current()
	if !ok {
		c.ok = false
		return
	}
	c.acc = c.op(c.acc, item)
}

// Eval drains the fold and returns its final accumulator.
// It reports false when inner had no items.
func (c *ReduceCursor[Item]) Eval() (Item, bool) {
	var (
		last  Item
		found bool
	)
	for {
		acc, ok := Next[Item](c)
		if !ok {
			return last, found
		}
		last, found = acc, true
	}
}
