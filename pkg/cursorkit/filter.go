package cursorkit

// Filter lazily yields the items of inner that satisfy pred.
//
// The returned cursor is already positioned on the first match,
// so constructing it may advance inner.
func Filter[Item any](inner Cursor[Item], pred func(Item) bool) *FilterCursor[Item] {
	fc := &FilterCursor[Item]{inner: inner, pred: pred}
	fc.seek()
	return fc
}

type FilterCursor[Item any] struct {
	inner Cursor[Item]
	pred  func(Item) bool
}

func (c *FilterCursor[Item]) Current() (Item, bool) {
	return c.inner.Current()
}

func (c *FilterCursor[Item]) Advance() {
	if _, ok := c.inner.Current(); !ok {
		return
	}
	c.inner.Advance()
	c.seek()
}

func (c *FilterCursor[Item]) seek() {
	for {
		item, ok := c.inner.Current()
		if !ok || c.pred(item) {
			return
		}
		c.inner.Advance()
	}
}
