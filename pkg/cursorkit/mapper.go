package cursorkit

// Map lazily applies transform to each item of inner.
// The transform runs on every Current call, so it should be pure.
func Map[From, To any](inner Cursor[From], transform func(From) To) *MapCursor[From, To] {
	return &MapCursor[From, To]{inner: inner, transform: transform}
}

type MapCursor[From, To any] struct {
	inner     Cursor[From]
	transform func(From) To
}

func (c *MapCursor[From, To]) Current() (To, bool) {
	v, ok := c.inner.Current()
	if !ok {
		var zero To
		return zero, false
	}
	return c.transform(v), true
}

func (c *MapCursor[From, To]) Advance() { c.inner.Advance() }
