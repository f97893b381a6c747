package cursorkit

// Handle is a type-erased cursor: an opaque context and the two functions that drive it.
//
// A Handle is only valid while the context it was built from is alive.
// It does not own the context, and nothing checks that lifetime;
// keeping the underlying storage alive is the caller's responsibility.
type Handle[Item any] struct {
	ctx     any
	peek    func(ctx any) (Item, bool)
	advance func(ctx any)
}

// NewHandle erases the concrete type of ctx.
func NewHandle[Ctx, Item any](ctx Ctx, peek func(Ctx) (Item, bool), advance func(Ctx)) *Handle[Item] {
	return &Handle[Item]{
		ctx:     ctx,
		peek:    func(ctx any) (Item, bool) { return peek(ctx.(Ctx)) },
		advance: func(ctx any) { advance(ctx.(Ctx)) },
	}
}

// Erase wraps any cursor into a Handle.
func Erase[Item any](c Cursor[Item]) *Handle[Item] {
	if h, ok := c.(*Handle[Item]); ok {
		return h
	}
	return NewHandle(c, Cursor[Item].Current, Cursor[Item].Advance)
}

func (h *Handle[Item]) Current() (Item, bool) {
	if h == nil || h.peek == nil {
		var zero Item
		return zero, false
	}
	return h.peek(h.ctx)
}

func (h *Handle[Item]) Advance() {
	if h == nil || h.advance == nil {
		return
	}
	h.advance(h.ctx)
}
