package cursorkit

import (
	"go.llib.dev/capkit/pkg/capkit"
)

// Protocol binds the cursor capabilities of a consuming type Self.
//
// Mut is the mutable handle of Self resolved by Access:
// *Self for value-semantic types, and Self itself for reference-semantic ones.
// Current only ever sees the immutable view, and Advance is the only operation that mutates.
type Protocol[Self, Mut, Item any] struct {
	Access  capkit.Access[Self, Mut]
	Current func(Self) (Item, bool)
	Advance func(Mut)
}

// FromRecord binds a capability record with the required "current" and "advance" fields.
func FromRecord[Self, Mut, Item any](rec capkit.Record, access capkit.Access[Self, Mut]) (Protocol[Self, Mut, Item], error) {
	if rec.Name == "" {
		rec.Name = "cursor"
	}
	b := capkit.Bind(rec)
	p := Protocol[Self, Mut, Item]{
		Access:  access,
		Current: capkit.Require[func(Self) (Item, bool)](b, "current"),
		Advance: capkit.Require[func(Mut)](b, "advance"),
	}
	if err := b.Finish(); err != nil {
		return Protocol[Self, Mut, Item]{}, err
	}
	return p, nil
}

// Bind returns a type-erased cursor that drives m.
func (p Protocol[Self, Mut, Item]) Bind(m Mut) *Handle[Item] {
	return NewHandle(m,
		func(m Mut) (Item, bool) { return p.Current(p.Access.View(m)) },
		p.Advance)
}

// Peek returns the current item of the value without touching its position.
func (p Protocol[Self, Mut, Item]) Peek(v Self) (Item, bool) {
	return p.Current(v)
}

func (p Protocol[Self, Mut, Item]) Next(m Mut) (Item, bool) {
	return Next[Item](p.Bind(m))
}

func (p Protocol[Self, Mut, Item]) SkipTimes(m Mut, n int) int {
	return SkipTimes[Item](p.Bind(m), n)
}

func (p Protocol[Self, Mut, Item]) NextTimes(m Mut, n int) (Item, bool) {
	return NextTimes[Item](p.Bind(m), n)
}
