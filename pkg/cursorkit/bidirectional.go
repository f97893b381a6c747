package cursorkit

import (
	"go.llib.dev/capkit/pkg/capkit"
)

// BiCursor is a cursor that can also step back.
//
// SkipBack must be the inverse of Advance:
// advancing then skipping back has to land on the same position.
// This is an obligation of the implementation; nothing here verifies it.
type BiCursor[Item any] interface {
	Cursor[Item]
	SkipBack()
}

// Reverse returns the backward view of b, where Advance and SkipBack swap roles.
//
// The end positions are shared with b, so the view does not keep terminal exhaustion:
// when b is exhausted past its last item, the view reports no item,
// yet its first Advance moves onto that last item.
// Once the view moves past the first item of b, further Advance calls keep it exhausted.
func Reverse[Item any](b BiCursor[Item]) BiCursor[Item] {
	if r, ok := b.(reversed[Item]); ok {
		return r.BiCursor
	}
	return reversed[Item]{BiCursor: b}
}

type reversed[Item any] struct{ BiCursor[Item] }

func (r reversed[Item]) Advance() { r.BiCursor.SkipBack() }

func (r reversed[Item]) SkipBack() { r.BiCursor.Advance() }

// Prev is Next on the backward view.
func Prev[Item any](b BiCursor[Item]) (Item, bool) {
	return Next[Item](Reverse(b))
}

// PrevTimes is NextTimes on the backward view.
func PrevTimes[Item any](b BiCursor[Item], n int) (Item, bool) {
	return NextTimes[Item](Reverse(b), n)
}

// BiProtocol binds the bidirectional cursor capabilities of Self.
type BiProtocol[Self, Mut, Item any] struct {
	Protocol[Self, Mut, Item]
	SkipBack func(Mut)
}

// FromBiRecord binds a record with the required "current", "advance" and "skipBack" fields.
func FromBiRecord[Self, Mut, Item any](rec capkit.Record, access capkit.Access[Self, Mut]) (BiProtocol[Self, Mut, Item], error) {
	if rec.Name == "" {
		rec.Name = "bidirectional cursor"
	}
	b := capkit.Bind(rec)
	p := BiProtocol[Self, Mut, Item]{
		Protocol: Protocol[Self, Mut, Item]{
			Access:  access,
			Current: capkit.Require[func(Self) (Item, bool)](b, "current"),
			Advance: capkit.Require[func(Mut)](b, "advance"),
		},
		SkipBack: capkit.Require[func(Mut)](b, "skipBack"),
	}
	if err := b.Finish(); err != nil {
		return BiProtocol[Self, Mut, Item]{}, err
	}
	return p, nil
}

// Backward swaps which function plays the advance role.
func (p BiProtocol[Self, Mut, Item]) Backward() BiProtocol[Self, Mut, Item] {
	return BiProtocol[Self, Mut, Item]{
		Protocol: Protocol[Self, Mut, Item]{
			Access:  p.Access,
			Current: p.Current,
			Advance: p.SkipBack,
		},
		SkipBack: p.Advance,
	}
}

func (p BiProtocol[Self, Mut, Item]) Prev(m Mut) (Item, bool) {
	return p.Backward().Next(m)
}

func (p BiProtocol[Self, Mut, Item]) PrevTimes(m Mut, n int) (Item, bool) {
	return p.Backward().NextTimes(m, n)
}

// BindBi returns a type-erased bidirectional cursor that drives m.
func (p BiProtocol[Self, Mut, Item]) BindBi(m Mut) BiCursor[Item] {
	return biHandle[Item]{
		Handle:   p.Bind(m),
		skipBack: func() { p.SkipBack(m) },
	}
}

type biHandle[Item any] struct {
	*Handle[Item]
	skipBack func()
}

func (h biHandle[Item]) SkipBack() { h.skipBack() }
