package ordkit

import (
	"cmp"

	"go.llib.dev/capkit/pkg/capkit"
	"go.llib.dev/capkit/pkg/cursorkit"
	"go.llib.dev/capkit/pkg/equivkit"
	"go.llib.dev/capkit/port/predicate"
)

// Ordered is the total ordering family of T.
// Every relation is defined through the three outcomes of Cmp.
type Ordered[T any] struct {
	cmp    func(x, y T) Order
	sample []T
}

func New[T any](cmp func(x, y T) Order, sample ...T) Ordered[T] {
	return Ordered[T]{cmp: cmp, sample: sample}
}

// Of returns the natural ordering of a scalar type.
func Of[T cmp.Ordered](sample ...T) Ordered[T] {
	return New(Derive[T](), sample...)
}

// FromComparable returns the ordering defined by the Compare method of T.
func FromComparable[T predicate.Comparable[T]](sample ...T) Ordered[T] {
	return New(func(x, y T) Order { return FromInt(x.Compare(y)) }, sample...)
}

// FromRecord binds an ordering record.
// The "cmp" field (func(T, T) Order) is required, "sample" ([]T) is optional.
func FromRecord[T any](rec capkit.Record) (Ordered[T], error) {
	if rec.Name == "" {
		rec.Name = "ordering"
	}
	b := capkit.Bind(rec)
	o := Ordered[T]{
		cmp:    capkit.Require[func(x, y T) Order](b, "cmp"),
		sample: capkit.Default[[]T](b, "sample", nil),
	}
	if err := b.Finish(); err != nil {
		return Ordered[T]{}, err
	}
	return o, nil
}

func (o Ordered[T]) WithSample(sample ...T) Ordered[T] {
	o.sample = sample
	return o
}

func (o Ordered[T]) Sample() []T { return o.sample }

func (o Ordered[T]) Cmp(x, y T) Order { return o.cmp(x, y) }

func (o Ordered[T]) Eq(x, y T) bool { return o.cmp(x, y) == Equals }

func (o Ordered[T]) Lt(x, y T) bool { return o.cmp(x, y) == Backwards }

func (o Ordered[T]) Le(x, y T) bool { return o.cmp(x, y) != Forwards }

func (o Ordered[T]) Gt(x, y T) bool { return o.cmp(x, y) == Forwards }

func (o Ordered[T]) Ge(x, y T) bool { return o.cmp(x, y) != Backwards }

// Reverse returns the descending ordering.
func (o Ordered[T]) Reverse() Ordered[T] {
	return Ordered[T]{
		cmp:    func(x, y T) Order { return o.cmp(x, y).Reverse() },
		sample: o.sample,
	}
}

// Equivalence returns the equality derived from Cmp.
func (o Ordered[T]) Equivalence() equivkit.Equivalence[T] {
	return equivkit.New(o.Eq, o.sample...)
}

// Partial returns o as a partial ordering where every pair is comparable.
func (o Ordered[T]) Partial() PartialOrdered[T] {
	return NewPartial(func(x, y T) PartialOrder { return Definite(o.cmp(x, y)) }, o.sample...)
}

// Max returns the greatest item of c. On ties the earliest item wins.
func (o Ordered[T]) Max(c cursorkit.Cursor[T]) (T, bool) { return Extremum(o.Lt, c) }

// Min returns the least item of c. On ties the earliest item wins.
func (o Ordered[T]) Min(c cursorkit.Cursor[T]) (T, bool) { return Extremum(o.Gt, c) }

func (o Ordered[T]) MaxIndex(c cursorkit.Cursor[T]) (T, int, bool) { return ExtremumIndex(o.Lt, c) }

func (o Ordered[T]) MinIndex(c cursorkit.Cursor[T]) (T, int, bool) { return ExtremumIndex(o.Gt, c) }

// Clamp moves the value behind x into the [floor, roof] range.
// The range must not be inverted.
func (o Ordered[T]) Clamp(x *T, floor, roof T) {
	*x = o.Clamped(*x, floor, roof)
}

// Clamped returns floor when x is below it, roof when x is above it, and x otherwise.
func (o Ordered[T]) Clamped(x, floor, roof T) T {
	switch {
	case o.Le(x, floor):
		return floor
	case o.Ge(x, roof):
		return roof
	default:
		return x
	}
}

func (o Ordered[T]) IsClamped(x, floor, roof T) bool {
	return o.Le(floor, x) && o.Le(x, roof)
}
