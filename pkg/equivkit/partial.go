package equivkit

import (
	"go.llib.dev/capkit/pkg/capkit"
	"go.llib.dev/capkit/pkg/cursorkit"
	"go.llib.dev/capkit/pkg/tristate"
	"go.llib.dev/capkit/port/predicate"
)

// PartialEquivalence is the tri-state equality family of T,
// for types where some pairs have no meaningful equality.
type PartialEquivalence[T any] struct {
	eq     func(x, y T) tristate.Bool
	sample []T
	laws   Laws
}

func NewPartial[T any](eq func(x, y T) tristate.Bool, sample ...T) PartialEquivalence[T] {
	return PartialEquivalence[T]{eq: eq, sample: sample, laws: AllLaws}
}

// StructuralPartial makes a PartialEquivalence from the derived tri-state structural equality of T.
func StructuralPartial[T any](opts ...Option) (PartialEquivalence[T], error) {
	eq, err := DerivePartial[T](opts...)
	if err != nil {
		return PartialEquivalence[T]{}, err
	}
	return NewPartial(eq), nil
}

// FromPartialEqualable makes a PartialEquivalence from the EqualPartial method of T.
func FromPartialEqualable[T predicate.PartialEqualable[T]](sample ...T) PartialEquivalence[T] {
	return NewPartial(func(x, y T) tristate.Bool { return x.EqualPartial(y) }, sample...)
}

// PartialFromRecord binds a partial equivalence record with the optional "eq" (func(T, T) tristate.Bool)
// and "sample" ([]T) fields.
func PartialFromRecord[T any](rec capkit.Record, opts ...Option) (PartialEquivalence[T], error) {
	if rec.Name == "" {
		rec.Name = "partial equivalence"
	}
	b := capkit.Bind(rec)
	e := PartialEquivalence[T]{
		eq:     capkit.Default[func(x, y T) tristate.Bool](b, "eq", nil),
		sample: capkit.Default[[]T](b, "sample", nil),
		laws:   AllLaws,
	}
	if err := b.Finish(); err != nil {
		return PartialEquivalence[T]{}, err
	}
	if e.eq == nil {
		eq, err := DerivePartial[T](opts...)
		if err != nil {
			return PartialEquivalence[T]{}, err
		}
		e.eq = eq
	}
	return e, nil
}

func (e PartialEquivalence[T]) WithSample(sample ...T) PartialEquivalence[T] {
	e.sample = sample
	return e
}

func (e PartialEquivalence[T]) Sample() []T { return e.sample }

func (e PartialEquivalence[T]) Equal(x, y T) tristate.Bool { return e.eq(x, y) }

// AllEq reports whether x is definitely isEq to every item of c.
// An Incomparable pair makes the result false. The cursor is always drained.
func (e PartialEquivalence[T]) AllEq(x T, isEq bool, c cursorkit.Cursor[T]) bool {
	all := true
	for {
		item, ok := cursorkit.Next(c)
		if !ok {
			return all
		}
		if all && !e.eq(x, item).Is(isEq) {
			all = false
		}
	}
}

// AnyEq reports whether x is definitely isEq to some item of c.
func (e PartialEquivalence[T]) AnyEq(x T, isEq bool, c cursorkit.Cursor[T]) bool {
	_, ok := e.FirstEq(x, isEq, c)
	return ok
}

func (e PartialEquivalence[T]) FirstEq(x T, isEq bool, c cursorkit.Cursor[T]) (T, bool) {
	return cursorkit.Filter(c, e.matches(x, isEq)).Current()
}

func (e PartialEquivalence[T]) FirstIndexEq(x T, isEq bool, c cursorkit.Cursor[T]) (int, bool) {
	match := e.matches(x, isEq)
	for i := 0; ; i++ {
		item, ok := c.Current()
		if !ok {
			return 0, false
		}
		if match(item) {
			return i, true
		}
		c.Advance()
	}
}

func (e PartialEquivalence[T]) FilterEq(x T, isEq bool, c cursorkit.Cursor[T]) cursorkit.Cursor[T] {
	return cursorkit.Filter(c, e.matches(x, isEq))
}

func (e PartialEquivalence[T]) matches(x T, isEq bool) func(T) bool {
	return func(item T) bool { return e.eq(x, item).Is(isEq) }
}

// Check verifies the laws over the sample, leaving out the Incomparable pairs.
func (e PartialEquivalence[T]) Check() error {
	return checkLaws(e.eq, e.sample, e.laws, partialLawErrors)
}
