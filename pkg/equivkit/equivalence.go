package equivkit

import (
	"go.llib.dev/capkit/pkg/capkit"
	"go.llib.dev/capkit/pkg/cursorkit"
	"go.llib.dev/capkit/pkg/tristate"
	"go.llib.dev/capkit/port/predicate"
)

// Equivalence is the equality family of T.
// Every operation is derived from a single eq function.
type Equivalence[T any] struct {
	eq     func(x, y T) bool
	sample []T
	laws   Laws
}

// New makes an Equivalence from eq.
// The sample is used by Check.
func New[T any](eq func(x, y T) bool, sample ...T) Equivalence[T] {
	return Equivalence[T]{eq: eq, sample: sample, laws: AllLaws}
}

// Structural makes an Equivalence from the derived structural equality of T.
func Structural[T any](opts ...Option) (Equivalence[T], error) {
	eq, err := Derive[T](opts...)
	if err != nil {
		return Equivalence[T]{}, err
	}
	return New(eq), nil
}

// FromEqualable makes an Equivalence from the Equal method of T.
func FromEqualable[T predicate.Equalable[T]](sample ...T) Equivalence[T] {
	return New(func(x, y T) bool { return x.Equal(y) }, sample...)
}

// FromRecord binds an equivalence record.
//
// Every field is optional:
//   - "eq" (func(T, T) bool) defaults to the structural equality of T, derived with opts
//   - "sample" ([]T) is the sample for Check
//   - "reflexive", "symmetric", "transitive" (bool) default to true, false skips that law in Check
func FromRecord[T any](rec capkit.Record, opts ...Option) (Equivalence[T], error) {
	if rec.Name == "" {
		rec.Name = "equivalence"
	}
	b := capkit.Bind(rec)
	e := Equivalence[T]{
		eq:     capkit.Default[func(x, y T) bool](b, "eq", nil),
		sample: capkit.Default[[]T](b, "sample", nil),
		laws: Laws{
			Reflexive:  capkit.Default(b, "reflexive", true),
			Symmetric:  capkit.Default(b, "symmetric", true),
			Transitive: capkit.Default(b, "transitive", true),
		},
	}
	if err := b.Finish(); err != nil {
		return Equivalence[T]{}, err
	}
	if e.eq == nil {
		eq, err := Derive[T](opts...)
		if err != nil {
			return Equivalence[T]{}, err
		}
		e.eq = eq
	}
	return e, nil
}

// WithSample returns a copy of e that checks its laws over sample.
func (e Equivalence[T]) WithSample(sample ...T) Equivalence[T] {
	e.sample = sample
	return e
}

func (e Equivalence[T]) Sample() []T { return e.sample }

func (e Equivalence[T]) Equal(x, y T) bool { return e.eq(x, y) }

// AllEq reports whether the equality of x with every item of c is isEq.
// The cursor is always drained.
func (e Equivalence[T]) AllEq(x T, isEq bool, c cursorkit.Cursor[T]) bool {
	all := true
	for {
		item, ok := cursorkit.Next(c)
		if !ok {
			return all
		}
		if all && e.eq(x, item) != isEq {
			all = false
		}
	}
}

// AnyEq reports whether the equality of x with some item of c is isEq.
// It stops consuming c at the first match.
func (e Equivalence[T]) AnyEq(x T, isEq bool, c cursorkit.Cursor[T]) bool {
	_, ok := e.FirstIndexEq(x, isEq, c)
	return ok
}

// FirstEq returns the first item of c whose equality with x is isEq.
func (e Equivalence[T]) FirstEq(x T, isEq bool, c cursorkit.Cursor[T]) (T, bool) {
	f := cursorkit.Filter(c, e.matches(x, isEq))
	return f.Current()
}

// FirstIndexEq returns the position of the first item of c whose equality with x is isEq.
func (e Equivalence[T]) FirstIndexEq(x T, isEq bool, c cursorkit.Cursor[T]) (int, bool) {
	for i := 0; ; i++ {
		item, ok := c.Current()
		if !ok {
			return 0, false
		}
		if e.eq(x, item) == isEq {
			return i, true
		}
		c.Advance()
	}
}

// FilterEq lazily yields the items of c whose equality with x is isEq, in their original order.
func (e Equivalence[T]) FilterEq(x T, isEq bool, c cursorkit.Cursor[T]) cursorkit.Cursor[T] {
	return cursorkit.Filter(c, e.matches(x, isEq))
}

func (e Equivalence[T]) matches(x T, isEq bool) func(T) bool {
	return func(item T) bool { return e.eq(x, item) == isEq }
}

// Check verifies reflexivity, symmetry and transitivity over the sample.
// The transitivity check uses at most CheckConfig.MaxSample items.
func (e Equivalence[T]) Check() error {
	return checkLaws(func(x, y T) tristate.Bool {
		return tristate.Of(e.eq(x, y))
	}, e.sample, e.laws, totalLawErrors)
}
