package ordkit

import (
	"go.llib.dev/capkit/pkg/capkit"
	"go.llib.dev/capkit/pkg/equivkit"
	"go.llib.dev/capkit/pkg/errorkit"
	"go.llib.dev/capkit/pkg/tristate"
	"go.llib.dev/capkit/port/predicate"
)

// PartialOrder is either a definite Order or incomparable.
// The zero value is PartialIncomparable.
type PartialOrder int8

const (
	PartialIncomparable PartialOrder = iota
	PartialBackwards
	PartialEquals
	PartialForwards
)

// Definite wraps a definite Order.
func Definite(o Order) PartialOrder {
	switch o {
	case Backwards:
		return PartialBackwards
	case Forwards:
		return PartialForwards
	default:
		return PartialEquals
	}
}

// FromPartialInt maps the result of a partial comparison, like predicate.PartialComparable, to a PartialOrder.
func FromPartialInt(n int, ok bool) PartialOrder {
	if !ok {
		return PartialIncomparable
	}
	return Definite(FromInt(n))
}

// Get returns the definite order, and false when the pair is incomparable.
func (p PartialOrder) Get() (Order, bool) {
	switch p {
	case PartialBackwards:
		return Backwards, true
	case PartialEquals:
		return Equals, true
	case PartialForwards:
		return Forwards, true
	default:
		return Equals, false
	}
}

func (p PartialOrder) Reverse() PartialOrder {
	o, ok := p.Get()
	if !ok {
		return PartialIncomparable
	}
	return Definite(o.Reverse())
}

func (p PartialOrder) String() string {
	o, ok := p.Get()
	if !ok {
		return "incomparable"
	}
	return o.String()
}

// is reports whether p is one of the given orders, as a tri-state answer.
func (p PartialOrder) is(orders ...Order) tristate.Bool {
	o, ok := p.Get()
	if !ok {
		return tristate.Incomparable
	}
	for _, want := range orders {
		if o == want {
			return tristate.True
		}
	}
	return tristate.False
}

// Lexicographic compares field by field.
// The first definite non-equal field decides the order,
// an incomparable field reached before that makes the pair incomparable,
// and when every field is equal so are the values.
func Lexicographic[T any](cmps ...func(x, y T) PartialOrder) func(x, y T) PartialOrder {
	return func(x, y T) PartialOrder {
		for _, c := range cmps {
			r := c(x, y)
			if r != PartialEquals {
				return r
			}
		}
		return PartialEquals
	}
}

// PartialBy lifts a total comparison of a field into a partial one.
func PartialBy[T any](cmp func(x, y T) Order) func(x, y T) PartialOrder {
	return func(x, y T) PartialOrder { return Definite(cmp(x, y)) }
}

const (
	ErrPartialNonReflexive     errorkit.Error = "ErrPartialNonReflexive"
	ErrPartialNonAntisymmetric errorkit.Error = "ErrPartialNonAntisymmetric"
	ErrPartialNonTransitive    errorkit.Error = "ErrPartialNonTransitive"
)

// PartialOrdered is the ordering family of T when some pairs have no order.
// The relations answer in tristate.Bool, and Incomparable for such pairs.
type PartialOrdered[T any] struct {
	cmp    func(x, y T) PartialOrder
	sample []T
}

func NewPartial[T any](cmp func(x, y T) PartialOrder, sample ...T) PartialOrdered[T] {
	return PartialOrdered[T]{cmp: cmp, sample: sample}
}

// FromPartialComparable returns the ordering defined by the ComparePartial method of T.
func FromPartialComparable[T predicate.PartialComparable[T]](sample ...T) PartialOrdered[T] {
	return NewPartial(func(x, y T) PartialOrder { return FromPartialInt(x.ComparePartial(y)) }, sample...)
}

// PartialFromRecord binds a partial ordering record with the required "cmp" (func(T, T) PartialOrder)
// and the optional "sample" ([]T) fields.
func PartialFromRecord[T any](rec capkit.Record) (PartialOrdered[T], error) {
	if rec.Name == "" {
		rec.Name = "partial ordering"
	}
	b := capkit.Bind(rec)
	o := PartialOrdered[T]{
		cmp:    capkit.Require[func(x, y T) PartialOrder](b, "cmp"),
		sample: capkit.Default[[]T](b, "sample", nil),
	}
	if err := b.Finish(); err != nil {
		return PartialOrdered[T]{}, err
	}
	return o, nil
}

func (o PartialOrdered[T]) WithSample(sample ...T) PartialOrdered[T] {
	o.sample = sample
	return o
}

func (o PartialOrdered[T]) Sample() []T { return o.sample }

func (o PartialOrdered[T]) Cmp(x, y T) PartialOrder { return o.cmp(x, y) }

func (o PartialOrdered[T]) Eq(x, y T) tristate.Bool { return o.cmp(x, y).is(Equals) }

func (o PartialOrdered[T]) Lt(x, y T) tristate.Bool { return o.cmp(x, y).is(Backwards) }

func (o PartialOrdered[T]) Le(x, y T) tristate.Bool { return o.cmp(x, y).is(Backwards, Equals) }

func (o PartialOrdered[T]) Gt(x, y T) tristate.Bool { return o.cmp(x, y).is(Forwards) }

func (o PartialOrdered[T]) Ge(x, y T) tristate.Bool { return o.cmp(x, y).is(Forwards, Equals) }

// Equivalence returns the tri-state equality derived from Cmp.
func (o PartialOrdered[T]) Equivalence() equivkit.PartialEquivalence[T] {
	return equivkit.NewPartial(o.Eq, o.sample...)
}

// Check verifies the ordering laws over the comparable pairs of the sample.
func (o PartialOrdered[T]) Check() error {
	ctx := checkContext(o.sample)
	for i, x := range o.sample {
		if got, ok := o.cmp(x, x).Get(); ok && got != Equals {
			return violation(ctx, "reflexivity", ErrPartialNonReflexive.F("cmp(sample[%d], sample[%d]) is %s", i, i, got))
		}
	}
	for i, x := range o.sample {
		for j := i + 1; j < len(o.sample); j++ {
			xy, yx := o.cmp(x, o.sample[j]), o.cmp(o.sample[j], x)
			if xy != PartialIncomparable && yx != PartialIncomparable && xy != yx.Reverse() {
				return violation(ctx, "antisymmetry", ErrPartialNonAntisymmetric.F(
					"cmp(sample[%d], sample[%d]) is %s, but cmp(sample[%d], sample[%d]) is %s", i, j, xy, j, i, yx))
			}
		}
	}
	bounded := o.sample
	if limit := equivkit.LoadCheckConfig().MaxSample; limit < len(bounded) {
		bounded = bounded[:limit]
	}
	for i, x := range bounded {
		for j, y := range bounded {
			if o.Le(x, y) != tristate.True {
				continue
			}
			for k, z := range bounded {
				if o.Le(y, z) == tristate.True && o.Le(x, z) == tristate.False {
					return violation(ctx, "transitivity", ErrPartialNonTransitive.F(
						"sample[%d] <= sample[%d] and sample[%d] <= sample[%d], but not sample[%d] <= sample[%d]", i, j, j, k, i, k))
				}
			}
		}
	}
	return nil
}
