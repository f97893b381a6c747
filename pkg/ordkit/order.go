// Package ordkit derives the ordering family of a type from a single three-way comparison.
package ordkit

import (
	"cmp"
	"fmt"
)

// Order is the outcome of a three-way comparison.
type Order int8

const (
	Backwards Order = -1
	Equals    Order = 0
	Forwards  Order = 1
)

// FromInt maps the sign of a comparison result to an Order.
func FromInt(n int) Order {
	switch {
	case n < 0:
		return Backwards
	case 0 < n:
		return Forwards
	default:
		return Equals
	}
}

func (o Order) Int() int { return int(o) }

// Reverse swaps Backwards and Forwards.
func (o Order) Reverse() Order { return -o }

func (o Order) String() string {
	switch o {
	case Backwards:
		return "backwards"
	case Equals:
		return "equals"
	case Forwards:
		return "forwards"
	default:
		return fmt.Sprintf("Order(%d)", int8(o))
	}
}

// Derive returns the natural three-way comparison of an ordered scalar type.
// Composite types do not satisfy cmp.Ordered, and need an explicit comparison.
func Derive[T cmp.Ordered]() func(x, y T) Order {
	return func(x, y T) Order { return FromInt(cmp.Compare(x, y)) }
}

// By compares values by the ordered key extracted from them.
func By[T any, K cmp.Ordered](key func(T) K) func(x, y T) Order {
	return func(x, y T) Order { return FromInt(cmp.Compare(key(x), key(y))) }
}

// Compose orders by the first comparison, and breaks its ties with the following ones.
func Compose[T any](cmps ...func(x, y T) Order) func(x, y T) Order {
	return func(x, y T) Order {
		for _, c := range cmps {
			if o := c(x, y); o != Equals {
				return o
			}
		}
		return Equals
	}
}
