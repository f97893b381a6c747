// Package predicate
//
// This package declares the method sets a type can implement to supply its own
// equality or ordering capability, instead of handing over a capability record.
// The derivation engines look for these methods before they fall back to a structural default.
package predicate

import "go.llib.dev/capkit/pkg/tristate"

// Equalable defines custom equality semantics for a type.
//
// Go's == operator performs syntactic equality: for structs, it compares all
// fields directly. Equalable allows types to define semantic equality
// based on domain logic instead.
type Equalable[T any] interface {
	// Equal will perform semantic equality checking.
	Equal(oth T) bool
}

// PartialEqualable is the tri-state counterpart of Equalable.
// It returns tristate.Incomparable when equality has no meaning for the pair.
type PartialEqualable[T any] interface {
	EqualPartial(oth T) tristate.Bool
}

// Comparable defines how ordering is implemented by a type.
type Comparable[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	Compare(T) int
}

// PartialComparable is implemented by types whose values are not always ordered.
// When ok is false, the pair is incomparable and cmp must be ignored.
type PartialComparable[T any] interface {
	ComparePartial(T) (cmp int, ok bool)
}
