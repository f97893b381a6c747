// Package zerokit helps with zero value related use-cases such as defaulting.
package zerokit

// Coalesce will return the first non-zero value from the provided values.
func Coalesce[T comparable](vs ...T) T {
	var zero T
	for _, v := range vs {
		if v != zero {
			return v
		}
	}
	return zero
}
