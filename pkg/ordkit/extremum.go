package ordkit

import "go.llib.dev/capkit/pkg/cursorkit"

// Extremum finds the extreme item of c in a single pass.
// It starts from the first item, and only replaces the running extreme
// when better(extreme, item) holds.
// With a strict better, ties keep the earliest item.
func Extremum[T any](better func(extreme, item T) bool, c cursorkit.Cursor[T]) (T, bool) {
	v, _, ok := ExtremumIndex(better, c)
	return v, ok
}

// ExtremumIndex is Extremum that also returns the position of the extreme.
func ExtremumIndex[T any](better func(extreme, item T) bool, c cursorkit.Cursor[T]) (T, int, bool) {
	extreme, ok := cursorkit.Next(c)
	if !ok {
		return extreme, 0, false
	}
	var index int
	for i := 1; ; i++ {
		item, ok := cursorkit.Next(c)
		if !ok {
			return extreme, index, true
		}
		if better(extreme, item) {
			extreme, index = item, i
		}
	}
}
