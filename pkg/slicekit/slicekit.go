// Package slicekit adapts fixed-length slices to the cursor and capability families.
package slicekit

import (
	"go.llib.dev/capkit/pkg/cursorkit"
	"go.llib.dev/capkit/pkg/errorkit"
)

const ErrOutOfBounds errorkit.Error = "ErrOutOfBounds"

// Array is an indexable sequence with a fixed length.
// It writes into the backing slice, and never grows it.
type Array[T any] []T

func Of[T any](vs ...T) Array[T] { return Array[T](vs) }

func (a Array[T]) Len() int { return len(a) }

// Lookup returns the item at index i.
func (a Array[T]) Lookup(i int) (T, bool) {
	if !a.inBounds(i) {
		var zero T
		return zero, false
	}
	return a[i], true
}

// SetItem replaces the item at index i with v, and returns the replaced item.
// An index outside the array is reported with ErrOutOfBounds, and the array is left unchanged.
func (a Array[T]) SetItem(i int, v T) (T, error) {
	if !a.inBounds(i) {
		var zero T
		return zero, ErrOutOfBounds.F("index %d is outside of an array with length %d", i, len(a))
	}
	old := a[i]
	a[i] = v
	return old, nil
}

func (a Array[T]) inBounds(i int) bool { return 0 <= i && i < len(a) }

// Cursor returns a bidirectional cursor positioned on the first item.
func (a Array[T]) Cursor() *cursorkit.SliceCursor[T] { return cursorkit.FromSlice[T](a) }

// CursorEnd returns a bidirectional cursor positioned past the last item.
func (a Array[T]) CursorEnd() *cursorkit.SliceCursor[T] { return cursorkit.FromSliceEnd[T](a) }

// Collect materializes a cursor into an Array.
func Collect[T any](c cursorkit.Cursor[T]) Array[T] {
	return Array[T](cursorkit.Collect(c))
}
