// Package cursorkit implements pull-style cursors and the lazy combinators built on them.
//
// A Cursor is a position over a sequence of items.
// Current peeks at the item under the position without moving it,
// and Advance moves the position forward.
// Once Current reports no item, the cursor is exhausted and Advance keeps it exhausted.
//
// Cursors and combinators hold a reference to storage they do not own.
// They are driven by a single owner, and must not outlive the data they point into.
package cursorkit

// Cursor is the pull-based iteration primitive.
//
// Implementations must keep Current referentially stable between calls
// that have no Advance in between, and must make Advance a no-op once Current reports empty.
type Cursor[Item any] interface {
	// Current returns the item under the position, or false when the cursor is exhausted.
	Current() (Item, bool)
	// Advance moves the position to the next item.
	Advance()
}

// Next snapshots the current item, then advances the cursor.
func Next[Item any](c Cursor[Item]) (Item, bool) {
	item, ok := c.Current()
	c.Advance()
	return item, ok
}

// SkipTimes advances c up to n times, or until it is exhausted.
// It returns how many items were skipped.
func SkipTimes[Item any](c Cursor[Item], n int) int {
	var skipped int
	for ; skipped < n; skipped++ {
		if _, ok := c.Current(); !ok {
			break
		}
		c.Advance()
	}
	return skipped
}

// NextTimes calls Next up to n times, or until the cursor is exhausted.
// It returns the last item yielded, and false when no item was yielded at all.
func NextTimes[Item any](c Cursor[Item], n int) (Item, bool) {
	var (
		last  Item
		found bool
	)
	for i := 0; i < n; i++ {
		item, ok := Next(c)
		if !ok {
			break
		}
		last, found = item, true
	}
	return last, found
}

// Collect drains the cursor into a slice.
func Collect[Item any](c Cursor[Item]) []Item {
	var vs = make([]Item, 0)
	for {
		item, ok := Next(c)
		if !ok {
			return vs
		}
		vs = append(vs, item)
	}
}

// Count drains the cursor and returns the number of items it yielded.
func Count[Item any](c Cursor[Item]) int {
	var n int
	for {
		if _, ok := Next(c); !ok {
			return n
		}
		n++
	}
}

// Empty returns an exhausted cursor.
func Empty[Item any]() Cursor[Item] { return emptyCursor[Item]{} }

type emptyCursor[Item any] struct{}

func (emptyCursor[Item]) Current() (Item, bool) {
	var zero Item
	return zero, false
}

func (emptyCursor[Item]) Advance() {}
