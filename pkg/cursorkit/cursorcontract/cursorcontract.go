// Package cursorcontract holds the conformance suites of cursor implementations.
package cursorcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/capkit/pkg/cursorkit"
	"go.llib.dev/capkit/port/contract"
)

// Subject is a freshly positioned cursor together with the items it must yield in order.
type Subject[C any, Item any] struct {
	Cursor   C
	Expected []Item
}

// Cursor checks the forward cursor laws:
// Next yields the expected items, Current is stable, and exhaustion is idempotent.
func Cursor[Item any](mk contract.Make[Subject[cursorkit.Cursor[Item], Item]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[cursorkit.Cursor[Item], Item] {
		return mk(t)
	})

	s.Then("Next yields the expected items in order", func(t *testcase.T) {
		sub := subject.Get(t)
		var got []Item
		for {
			item, ok := cursorkit.Next(sub.Cursor)
			if !ok {
				break
			}
			got = append(got, item)
			assert.True(t, len(got) <= len(sub.Expected), "cursor yielded more items than expected")
		}
		assert.Equal(t, len(sub.Expected), len(got))
		for i := range sub.Expected {
			assert.Equal(t, sub.Expected[i], got[i])
		}
	})

	s.Then("Current is stable until the cursor is advanced", func(t *testcase.T) {
		sub := subject.Get(t)
		first, ok1 := sub.Cursor.Current()
		second, ok2 := sub.Cursor.Current()
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, first, second)
		if 0 < len(sub.Expected) {
			assert.True(t, ok1)
			assert.Equal(t, sub.Expected[0], first)
		} else {
			assert.False(t, ok1)
		}
	})

	s.Then("advancing an exhausted cursor keeps it exhausted", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, len(sub.Expected), cursorkit.Count(sub.Cursor))
		t.Random.Repeat(1, 5, func() {
			sub.Cursor.Advance()
			_, ok := sub.Cursor.Current()
			assert.False(t, ok)
		})
		_, ok := cursorkit.Next(sub.Cursor)
		assert.False(t, ok)
	})

	s.Then("SkipTimes never skips past the end", func(t *testcase.T) {
		sub := subject.Get(t)
		n := len(sub.Expected) + t.Random.IntBetween(1, 3)
		assert.Equal(t, len(sub.Expected), cursorkit.SkipTimes(sub.Cursor, n))
	})

	s.Then("NextTimes returns the last yielded item", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Expected) == 0 {
			_, ok := cursorkit.NextTimes(sub.Cursor, t.Random.IntBetween(1, 3))
			assert.False(t, ok)
			return
		}
		n := t.Random.IntBetween(1, len(sub.Expected))
		last, ok := cursorkit.NextTimes(sub.Cursor, n)
		assert.True(t, ok)
		assert.Equal(t, sub.Expected[n-1], last)
	})

	return s.AsSuite("Cursor")
}

// BiCursor checks the bidirectional cursor laws on top of the forward ones.
// SkipBack has to undo Advance at every position of the sequence.
func BiCursor[Item any](mk contract.Make[Subject[cursorkit.BiCursor[Item], Item]]) contract.Contract {
	s := testcase.NewSpec(nil)

	s.Context("forward", Cursor(func(tb testing.TB) Subject[cursorkit.Cursor[Item], Item] {
		sub := mk(tb)
		return Subject[cursorkit.Cursor[Item], Item]{Cursor: sub.Cursor, Expected: sub.Expected}
	}).Spec)

	subject := testcase.Let(s, func(t *testcase.T) Subject[cursorkit.BiCursor[Item], Item] {
		return mk(t)
	})

	s.Then("SkipBack is the inverse of Advance", func(t *testcase.T) {
		sub := subject.Get(t)
		for range sub.Expected {
			before, okBefore := sub.Cursor.Current()
			sub.Cursor.Advance()
			sub.Cursor.SkipBack()
			after, okAfter := sub.Cursor.Current()
			assert.Equal(t, okBefore, okAfter)
			assert.Equal(t, before, after)
			sub.Cursor.Advance()
		}
	})

	s.Then("walking back from the end yields the items in reverse", func(t *testcase.T) {
		sub := subject.Get(t)
		cursorkit.SkipTimes(sub.Cursor, len(sub.Expected))
		sub.Cursor.SkipBack()
		for i := len(sub.Expected) - 1; 0 <= i; i-- {
			item, ok := cursorkit.Prev(sub.Cursor)
			assert.True(t, ok)
			assert.Equal(t, sub.Expected[i], item)
		}
		_, ok := sub.Cursor.Current()
		assert.False(t, ok)
	})

	return s.AsSuite("BiCursor")
}
