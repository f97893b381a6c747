// Package ordcontract holds the conformance suites of ordering capabilities.
package ordcontract

import (
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/capkit/pkg/cursorkit"
	"go.llib.dev/capkit/pkg/ordkit"
	"go.llib.dev/capkit/pkg/tristate"
	"go.llib.dev/capkit/port/contract"
)

// Ordered checks the ordering laws over the sample of the subject,
// and that the derived relations, extremum search and clamping agree with Cmp.
func Ordered[T any](mk contract.Make[ordkit.Ordered[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) ordkit.Ordered[T] {
		o := mk(t)
		assert.NotEmpty(t, o.Sample(), "the contract needs a sample")
		return o
	})
	pick := func(t *testcase.T) T {
		return random.Pick(t.Random, subject.Get(t).Sample()...)
	}

	s.Test("the laws hold over the sample", func(t *testcase.T) {
		assert.NoError(t, subject.Get(t).Check())
	})

	s.Test("the relations agree with Cmp", func(t *testcase.T) {
		o := subject.Get(t)
		x, y := pick(t), pick(t)
		c := o.Cmp(x, y)
		assert.Equal(t, c == ordkit.Equals, o.Eq(x, y))
		assert.Equal(t, c == ordkit.Backwards, o.Lt(x, y))
		assert.Equal(t, c != ordkit.Forwards, o.Le(x, y))
		assert.Equal(t, c == ordkit.Forwards, o.Gt(x, y))
		assert.Equal(t, c != ordkit.Backwards, o.Ge(x, y))
		assert.Equal(t, o.Lt(x, y), o.Gt(y, x))
	})

	s.Test("Max and Min bound every sample item", func(t *testcase.T) {
		o := subject.Get(t)
		hi, ok := o.Max(cursorkit.FromSlice(o.Sample()))
		assert.True(t, ok)
		lo, ok := o.Min(cursorkit.FromSlice(o.Sample()))
		assert.True(t, ok)
		for _, x := range o.Sample() {
			assert.True(t, o.Le(x, hi))
			assert.True(t, o.Ge(x, lo))
			assert.True(t, o.IsClamped(x, lo, hi))
		}
	})

	s.Test("the earliest item wins ties", func(t *testcase.T) {
		o := subject.Get(t)
		x := pick(t)
		_, i, ok := o.MaxIndex(cursorkit.FromSlice([]T{x, x, x}))
		assert.True(t, ok)
		assert.Equal(t, 0, i)
		_, i, ok = o.MinIndex(cursorkit.FromSlice([]T{x, x}))
		assert.True(t, ok)
		assert.Equal(t, 0, i)
	})

	s.Test("a clamped value is within its bounds", func(t *testcase.T) {
		o := subject.Get(t)
		floor, roof := pick(t), pick(t)
		if o.Gt(floor, roof) {
			floor, roof = roof, floor
		}
		x := pick(t)
		o.Clamp(&x, floor, roof)
		assert.True(t, o.IsClamped(x, floor, roof))
	})

	return s.AsSuite("Ordered")
}

// PartialOrdered checks the partial ordering laws over the comparable pairs of the sample.
func PartialOrdered[T any](mk contract.Make[ordkit.PartialOrdered[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) ordkit.PartialOrdered[T] {
		o := mk(t)
		assert.NotEmpty(t, o.Sample(), "the contract needs a sample")
		return o
	})

	s.Test("the laws hold over the sample", func(t *testcase.T) {
		assert.NoError(t, subject.Get(t).Check())
	})

	s.Test("incomparable pairs answer incomparable to every relation", func(t *testcase.T) {
		o := subject.Get(t)
		for _, x := range o.Sample() {
			for _, y := range o.Sample() {
				if o.Cmp(x, y) != ordkit.PartialIncomparable {
					continue
				}
				assert.Equal(t, tristate.Incomparable, o.Eq(x, y))
				assert.Equal(t, tristate.Incomparable, o.Lt(x, y))
				assert.Equal(t, tristate.Incomparable, o.Le(x, y))
				assert.Equal(t, tristate.Incomparable, o.Gt(x, y))
				assert.Equal(t, tristate.Incomparable, o.Ge(x, y))
			}
		}
	})

	s.Test("the derived equivalence holds its laws", func(t *testcase.T) {
		assert.NoError(t, subject.Get(t).Equivalence().Check())
	})

	return s.AsSuite("PartialOrdered")
}
