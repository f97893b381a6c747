// Package equivcontract holds the conformance suites of equivalence capabilities.
package equivcontract

import (
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/capkit/pkg/cursorkit"
	"go.llib.dev/capkit/pkg/equivkit"
	"go.llib.dev/capkit/pkg/tristate"
	"go.llib.dev/capkit/port/contract"
)

// Equivalence checks the equivalence laws over the sample of the subject,
// and that the derived quantifiers agree with Equal.
func Equivalence[T any](mk contract.Make[equivkit.Equivalence[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) equivkit.Equivalence[T] {
		e := mk(t)
		assert.NotEmpty(t, e.Sample(), "the contract needs a sample")
		return e
	})

	s.Test("the laws hold over the sample", func(t *testcase.T) {
		assert.NoError(t, subject.Get(t).Check())
	})

	s.Test("every sample item is equal to itself", func(t *testcase.T) {
		e := subject.Get(t)
		x := random.Pick(t.Random, e.Sample()...)
		assert.True(t, e.Equal(x, x))
	})

	s.Test("equality is symmetric on random pairs", func(t *testcase.T) {
		e := subject.Get(t)
		x, y := random.Pick(t.Random, e.Sample()...), random.Pick(t.Random, e.Sample()...)
		assert.Equal(t, e.Equal(x, y), e.Equal(y, x))
	})

	s.Test("AnyEq finds every sample item in the sample", func(t *testcase.T) {
		e := subject.Get(t)
		for _, x := range e.Sample() {
			assert.True(t, e.AnyEq(x, true, cursorkit.FromSlice(e.Sample())))
		}
	})

	s.Test("FilterEq and AllEq agree", func(t *testcase.T) {
		e := subject.Get(t)
		x := random.Pick(t.Random, e.Sample()...)
		matching := cursorkit.Collect(e.FilterEq(x, true, cursorkit.FromSlice(e.Sample())))
		assert.NotEmpty(t, matching)
		assert.True(t, e.AllEq(x, true, cursorkit.FromSlice(matching)))
	})

	return s.AsSuite("Equivalence")
}

// PartialEquivalence checks the partial equivalence laws over the sample of the subject.
func PartialEquivalence[T any](mk contract.Make[equivkit.PartialEquivalence[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) equivkit.PartialEquivalence[T] {
		e := mk(t)
		assert.NotEmpty(t, e.Sample(), "the contract needs a sample")
		return e
	})

	s.Test("the laws hold over the comparable pairs of the sample", func(t *testcase.T) {
		assert.NoError(t, subject.Get(t).Check())
	})

	s.Test("no sample item is definitely unequal to itself", func(t *testcase.T) {
		e := subject.Get(t)
		x := random.Pick(t.Random, e.Sample()...)
		assert.NotEqual(t, tristate.False, e.Equal(x, x))
	})

	s.Test("definite answers are symmetric", func(t *testcase.T) {
		e := subject.Get(t)
		x, y := random.Pick(t.Random, e.Sample()...), random.Pick(t.Random, e.Sample()...)
		xy, yx := e.Equal(x, y), e.Equal(y, x)
		if xy.Definite() && yx.Definite() {
			assert.Equal(t, xy, yx)
		}
	})

	return s.AsSuite("PartialEquivalence")
}
