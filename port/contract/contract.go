// Package contract defines the shape of the reusable conformance suites.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make creates a new instance of the subject under test.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract is a reusable test suite that describes what a capability must satisfy.
//
// A consumer that supplies a capability record runs the matching contract against its own
// sample, and gets the family's laws checked without writing them again.
type Contract interface {
	testcase.Suite
	// Test asserts the behavioral requirements against a supplier implementation.
	Test(*testing.T)
	// Benchmark measures the operations the consumer relies on.
	Benchmark(*testing.B)
}
