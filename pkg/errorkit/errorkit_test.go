package errorkit_test

import (
	"errors"
	"fmt"
	"testing"

	"go.llib.dev/capkit/pkg/errorkit"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func ExampleError_Error() {
	const ErrSomething errorkit.Error = "something is an error"

	_ = ErrSomething
}

func TestError_Error_smoke(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	assert.Equal(t, ErrExample.Error(), string(ErrExample))
}

type ErrAsStub struct {
	V string
}

func (err ErrAsStub) Error() string {
	return fmt.Sprintf("ErrAsStub: %s", err.V)
}

func TestError_Wrap(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	t.Run("happy", func(t *testing.T) {
		exp := rnd.Error()
		got := ErrExample.Wrap(exp)
		assert.True(t, errors.Is(got, exp))
		assert.True(t, errors.Is(got, ErrExample))
		assert.Contain(t, got.Error(), fmt.Sprintf("[%s] %s", ErrExample, exp.Error()))
	})
	t.Run("As", func(t *testing.T) {
		exp := ErrAsStub{V: rnd.String()}
		got := ErrExample.Wrap(exp)

		var expected ErrAsStub
		assert.True(t, errors.As(got, &expected))
		assert.Equal(t, exp, expected)
	})
	t.Run("nil", func(t *testing.T) {
		got := ErrExample.Wrap(nil)
		assert.Equal[error](t, got, ErrExample)
	})
}

func TestError_F(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	got := ErrExample.F("foo %s", "bar")
	assert.True(t, errors.Is(got, ErrExample))
	assert.Contain(t, got.Error(), "foo bar")
}

func TestMerge(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		assert.Nil(t, errorkit.Merge())
		assert.Nil(t, errorkit.Merge(nil, nil))
	})
	t.Run("single error is returned as is", func(t *testing.T) {
		exp := rnd.Error()
		assert.Equal(t, exp, errorkit.Merge(nil, exp, nil))
	})
	t.Run("multiple errors are all reachable", func(t *testing.T) {
		err1, err2 := rnd.Error(), rnd.Error()
		got := errorkit.Merge(err1, err2)
		assert.True(t, errors.Is(got, err1))
		assert.True(t, errors.Is(got, err2))
		assert.Contain(t, got.Error(), err1.Error())
		assert.Contain(t, got.Error(), err2.Error())
	})
}

func TestFinish(t *testing.T) {
	t.Run("errors are merged from all source", func(t *testing.T) {
		err1 := rnd.Error()
		err2 := rnd.Error()

		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, func() error {
				return err1
			})

			return err2
		}()

		assert.True(t, errors.Is(got, err1))
		assert.True(t, errors.Is(got, err2))
	})

	t.Run("func return value returned", func(t *testing.T) {
		exp := rnd.Error()
		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, func() error {
				return nil
			})

			return exp
		}()

		assert.Equal(t, exp, got)
	})
}
