package capkit_test

import (
	"errors"
	"testing"

	"go.llib.dev/capkit/pkg/capkit"
	"go.llib.dev/capkit/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

type Vec struct{ X, Y int }

func (v Vec) Equal(o Vec) bool { return v == o }

func (v Vec) Norm2() int { return v.X*v.X + v.Y*v.Y }

func (v *Vec) Scale(n int) { v.X, v.Y = v.X*n, v.Y*n }

func ExampleBind() {
	rec := capkit.RecordOf[Vec]("equivalence", map[string]any{
		"eq": func(a, b Vec) bool { return a.Norm2() == b.Norm2() },
	})

	b := capkit.Bind(rec)
	eq := capkit.Require[func(Vec, Vec) bool](b, "eq")
	sample := capkit.Default[[]Vec](b, "sample", nil)
	if err := b.Finish(); err != nil {
		panic(err)
	}
	_, _ = eq, sample
}

func TestBind(t *testing.T) {
	s := testcase.NewSpec(t)

	fields := testcase.Let(s, func(t *testcase.T) map[string]any {
		return nil
	})
	rec := testcase.Let(s, func(t *testcase.T) capkit.Record {
		return capkit.RecordOf[Vec]("equivalence", fields.Get(t))
	})
	binder := testcase.Let(s, func(t *testcase.T) *capkit.Binder {
		return capkit.Bind(rec.Get(t))
	})

	s.Describe("Require", func(s *testcase.Spec) {
		act := func(t *testcase.T) func(Vec, Vec) bool {
			return capkit.Require[func(Vec, Vec) bool](binder.Get(t), "eq")
		}

		s.When("the field is present with the expected shape", func(s *testcase.Spec) {
			fields.Let(s, func(t *testcase.T) map[string]any {
				return map[string]any{"eq": func(a, b Vec) bool { return a.Norm2() == b.Norm2() }}
			})

			s.Then("the field is returned and the binding succeeds", func(t *testcase.T) {
				eq := act(t)
				t.Must.NotNil(eq)
				t.Must.True(eq(Vec{X: 3, Y: 4}, Vec{X: 4, Y: 3}))
				t.Must.NoError(binder.Get(t).Finish())
			})
		})

		s.When("the field is missing", func(s *testcase.Spec) {
			fields.Let(s, func(t *testcase.T) map[string]any {
				return map[string]any{}
			})

			s.Then("the binding fails with a diagnostic naming the consumer, the record and the field", func(t *testcase.T) {
				logging.StubDefault(t)
				t.Must.Nil(act(t))
				err := binder.Get(t).Finish()
				t.Must.ErrorIs(capkit.ErrMissingCapability, err)
				t.Must.Contain(err.Error(), "capkit_test.Vec")
				t.Must.Contain(err.Error(), "equivalence")
				t.Must.Contain(err.Error(), `"eq"`)
			})

			s.Then("the rejection is logged with the binding details", func(t *testcase.T) {
				out := logging.StubDefault(t)
				act(t)
				t.Must.Error(binder.Get(t).Finish())
				t.Must.Contain(out.String(), "capability record rejected")
				t.Must.Contain(out.String(), `"consumer":"capkit_test.Vec"`)
				t.Must.Contain(out.String(), `"record":"equivalence"`)
				t.Must.Contain(out.String(), `"field":"eq"`)
			})
		})

		s.When("the field has a different shape", func(s *testcase.Spec) {
			fields.Let(s, func(t *testcase.T) map[string]any {
				return map[string]any{"eq": func(a, b *Vec) bool { return a == b }}
			})

			s.Then("the binding fails with a shape diagnostic", func(t *testcase.T) {
				logging.StubDefault(t)
				act(t)
				err := binder.Get(t).Finish()
				t.Must.ErrorIs(capkit.ErrCapabilityShape, err)
				t.Must.Contain(err.Error(), "func(*capkit_test.Vec, *capkit_test.Vec) bool")
				t.Must.Contain(err.Error(), "func(capkit_test.Vec, capkit_test.Vec) bool")
			})
		})

		s.When("the field is a nil function", func(s *testcase.Spec) {
			fields.Let(s, func(t *testcase.T) map[string]any {
				return map[string]any{"eq": (func(a, b Vec) bool)(nil)}
			})

			s.Then("it is treated as missing", func(t *testcase.T) {
				logging.StubDefault(t)
				act(t)
				t.Must.ErrorIs(capkit.ErrMissingCapability, binder.Get(t).Finish())
			})
		})
	})

	s.Describe("Default", func(s *testcase.Spec) {
		fallback := testcase.Let(s, func(t *testcase.T) []Vec {
			return []Vec{{X: t.Random.Int(), Y: t.Random.Int()}}
		})
		act := func(t *testcase.T) []Vec {
			return capkit.Default[[]Vec](binder.Get(t), "sample", fallback.Get(t))
		}

		s.When("the field is absent", func(s *testcase.Spec) {
			fields.Let(s, func(t *testcase.T) map[string]any {
				return nil
			})

			s.Then("the fallback is returned", func(t *testcase.T) {
				t.Must.Equal(fallback.Get(t), act(t))
				t.Must.NoError(binder.Get(t).Finish())
			})
		})

		s.When("the field is present", func(s *testcase.Spec) {
			sample := testcase.Let(s, func(t *testcase.T) []Vec {
				return []Vec{{X: 1, Y: 2}, {X: 3, Y: 4}}
			})
			fields.Let(s, func(t *testcase.T) map[string]any {
				return map[string]any{"sample": sample.Get(t)}
			})

			s.Then("the supplied value wins", func(t *testcase.T) {
				t.Must.Equal(sample.Get(t), act(t))
				t.Must.NoError(binder.Get(t).Finish())
			})
		})

		s.When("the field is present with a different shape", func(s *testcase.Spec) {
			fields.Let(s, func(t *testcase.T) map[string]any {
				return map[string]any{"sample": []int{1, 2, 3}}
			})

			s.Then("the shape is still checked", func(t *testcase.T) {
				logging.StubDefault(t)
				t.Must.Nil(act(t))
				t.Must.ErrorIs(capkit.ErrCapabilityShape, binder.Get(t).Finish())
			})
		})
	})

	s.Test("every diagnostic is reported together", func(t *testcase.T) {
		logging.StubDefault(t)
		b := capkit.Bind(capkit.RecordOf[Vec]("cursor", map[string]any{"advance": 42}))
		capkit.Require[func(Vec) (int, bool)](b, "current")
		capkit.Require[func(*Vec)](b, "advance")
		err := b.Finish()
		t.Must.True(errors.Is(err, capkit.ErrMissingCapability))
		t.Must.True(errors.Is(err, capkit.ErrCapabilityShape))
	})

	s.Test("binding events are logged", func(t *testcase.T) {
		out := logging.StubDefault(t)
		b := capkit.Bind(capkit.RecordOf[Vec]("equivalence", nil))
		capkit.Require[func(Vec, Vec) bool](b, "eq")
		_ = b.Finish()
		t.Must.Contain(out.String(), "capability record rejected")
		t.Must.Contain(out.String(), `"field":"eq"`)

		b = capkit.Bind(capkit.RecordOf[Vec]("equivalence", map[string]any{"eq": Vec.Equal}))
		capkit.Require[func(Vec, Vec) bool](b, "eq")
		t.Must.NoError(b.Finish())
		t.Must.Contain(out.String(), "capability record bound")
	})
}

func TestRecord_With(t *testing.T) {
	rec := capkit.RecordOf[Vec]("equivalence", map[string]any{"a": 1})
	ext := rec.With("b", 2)
	assert.Equal(t, 2, len(ext.Fields))
	assert.Equal(t, 1, len(rec.Fields))
	assert.True(t, capkit.Bind(ext).Has("b"))
	assert.False(t, capkit.Bind(rec).Has("b"))
}

func TestMethods(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	rec := capkit.Methods("vector", v)
	assert.Equal(t, "capkit_test.Vec", rec.Consumer)

	b := capkit.Bind(rec)
	norm := capkit.Require[func() int](b, "norm2")
	equal := capkit.Require[func(Vec) bool](b, "equal")
	assert.NoError(t, b.Finish())
	assert.Equal(t, 25, norm())
	assert.True(t, equal(Vec{X: 3, Y: 4}))
	assert.False(t, b.Has("scale"))
}

func TestMethodExpressions(t *testing.T) {
	rec := capkit.MethodExpressions[*Vec]("vector")
	b := capkit.Bind(rec)
	scale := capkit.Require[func(*Vec, int)](b, "scale")
	equal := capkit.Require[func(*Vec, Vec) bool](b, "equal")
	assert.NoError(t, b.Finish())

	v := &Vec{X: 1, Y: 2}
	scale(v, 3)
	assert.Equal(t, Vec{X: 3, Y: 6}, *v)
	assert.True(t, equal(v, Vec{X: 3, Y: 6}))
}

func TestAccess(t *testing.T) {
	t.Run("by-value", func(t *testing.T) {
		var acc capkit.Access[map[string]int, map[string]int] = capkit.ByValueAccess[map[string]int]{}
		assert.Equal(t, capkit.ByValue, acc.Mode())
		m := map[string]int{}
		acc.Mutable(&m)["a"] = 1
		assert.Equal(t, 1, acc.View(m)["a"])
		assert.Equal(t, "by-value", acc.Mode().String())
	})
	t.Run("by-reference", func(t *testing.T) {
		var acc capkit.Access[Vec, *Vec] = capkit.ByReferenceAccess[Vec]{}
		assert.Equal(t, capkit.ByReference, acc.Mode())
		v := Vec{X: 1}
		acc.Mutable(&v).Scale(2)
		assert.Equal(t, Vec{X: 2}, acc.View(&v))
		assert.Equal(t, "by-reference", acc.Mode().String())
	})
}
