package equivkit_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
	"go.llib.dev/testcase"

	"go.llib.dev/capkit/pkg/equivkit"
	"go.llib.dev/capkit/pkg/logging"
	"go.llib.dev/capkit/pkg/tristate"
)

type Vec struct{ X, Y int }

func (v Vec) Norm2() int { return v.X*v.X + v.Y*v.Y }

type Person struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Age     int
	friends []*Person
	address *Address
}

type Address struct {
	City string
	Zip  [5]byte
}

func makePerson() Person {
	return Person{
		ID:    uuid.NewV4(),
		Name:  randomdata.FullName(randomdata.RandomGender),
		Email: randomdata.Email(),
		Age:   randomdata.Number(18, 99),
		address: &Address{
			City: randomdata.City(),
			Zip:  [5]byte{'1', '2', '3', '4', '5'},
		},
	}
}

type Node struct {
	Value int
	Next  *Node
}

type Money struct {
	Amount   int64
	Currency string
	note     string
}

func (m Money) Equal(o Money) bool { return m.Amount == o.Amount && m.Currency == o.Currency }

type Temperature struct{ Celsius float64 }

type Shape interface{ Area() int }

type Square struct{ Side int }

func (s Square) Area() int { return s.Side * s.Side }

func ExampleDerive() {
	eq, err := equivkit.Derive[Vec]()
	if err != nil {
		panic(err)
	}
	fmt.Println(eq(Vec{X: 3, Y: 4}, Vec{X: 4, Y: 3}))
	// Output: false
}

func TestDerive(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Before(func(t *testcase.T) {
		logging.StubDefault(t)
	})

	s.Describe("scalar records", func(s *testcase.Spec) {
		s.Test("vectors compare field by field", func(t *testcase.T) {
			eq, err := equivkit.Derive[Vec]()
			t.Must.NoError(err)
			t.Must.True(eq(Vec{X: 3, Y: 4}, Vec{X: 3, Y: 4}))
			t.Must.False(eq(Vec{X: 3, Y: 4}, Vec{X: 4, Y: 3}))
		})

		s.Test("strings and named scalars", func(t *testcase.T) {
			type Label string
			eq, err := equivkit.Derive[Label]()
			t.Must.NoError(err)
			l := Label(t.Random.String())
			t.Must.True(eq(l, l))
			t.Must.False(eq(l, l+"!"))
		})
	})

	s.Describe("composite records", func(s *testcase.Spec) {
		s.Test("nested records with unexported fields, pointers, arrays and slices", func(t *testcase.T) {
			eq, err := equivkit.Derive[Person]()
			t.Must.NoError(err)

			p := makePerson()
			cpy := p
			cpy.address = &Address{City: p.address.City, Zip: p.address.Zip}
			t.Must.True(eq(p, cpy))

			cpy.address.Zip[4] = '0'
			t.Must.False(eq(p, cpy), "unexported pointer fields are compared by their pointee")

			other := p
			other.ID = uuid.NewV4()
			t.Must.False(eq(p, other), "uuid arrays are compared element wise")
		})

		s.Test("slices compare length then elements", func(t *testcase.T) {
			eq, err := equivkit.Derive[[]Vec]()
			t.Must.NoError(err)
			t.Must.True(eq(nil, []Vec{}))
			t.Must.True(eq([]Vec{{1, 2}}, []Vec{{1, 2}}))
			t.Must.False(eq([]Vec{{1, 2}}, []Vec{{1, 2}, {3, 4}}))
			t.Must.False(eq([]Vec{{1, 2}}, []Vec{{2, 1}}))
		})

		s.Test("nil pointers are only equal to nil", func(t *testcase.T) {
			eq, err := equivkit.Derive[*Vec]()
			t.Must.NoError(err)
			t.Must.True(eq(nil, nil))
			t.Must.False(eq(nil, &Vec{}))
			t.Must.True(eq(&Vec{X: 1}, &Vec{X: 1}))
		})

		s.Test("cyclic pointer graphs terminate", func(t *testcase.T) {
			eq, err := equivkit.Derive[*Node]()
			t.Must.NoError(err)
			a := &Node{Value: 1}
			a.Next = a
			b := &Node{Value: 1}
			b.Next = b
			t.Must.True(eq(a, b))
			c := &Node{Value: 1, Next: &Node{Value: 2}}
			c.Next.Next = c
			t.Must.False(eq(a, c))
		})

		s.Test("aliased inputs are compared by value", func(t *testcase.T) {
			eq, err := equivkit.Derive[*Temperature](equivkit.WithFloatPolicy(equivkit.FloatPolicy{}))
			t.Must.NoError(err)
			p := &Temperature{Celsius: math.NaN()}
			q := &Temperature{Celsius: math.NaN()}
			t.Must.Equal(eq(p, q), eq(p, p))
			t.Must.False(eq(p, p))

			seq, err := equivkit.Derive[[]Temperature](equivkit.WithFloatPolicy(equivkit.FloatPolicy{}))
			t.Must.NoError(err)
			ts := []Temperature{{Celsius: math.NaN()}}
			t.Must.False(seq(ts, ts))
			t.Must.False(seq(ts, ts[:1]))
		})

		s.Test("self containing slices terminate", func(t *testcase.T) {
			eq, err := equivkit.Derive[Forest]()
			t.Must.NoError(err)
			f := Forest{nil}
			f[0] = f
			g := Forest{nil}
			g[0] = g
			t.Must.True(eq(f, f))
			t.Must.True(eq(f, g))
			t.Must.False(eq(f, Forest{nil, nil}))
		})

		s.Test("zero size types are always equal", func(t *testcase.T) {
			eq, err := equivkit.Derive[struct{}]()
			t.Must.NoError(err)
			t.Must.True(eq(struct{}{}, struct{}{}))
		})
	})

	s.Describe("equality methods", func(s *testcase.Spec) {
		s.Test("the Equal method is used", func(t *testcase.T) {
			eq, err := equivkit.Derive[Money]()
			t.Must.NoError(err)
			t.Must.True(eq(Money{Amount: 42, Currency: "EUR", note: "a"}, Money{Amount: 42, Currency: "EUR", note: "b"}))
			t.Must.False(eq(Money{Amount: 42, Currency: "EUR"}, Money{Amount: 42, Currency: "USD"}))
		})

		s.Test("time values use their Equal method", func(t *testcase.T) {
			eq, err := equivkit.Derive[time.Time]()
			t.Must.NoError(err)
			now := time.Now()
			t.Must.True(eq(now, now.In(time.UTC)))
		})

		s.Test("a registered function wins over the Equal method", func(t *testcase.T) {
			eq, err := equivkit.Derive[Money](equivkit.WithEqual(func(x, y Money) bool { return x.note == y.note }))
			t.Must.NoError(err)
			t.Must.True(eq(Money{Amount: 1, note: "x"}, Money{Amount: 2, note: "x"}))
		})
	})

	s.Describe("rejections", func(s *testcase.Spec) {
		s.Test("floats without a policy", func(t *testcase.T) {
			_, err := equivkit.Derive[Temperature]()
			t.Must.ErrorIs(equivkit.ErrFloatEquality, err)
			t.Must.Contain(err.Error(), "Celsius")
		})

		s.Test("complex numbers without a policy", func(t *testcase.T) {
			_, err := equivkit.Derive[complex128]()
			t.Must.ErrorIs(equivkit.ErrFloatEquality, err)
		})

		s.Test("interfaces without a registered equality", func(t *testcase.T) {
			_, err := equivkit.Derive[struct{ S Shape }]()
			t.Must.ErrorIs(equivkit.ErrSumType, err)
			_, err = equivkit.Derive[error]()
			t.Must.ErrorIs(equivkit.ErrSumType, err)
		})

		s.Test("opaque kinds", func(t *testcase.T) {
			_, err := equivkit.Derive[func()]()
			t.Must.ErrorIs(equivkit.ErrOpaqueType, err)
			_, err = equivkit.Derive[chan int]()
			t.Must.ErrorIs(equivkit.ErrOpaqueType, err)
			_, err = equivkit.Derive[map[string]int]()
			t.Must.ErrorIs(equivkit.ErrOpaqueType, err)
		})

		s.Test("the rejection is logged", func(t *testcase.T) {
			out := logging.StubDefault(t)
			_, _ = equivkit.Derive[[]Temperature]()
			t.Must.Contain(out.String(), "equality derivation rejected")
		})
	})

	s.Describe("opting in", func(s *testcase.Spec) {
		s.Test("a float policy enables floating point fields", func(t *testcase.T) {
			eq, err := equivkit.Derive[Temperature](equivkit.WithFloatPolicy(equivkit.FloatPolicy{AbsTolerance: 0.01}))
			t.Must.NoError(err)
			t.Must.True(eq(Temperature{Celsius: 21.5}, Temperature{Celsius: 21.505}))
			t.Must.False(eq(Temperature{Celsius: 21.5}, Temperature{Celsius: 21.6}))
			t.Must.False(eq(Temperature{Celsius: math.NaN()}, Temperature{Celsius: math.NaN()}))
		})

		s.Test("a registered interface equality enables sum types", func(t *testcase.T) {
			eq, err := equivkit.Derive[[]Shape](equivkit.WithEqual(func(x, y Shape) bool {
				if x == nil || y == nil {
					return x == y
				}
				return x.Area() == y.Area()
			}))
			t.Must.NoError(err)
			t.Must.True(eq([]Shape{Square{Side: 2}}, []Shape{Square{Side: -2}}))
			t.Must.False(eq([]Shape{Square{Side: 2}}, []Shape{nil}))
		})

		s.Test("a registered error equality", func(t *testcase.T) {
			eq, err := equivkit.Derive[error](equivkit.WithEqual(func(x, y error) bool { return errors.Is(x, y) }))
			t.Must.NoError(err)
			t.Must.True(eq(nil, nil))
			t.Must.True(eq(equivkit.ErrSumType, equivkit.ErrSumType))
		})
	})
}

type Forest []Forest

type Reading struct {
	Sensor string
	Value  *int
}

type Version struct{ Major, Minor int }

func (v Version) EqualPartial(o Version) tristate.Bool {
	if v.Major != o.Major {
		return tristate.Incomparable
	}
	return tristate.Of(v.Minor == o.Minor)
}

func TestDerivePartial(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Before(func(t *testcase.T) {
		logging.StubDefault(t)
	})

	intp := func(n int) *int { return &n }

	s.Test("absence markers are incomparable", func(t *testcase.T) {
		eq, err := equivkit.DerivePartial[Reading]()
		t.Must.NoError(err)
		t.Must.Equal(tristate.True, eq(Reading{"a", intp(1)}, Reading{"a", intp(1)}))
		t.Must.Equal(tristate.Incomparable, eq(Reading{"a", nil}, Reading{"a", intp(1)}))
		t.Must.Equal(tristate.Incomparable, eq(Reading{"a", nil}, Reading{"a", nil}))
	})

	s.Test("aliased inputs answer like their copies", func(t *testcase.T) {
		seq, err := equivkit.DerivePartial[[]*int]()
		t.Must.NoError(err)
		xs := []*int{nil}
		t.Must.Equal(tristate.Incomparable, seq(xs, xs))
		t.Must.Equal(seq(xs, []*int{nil}), seq(xs, xs))

		peq, err := equivkit.DerivePartial[*Reading]()
		t.Must.NoError(err)
		r := &Reading{Sensor: "a"}
		t.Must.Equal(tristate.Incomparable, peq(r, r))
		t.Must.Equal(peq(r, &Reading{Sensor: "a"}), peq(r, r))

		v := &Reading{Sensor: "a", Value: intp(1)}
		t.Must.Equal(tristate.True, peq(v, v))
	})

	s.Test("shared pointers are compared on their first visit", func(t *testcase.T) {
		seq, err := equivkit.DerivePartial[[]*Reading]()
		t.Must.NoError(err)
		r := &Reading{Sensor: "a"}
		t.Must.Equal(tristate.Incomparable, seq([]*Reading{r, r}, []*Reading{r, r}))
	})

	s.Test("a definite mismatch wins over an incomparable field", func(t *testcase.T) {
		eq, err := equivkit.DerivePartial[Reading]()
		t.Must.NoError(err)
		t.Must.Equal(tristate.False, eq(Reading{"a", nil}, Reading{"b", intp(1)}))
	})

	s.Test("slices of different length are incomparable", func(t *testcase.T) {
		eq, err := equivkit.DerivePartial[[]int]()
		t.Must.NoError(err)
		t.Must.Equal(tristate.Incomparable, eq([]int{1}, []int{1, 2}))
		t.Must.Equal(tristate.False, eq([]int{1, 2}, []int{1, 3}))
	})

	s.Test("NaN is incomparable unless the policy says otherwise", func(t *testcase.T) {
		eq, err := equivkit.DerivePartial[float64](equivkit.WithFloatPolicy(equivkit.FloatPolicy{}))
		t.Must.NoError(err)
		t.Must.Equal(tristate.Incomparable, eq(math.NaN(), 1))
		t.Must.Equal(tristate.True, eq(1, 1))

		eq, err = equivkit.DerivePartial[float64](equivkit.WithFloatPolicy(equivkit.FloatPolicy{NaNEqual: true}))
		t.Must.NoError(err)
		t.Must.Equal(tristate.True, eq(math.NaN(), math.NaN()))
		t.Must.Equal(tristate.False, eq(math.NaN(), 1))
	})

	s.Test("the EqualPartial method is used", func(t *testcase.T) {
		eq, err := equivkit.DerivePartial[[]Version]()
		t.Must.NoError(err)
		t.Must.Equal(tristate.Incomparable, eq([]Version{{1, 0}}, []Version{{2, 0}}))
		t.Must.Equal(tristate.False, eq([]Version{{1, 0}}, []Version{{1, 1}}))
	})

	s.Test("registered tri-state functions", func(t *testcase.T) {
		eq, err := equivkit.DerivePartial[Shape](equivkit.WithPartialEqual(func(x, y Shape) tristate.Bool {
			if x == nil || y == nil {
				return tristate.Incomparable
			}
			return tristate.Of(x.Area() == y.Area())
		}))
		t.Must.NoError(err)
		t.Must.Equal(tristate.Incomparable, eq(nil, Square{}))
		t.Must.Equal(tristate.True, eq(Square{Side: 3}, Square{Side: 3}))
	})
}
