// Package equivkit derives equality from the shape of a type, and builds the equivalence family on top of it.
//
// Derivation walks the type once and compiles a plan.
// Types without a sound structural equality are rejected at that point:
// floats need a FloatPolicy, interfaces and opaque kinds need a registered function.
// A compiled plan never fails when it is called.
package equivkit

import (
	"reflect"

	"go.llib.dev/capkit/pkg/errorkit"
	"go.llib.dev/capkit/pkg/reflectkit"
	"go.llib.dev/capkit/pkg/tristate"
	"go.llib.dev/capkit/port/option"
)

const (
	// ErrFloatEquality is returned when a type contains floating point values and no FloatPolicy was given.
	ErrFloatEquality errorkit.Error = "ErrFloatEquality"
	// ErrSumType is returned for interface types that have no registered equality.
	ErrSumType errorkit.Error = "ErrSumType"
	// ErrOpaqueType is returned for functions, channels, maps and unsafe pointers that have no registered equality.
	ErrOpaqueType errorkit.Error = "ErrOpaqueType"
)

type Option = option.Option[Config]

type Config struct {
	// FloatPolicy enables equality on floating point and complex values.
	FloatPolicy *FloatPolicy

	equal   map[reflect.Type]func(a, b reflect.Value) bool
	partial map[reflect.Type]func(a, b reflect.Value) tristate.Bool
}

// WithEqual registers the equality of X.
// Registered functions take precedence over every structural rule,
// including the Equal method of X.
func WithEqual[X any](eq func(x, y X) bool) Option {
	return option.Func[Config](func(c *Config) {
		if c.equal == nil {
			c.equal = make(map[reflect.Type]func(a, b reflect.Value) bool)
		}
		c.equal[reflectkit.TypeOf[X]()] = func(a, b reflect.Value) bool {
			return eq(valueOf[X](a), valueOf[X](b))
		}
	})
}

// WithPartialEqual registers the tri-state equality of X.
func WithPartialEqual[X any](eq func(x, y X) tristate.Bool) Option {
	return option.Func[Config](func(c *Config) {
		if c.partial == nil {
			c.partial = make(map[reflect.Type]func(a, b reflect.Value) tristate.Bool)
		}
		c.partial[reflectkit.TypeOf[X]()] = func(a, b reflect.Value) tristate.Bool {
			return eq(valueOf[X](a), valueOf[X](b))
		}
	})
}

// WithFloatPolicy enables floating point fields, compared under policy.
func WithFloatPolicy(policy FloatPolicy) Option {
	return option.Func[Config](func(c *Config) {
		c.FloatPolicy = &policy
	})
}

func valueOf[X any](rv reflect.Value) X {
	v, _ := reflectkit.Accessible(rv).Interface().(X)
	return v
}
