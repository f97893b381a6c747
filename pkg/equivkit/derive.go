package equivkit

import (
	"context"
	"math"
	"reflect"

	"go.llib.dev/capkit/pkg/logging"
	"go.llib.dev/capkit/pkg/reflectkit"
	"go.llib.dev/capkit/pkg/synckit"
	"go.llib.dev/capkit/pkg/tristate"
	"go.llib.dev/capkit/port/option"
)

// Derive compiles the structural equality of T.
//
// Scalars compare with ==, structs and arrays compare field by field,
// pointers compare their pointees, and slices compare length then elements.
// A type with an `Equal(T) bool` method is compared with it,
// and a function registered with WithEqual wins over everything else.
func Derive[T any](opts ...Option) (func(x, y T) bool, error) {
	eq, err := compilePlan(reflectkit.TypeOf[T](), false, opts)
	if err != nil {
		return nil, err
	}
	return func(x, y T) bool {
		return eq(&visits{}, reflect.ValueOf(&x).Elem(), reflect.ValueOf(&y).Elem()) == tristate.True
	}, nil
}

// DerivePartial compiles the tri-state structural equality of T.
//
// Nil pointers are absence markers and compare as Incomparable,
// slices of different length are Incomparable,
// and composite values combine their parts with tristate.All.
// A type with an `EqualPartial(T) tristate.Bool` method is compared with it.
func DerivePartial[T any](opts ...Option) (func(x, y T) tristate.Bool, error) {
	eq, err := compilePlan(reflectkit.TypeOf[T](), true, opts)
	if err != nil {
		return nil, err
	}
	return func(x, y T) tristate.Bool {
		return eq(&visits{}, reflect.ValueOf(&x).Elem(), reflect.ValueOf(&y).Elem())
	}, nil
}

type planKey struct {
	typ     reflect.Type
	partial bool
}

type plan struct {
	eq  node
	err error
}

var plans synckit.Map[planKey, plan]

func compilePlan(typ reflect.Type, partial bool, opts []Option) (node, error) {
	build := func() plan {
		c := &compiler{
			config:  option.ToConfig(opts),
			partial: partial,
			nodes:   make(map[reflect.Type]*node),
		}
		eq, err := c.compile(typ, reflectkit.TypeName(typ))
		return plan{eq: eq, err: err}
	}
	var p plan
	if len(opts) == 0 {
		p = plans.GetOrInit(planKey{typ: typ, partial: partial}, build)
	} else {
		p = build()
	}
	if p.err != nil {
		logging.Warn(context.Background(), "equality derivation rejected",
			logging.Field("type", reflectkit.TypeName(typ)),
			logging.Field("partial", partial),
			logging.ErrField(p.err))
		return nil, p.err
	}
	return p.eq, nil
}

type node func(vs *visits, a, b reflect.Value) tristate.Bool

// visits cuts cycles in pointer and slice graphs.
//
// A pair is compared on its first visit only.
// Every comparison folds into the same conjunction,
// so a revisited pair answers True, the neutral element, and the first visit decides its share.
type visits struct {
	seen map[visit]struct{}
}

type visit struct {
	typ  reflect.Type
	a, b uintptr
	n    int
}

func (vs *visits) enter(typ reflect.Type, a, b reflect.Value) bool {
	key := visit{typ: typ, a: a.Pointer(), b: b.Pointer()}
	if typ.Kind() == reflect.Slice {
		key.n = a.Len()
	}
	if vs.seen == nil {
		vs.seen = make(map[visit]struct{})
	}
	if _, ok := vs.seen[key]; ok {
		return false
	}
	vs.seen[key] = struct{}{}
	return true
}

type compiler struct {
	config  Config
	partial bool
	nodes   map[reflect.Type]*node
}

func (c *compiler) compile(typ reflect.Type, path string) (node, error) {
	if ref, ok := c.nodes[typ]; ok {
		// recursive type, resolved once the outer compilation finishes
		return func(vs *visits, a, b reflect.Value) tristate.Bool { return (*ref)(vs, a, b) }, nil
	}
	var ref node
	c.nodes[typ] = &ref
	eq, err := c.build(typ, path)
	if err != nil {
		delete(c.nodes, typ)
		return nil, err
	}
	ref = eq
	return eq, nil
}

func (c *compiler) build(typ reflect.Type, path string) (node, error) {
	if eq, ok := c.registered(typ); ok {
		return eq, nil
	}
	if typ.Kind() != reflect.Interface {
		if eq, ok := c.method(typ); ok {
			return eq, nil
		}
	}
	if reflectkit.IsZeroSize(typ) && (typ.Kind() == reflect.Struct || typ.Kind() == reflect.Array) {
		return func(*visits, reflect.Value, reflect.Value) tristate.Bool { return tristate.True }, nil
	}
	switch typ.Kind() {
	case reflect.Bool:
		return scalar(func(a, b reflect.Value) bool { return a.Bool() == b.Bool() }), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalar(func(a, b reflect.Value) bool { return a.Int() == b.Int() }), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return scalar(func(a, b reflect.Value) bool { return a.Uint() == b.Uint() }), nil

	case reflect.String:
		return scalar(func(a, b reflect.Value) bool { return a.String() == b.String() }), nil

	case reflect.Float32, reflect.Float64:
		if c.config.FloatPolicy == nil {
			return nil, ErrFloatEquality.F("%s is a floating point value with no float policy", path)
		}
		policy := *c.config.FloatPolicy
		return func(_ *visits, a, b reflect.Value) tristate.Bool {
			return c.floats(policy, a.Float(), b.Float())
		}, nil

	case reflect.Complex64, reflect.Complex128:
		if c.config.FloatPolicy == nil {
			return nil, ErrFloatEquality.F("%s is a complex value with no float policy", path)
		}
		policy := *c.config.FloatPolicy
		return func(_ *visits, a, b reflect.Value) tristate.Bool {
			x, y := a.Complex(), b.Complex()
			return tristate.All(
				c.floats(policy, real(x), real(y)),
				c.floats(policy, imag(x), imag(y)))
		}, nil

	case reflect.Struct:
		return c.structure(typ, path)

	case reflect.Array:
		elem, err := c.compile(typ.Elem(), path+"[]")
		if err != nil {
			return nil, err
		}
		length := typ.Len()
		return func(vs *visits, a, b reflect.Value) tristate.Bool {
			var acc tristate.Accumulator
			for i := 0; i < length; i++ {
				if !acc.Add(elem(vs, a.Index(i), b.Index(i))) {
					break
				}
			}
			return acc.Result()
		}, nil

	case reflect.Pointer:
		elem, err := c.compile(typ.Elem(), "*"+path)
		if err != nil {
			return nil, err
		}
		return func(vs *visits, a, b reflect.Value) tristate.Bool {
			if a.IsNil() || b.IsNil() {
				return c.absent(a.IsNil() && b.IsNil())
			}
			if !vs.enter(typ, a, b) {
				return tristate.True
			}
			return elem(vs, a.Elem(), b.Elem())
		}, nil

	case reflect.Slice:
		elem, err := c.compile(typ.Elem(), path+"[]")
		if err != nil {
			return nil, err
		}
		return func(vs *visits, a, b reflect.Value) tristate.Bool {
			if a.Len() != b.Len() {
				if c.partial {
					return tristate.Incomparable
				}
				return tristate.False
			}
			if a.Len() == 0 || !vs.enter(typ, a, b) {
				return tristate.True
			}
			var acc tristate.Accumulator
			for i, n := 0, a.Len(); i < n; i++ {
				if !acc.Add(elem(vs, a.Index(i), b.Index(i))) {
					break
				}
			}
			return acc.Result()
		}, nil

	case reflect.Interface:
		return nil, ErrSumType.F("%s is an interface type (%s) with no registered equality",
			path, reflectkit.TypeName(typ))

	case reflect.Map:
		return nil, ErrOpaqueType.F("%s is a map (%s) with no registered equality",
			path, reflectkit.TypeName(typ))

	default:
		return nil, ErrOpaqueType.F("%s is an opaque %s (%s) with no registered equality",
			path, typ.Kind(), reflectkit.TypeName(typ))
	}
}

func (c *compiler) structure(typ reflect.Type, path string) (node, error) {
	type field struct {
		index int
		eq    node
	}
	var fields []field
	for i, n := 0, typ.NumField(); i < n; i++ {
		sf := typ.Field(i)
		if sf.Name == "_" {
			continue
		}
		eq, err := c.compile(sf.Type, path+"."+sf.Name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field{index: i, eq: eq})
	}
	return func(vs *visits, a, b reflect.Value) tristate.Bool {
		var acc tristate.Accumulator
		for _, f := range fields {
			if !acc.Add(f.eq(vs, a.Field(f.index), b.Field(f.index))) {
				break
			}
		}
		return acc.Result()
	}, nil
}

func (c *compiler) registered(typ reflect.Type) (node, bool) {
	eq, hasEq := c.config.equal[typ]
	peq, hasPartial := c.config.partial[typ]
	switch {
	case c.partial && hasPartial, !hasEq && hasPartial:
		partial := c.partial
		return func(_ *visits, a, b reflect.Value) tristate.Bool {
			if r := peq(a, b); partial || r != tristate.Incomparable {
				return r
			}
			return tristate.False
		}, true
	case hasEq:
		return scalar(eq), true
	default:
		return nil, false
	}
}

var (
	boolType     = reflectkit.TypeOf[bool]()
	tristateType = reflectkit.TypeOf[tristate.Bool]()
)

func (c *compiler) method(typ reflect.Type) (node, bool) {
	if c.partial {
		if eq, ok := c.methodNode(typ, "EqualPartial", tristateType, func(out reflect.Value) tristate.Bool {
			return tristate.Bool(out.Int())
		}); ok {
			return eq, true
		}
	}
	return c.methodNode(typ, "Equal", boolType, func(out reflect.Value) tristate.Bool {
		return tristate.Of(out.Bool())
	})
}

// methodNode looks for `func (T) name(T) out` on T and on *T.
func (c *compiler) methodNode(typ reflect.Type, name string, out reflect.Type, conv func(reflect.Value) tristate.Bool) (node, bool) {
	for _, recv := range []reflect.Type{typ, reflect.PointerTo(typ)} {
		m, ok := recv.MethodByName(name)
		if !ok {
			continue
		}
		mt := m.Type
		if mt.NumIn() != 2 || mt.In(1) != typ || mt.NumOut() != 1 || mt.Out(0) != out {
			continue
		}
		var (
			fn    = m.Func
			byPtr = recv != typ
		)
		return func(_ *visits, a, b reflect.Value) tristate.Bool {
			if aNil, bNil := reflectkit.IsNil(a), reflectkit.IsNil(b); aNil || bNil {
				return c.absent(aNil && bNil)
			}
			a, b = reflectkit.Accessible(a), reflectkit.Accessible(b)
			if byPtr {
				a = reflectkit.Addressable(a).Addr()
			}
			return conv(fn.Call([]reflect.Value{a, b})[0])
		}, true
	}
	return nil, false
}

// absent compares absence markers, nil pointers in practice.
func (c *compiler) absent(bothAbsent bool) tristate.Bool {
	if c.partial {
		return tristate.Incomparable
	}
	return tristate.Of(bothAbsent)
}

func (c *compiler) floats(policy FloatPolicy, x, y float64) tristate.Bool {
	if c.partial && !policy.NaNEqual && (math.IsNaN(x) || math.IsNaN(y)) {
		return tristate.Incomparable
	}
	return tristate.Of(FloatsEqual(policy, x, y))
}

func scalar(eq func(a, b reflect.Value) bool) node {
	return func(_ *visits, a, b reflect.Value) tristate.Bool {
		return tristate.Of(eq(a, b))
	}
}
