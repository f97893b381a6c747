// Package capkit binds capability records to the types that consume them.
//
// A capability record is a named bundle of operations and values supplied by a consuming type.
// Each behavior family (equivalence, ordering, cursors) reads the fields it needs through a Binder,
// which checks that every required field is present and that every field has the exact expected shape.
// Binding happens once, when a family value is constructed; derived operations never re-check it.
//
//	b := capkit.Bind(rec)
//	current := capkit.Require[func(Self) (Item, bool)](b, "current")
//	sample := capkit.Default[[]Self](b, "sample", nil)
//	if err := b.Finish(); err != nil {
//		return err
//	}
package capkit

import (
	"context"
	"reflect"

	"go.llib.dev/capkit/pkg/errorkit"
	"go.llib.dev/capkit/pkg/logging"
	"go.llib.dev/capkit/pkg/reflectkit"
	"go.llib.dev/capkit/pkg/zerokit"
)

const (
	ErrMissingCapability errorkit.Error = "ErrMissingCapability"
	ErrCapabilityShape   errorkit.Error = "ErrCapabilityShape"
)

// Record is a capability record.
type Record struct {
	// Consumer is the name of the consuming type, used in diagnostics.
	Consumer string
	// Name is the name of the record, usually the behavior family it is bound to.
	Name string
	// Fields maps a capability name to a value or a function.
	Fields map[string]any
}

// RecordOf creates a Record for the consuming type T.
func RecordOf[T any](name string, fields map[string]any) Record {
	return Record{
		Consumer: reflectkit.SymbolicName[T](),
		Name:     name,
		Fields:   fields,
	}
}

// With returns a copy of the record with an additional field.
func (rec Record) With(name string, value any) Record {
	fields := make(map[string]any, len(rec.Fields)+1)
	for k, v := range rec.Fields {
		fields[k] = v
	}
	fields[name] = value
	rec.Fields = fields
	return rec
}

func (rec Record) lookup(name string) (any, bool) {
	if rec.Fields == nil {
		return nil, false
	}
	v, ok := rec.Fields[name]
	return v, ok
}

// Binder collects the fields of a record and the diagnostics of a single binding.
type Binder struct {
	ctx  context.Context
	rec  Record
	errs []error
	used map[string]struct{}
}

// Bind starts binding rec.
func Bind(rec Record) *Binder {
	b := &Binder{rec: rec, used: make(map[string]struct{})}
	b.ctx = logging.ContextWith(context.Background(),
		logging.Field("consumer", b.consumer()),
		logging.Field("record", b.recordName()))
	return b
}

// Record returns the record being bound.
func (b *Binder) Record() Record { return b.rec }

// Require returns the field called name.
// When the field is absent or its type is not F, the binding fails and the zero F is returned.
func Require[F any](b *Binder, name string) F {
	v, ok := b.rec.lookup(name)
	if !ok {
		b.fail(name, ErrMissingCapability.F("%s does not supply %q in its %s record",
			b.consumer(), name, b.recordName()))
		var zero F
		return zero
	}
	return shape[F](b, name, v)
}

// Default returns the field called name, or fallback when it is absent.
// A present field must still have the exact expected shape.
func Default[F any](b *Binder, name string, fallback F) F {
	v, ok := b.rec.lookup(name)
	if !ok {
		return fallback
	}
	return shape[F](b, name, v)
}

// Has reports whether the record supplies the field.
func (b *Binder) Has(name string) bool {
	_, ok := b.rec.lookup(name)
	return ok
}

func shape[F any](b *Binder, name string, v any) F {
	b.used[name] = struct{}{}
	if f, ok := v.(F); ok {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func && reflectkit.IsNil(rv) {
			b.fail(name, ErrMissingCapability.F("%s supplies a nil function as %q in its %s record",
				b.consumer(), name, b.recordName()))
		}
		return f
	}
	var (
		zero     F
		expected = reflectkit.TypeOf[F]()
		actual   = reflect.TypeOf(v)
	)
	b.fail(name, ErrCapabilityShape.F("%s supplies %q in its %s record as %s, expected %s",
		b.consumer(), name, b.recordName(), reflectkit.TypeName(actual), reflectkit.TypeName(expected)))
	return zero
}

// Finish ends the binding.
// It returns every diagnostic collected while the fields were read, merged into a single error.
func (b *Binder) Finish() error {
	if len(b.errs) == 0 {
		logging.Debug(b.ctx, "capability record bound", logging.Field("fields", len(b.used)))
		return nil
	}
	return errorkit.Merge(b.errs...)
}

func (b *Binder) fail(name string, err error) {
	b.errs = append(b.errs, err)
	logging.Warn(b.ctx, "capability record rejected",
		logging.Field("field", name),
		logging.ErrField(err))
}

func (b *Binder) consumer() string {
	return zerokit.Coalesce(b.rec.Consumer, "<anonymous consumer>")
}

func (b *Binder) recordName() string {
	return zerokit.Coalesce(b.rec.Name, "capability")
}
