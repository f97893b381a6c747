package capkit

import (
	"reflect"
	"unicode"
	"unicode/utf8"

	"go.llib.dev/capkit/pkg/reflectkit"
)

// Methods builds a record from the exported method set of v.
// Each method value is stored under its name with a lower case first letter,
// so Equal becomes "equal" and Current becomes "current".
//
// Methods bound this way carry their receiver, a method like `func (v Vec) Equal(o Vec) bool`
// ends up as a `func(Vec) bool` field.
// Use MethodExpressions when the record needs the receiver as the first argument.
func Methods(name string, v any) Record {
	rv := reflect.ValueOf(v)
	rec := Record{Name: name, Fields: map[string]any{}}
	if !rv.IsValid() {
		return rec
	}
	rec.Consumer = reflectkit.TypeName(rv.Type())
	for i, n := 0, rv.NumMethod(); i < n; i++ {
		m := rv.Type().Method(i)
		rec.Fields[lowerFirst(m.Name)] = rv.Method(i).Interface()
	}
	return rec
}

// MethodExpressions builds a record from the exported methods of T,
// keeping the receiver as the first argument.
// A method `func (v Vec) Equal(o Vec) bool` becomes a `func(Vec, Vec) bool` field under "equal".
func MethodExpressions[T any](name string) Record {
	typ := reflectkit.TypeOf[T]()
	rec := Record{Consumer: reflectkit.TypeName(typ), Name: name, Fields: map[string]any{}}
	if typ.Kind() == reflect.Interface {
		return rec
	}
	for i, n := 0, typ.NumMethod(); i < n; i++ {
		m := typ.Method(i)
		rec.Fields[lowerFirst(m.Name)] = m.Func.Interface()
	}
	return rec
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
