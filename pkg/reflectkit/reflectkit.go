// Package reflectkit contains the reflection helpers used when a capability is derived from a type's shape.
package reflectkit

import (
	"reflect"
)

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// SymbolicName returns the name of T the way it reads in source code.
func SymbolicName[T any]() string {
	return TypeName(TypeOf[T]())
}

// TypeName returns a readable name for typ.
func TypeName(typ reflect.Type) string {
	if typ == nil {
		return "<nil>"
	}
	return typ.String()
}

// IsNil reports whether the value is nil, without panicking on kinds that can't be nil.
func IsNil(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	default:
		return false
	}
}

// IsZeroSize reports whether values of typ carry no data, like struct{} or [0]int.
func IsZeroSize(typ reflect.Type) bool {
	return typ != nil && typ.Size() == 0
}
