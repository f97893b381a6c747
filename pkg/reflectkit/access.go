package reflectkit

import (
	"reflect"
	"unsafe"
)

// Accessible returns an interface-able version of rv.
// Unexported struct fields are made readable when their value is addressable.
func Accessible(rv reflect.Value) reflect.Value {
	if av, ok := TryToMakeAccessible(rv); ok {
		return av
	}
	return rv
}

func TryToMakeAccessible(rv reflect.Value) (reflect.Value, bool) {
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	if rv.CanInterface() {
		return rv, true
	}
	if rv.CanAddr() {
		uv := reflect.NewAt(rv.Type(), unsafe.Pointer(rv.UnsafeAddr())).Elem()
		if uv.CanInterface() {
			return uv, true
		}
	}
	switch {
	case rv.CanUint():
		return reflect.ValueOf(rv.Uint()).Convert(rv.Type()), true
	case rv.CanInt():
		return reflect.ValueOf(rv.Int()).Convert(rv.Type()), true
	case rv.CanFloat():
		return reflect.ValueOf(rv.Float()).Convert(rv.Type()), true
	case rv.CanComplex():
		return reflect.ValueOf(rv.Complex()).Convert(rv.Type()), true
	}
	switch rv.Kind() {
	case reflect.String:
		return reflect.ValueOf(rv.String()).Convert(rv.Type()), true
	case reflect.Bool:
		return reflect.ValueOf(rv.Bool()).Convert(rv.Type()), true
	}
	return rv, false
}

// Addressable returns an addressable copy of rv when rv itself is not addressable.
// Plans that walk unexported fields need addressable roots.
func Addressable(rv reflect.Value) reflect.Value {
	if !rv.IsValid() || rv.CanAddr() {
		return rv
	}
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	return ptr.Elem()
}
