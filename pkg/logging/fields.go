package logging

import (
	"errors"
	"fmt"
	"reflect"

	"go.llib.dev/capkit/pkg/errorkit"
	"go.llib.dev/capkit/pkg/reflectkit"
)

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(l *Logger, e entry)
}

// Field creates a single key value pair based logging detail.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l *Logger, e entry) {
	e[l.formatKey(f.Key)] = l.toFieldValue(f.Value)
}

// Fields is a collection of field that you can add to your logging record.
type Fields map[string]any

func (fields Fields) addTo(l *Logger, e entry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

// ErrField adds the error's message under the "error" key.
// When the error chain holds an errorkit.Error, its value is reported as the error code.
func ErrField(err error) Detail {
	if err == nil {
		return nullDetail{}
	}
	details := Fields{"message": err.Error()}
	var code errorkit.Error
	if errors.As(err, &code) {
		details["code"] = string(code)
	}
	return Field("error", details)
}

func (l *Logger) toFieldValue(val any) any {
	if val == nil {
		return nil
	}
	switch v := val.(type) {
	case Fields:
		le := entry{}
		v.addTo(l, le)
		return map[string]any(le)
	case []Detail:
		le := entry{}
		for _, d := range v {
			d.addTo(l, le)
		}
		return map[string]any(le)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Pointer:
		if reflectkit.IsNil(rv) {
			return nil
		}
		return l.toFieldValue(rv.Elem().Interface())
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.Type().String()
	default:
		return val
	}
}

type entry map[string]any

type nullDetail struct{}

func (nullDetail) addTo(*Logger, entry) {}
