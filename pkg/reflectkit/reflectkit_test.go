package reflectkit_test

import (
	"reflect"
	"testing"

	"go.llib.dev/capkit/pkg/reflectkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

type hidden struct {
	name  string
	count int
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, reflect.TypeOf(0), reflectkit.TypeOf[int]())
	assert.Equal(t, reflect.Interface, reflectkit.TypeOf[error]().Kind())
	assert.Equal(t, "*reflectkit_test.hidden", reflectkit.SymbolicName[*hidden]())
}

func TestIsNil(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("nil values", func(t *testcase.T) {
		t.Must.True(reflectkit.IsNil(reflect.Value{}))
		t.Must.True(reflectkit.IsNil(reflect.ValueOf((*int)(nil))))
		t.Must.True(reflectkit.IsNil(reflect.ValueOf([]int(nil))))
	})

	s.Test("non-nil values", func(t *testcase.T) {
		t.Must.False(reflectkit.IsNil(reflect.ValueOf(t.Random.Int())))
		t.Must.False(reflectkit.IsNil(reflect.ValueOf(&hidden{})))
	})
}

func TestTryToMakeAccessible(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("unexported fields of an addressable struct become readable", func(t *testcase.T) {
		exp := hidden{name: t.Random.String(), count: t.Random.Int()}
		rv := reflectkit.Addressable(reflect.ValueOf(exp))

		name, ok := reflectkit.TryToMakeAccessible(rv.Field(0))
		t.Must.True(ok)
		t.Must.Equal(exp.name, name.Interface().(string))

		count := reflectkit.Accessible(rv.Field(1))
		t.Must.Equal(exp.count, count.Interface().(int))
	})

	s.Test("invalid value", func(t *testcase.T) {
		_, ok := reflectkit.TryToMakeAccessible(reflect.Value{})
		t.Must.False(ok)
	})
}

func TestIsZeroSize(t *testing.T) {
	assert.True(t, reflectkit.IsZeroSize(reflectkit.TypeOf[struct{}]()))
	assert.True(t, reflectkit.IsZeroSize(reflectkit.TypeOf[[0]int]()))
	assert.False(t, reflectkit.IsZeroSize(reflectkit.TypeOf[int]()))
}
