package helper

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrUnexpectedType = errors.New("unexpected type")

// ResultAs asserts the result of a call returning (any, error) to the expected type T.
// A nil result converts to the zero value only when T is nillable.
func ResultAs[T any](res any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if res == nil {
		if nillable(reflect.TypeFor[T]()) {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: <nil>, want %v", ErrUnexpectedType, reflect.TypeFor[T]())
	}
	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T, want %v", ErrUnexpectedType, res, reflect.TypeFor[T]())
	}
	return val, nil
}

// MustResultAs is the panic-on-failure variant of ResultAs.
func MustResultAs[T any](res any, err error) T {
	val, err := ResultAs[T](res, err)
	if err != nil {
		panic(err)
	}
	return val
}

// LookupAs narrows a comma-ok lookup to T. ok is false when the key was
// missing or the value has another type.
func LookupAs[T any](raw any, ok bool) (res T, _ bool) {
	if !ok {
		return
	}
	res, ok = raw.(T)
	return res, ok
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
