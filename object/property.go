package object

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

var (
	ErrUnsupportedTarget = errors.New("value does not support properties")
	ErrNoProperty        = errors.New("no such property")
)

// Property reads key from v.
//
// Lookup order:
//   - *Object: own properties, then the prototype chain.
//   - maps with string keys: the entry for key.
//   - structs (or pointers to structs): the exported field named key.
//   - any value: the method named key, bound to v.
func Property(v any, key string) (any, bool) {
	if v == nil {
		return nil, false
	}
	if o, ok := v.(*Object); ok {
		return o.Get(key)
	}
	if m, ok := v.(map[string]any); ok {
		val, ok := m[key]
		return val, ok
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	}

	if sv := indirect(rv); sv.Kind() == reflect.Struct {
		if f, ok := sv.Type().FieldByName(key); ok && f.IsExported() {
			fv, err := sv.FieldByIndexErr(f.Index)
			if err == nil {
				return fv.Interface(), true
			}
		}
	}

	if m := rv.MethodByName(key); m.IsValid() {
		return m.Interface(), true
	}
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		if m := rv.Elem().MethodByName(key); m.IsValid() {
			return m.Interface(), true
		}
	}
	return nil, false
}

// SetProperty writes key on v. Structs must be passed by pointer.
func SetProperty(v any, key string, value any) error {
	if o, ok := v.(*Object); ok {
		if o == nil {
			return fmt.Errorf("%w: nil object", ErrUnsupportedTarget)
		}
		o.Set(key, value)
		return nil
	}
	if m, ok := v.(map[string]any); ok {
		if m == nil {
			return fmt.Errorf("%w: nil map", ErrUnsupportedTarget)
		}
		m[key] = value
		return nil
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		if rv.IsNil() {
			return fmt.Errorf("%w: nil map", ErrUnsupportedTarget)
		}
		val, err := assignable(value, rv.Type().Elem())
		if err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		rv.SetMapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()), val)
		return nil
	case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct:
		f, ok := rv.Elem().Type().FieldByName(key)
		if !ok || !f.IsExported() {
			return fmt.Errorf("%w: %q on %T", ErrNoProperty, key, v)
		}
		fv, err := rv.Elem().FieldByIndexErr(f.Index)
		if err != nil || !fv.CanSet() {
			return fmt.Errorf("%w: %q on %T is not settable", ErrNoProperty, key, v)
		}
		val, err := assignable(value, fv.Type())
		if err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		fv.Set(val)
		return nil
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedTarget, v)
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func assignable(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(value)
	switch {
	case rv.Type().AssignableTo(t):
		return rv, nil
	case rv.Type().ConvertibleTo(t):
		return rv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %v", value, t)
}

// Index is Property extended to the keys Keys reports: decimal indexes of
// slices, arrays and strings (by rune), and maps with non-string keys.
func Index(v any, key string) (any, bool) {
	if val, ok := Property(v, key); ok {
		return val, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.String:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 {
			return nil, false
		}
		for n, r := range []rune(rv.String()) {
			if n == i {
				return string(r), true
			}
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if fmt.Sprint(iter.Key().Interface()) == key {
				return iter.Value().Interface(), true
			}
		}
	}
	return nil, false
}
