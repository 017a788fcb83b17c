package object

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"unicode/utf8"
)

// Keys returns the own enumerable property names of v.
//
// *Object keys come in insertion order, map keys sorted, struct fields in
// declaration order and sequences yield their indexes.
func Keys(v any) []string {
	if v == nil {
		return []string{}
	}
	if o, ok := v.(*Object); ok {
		return o.OwnKeys()
	}

	rv := reflect.ValueOf(v)
	if keys, ok := indexKeys(rv); ok {
		return keys
	}
	if rv.Kind() == reflect.Map {
		return mapKeys(rv)
	}
	sv := indirect(rv)
	if sv.Kind() != reflect.Struct {
		return []string{}
	}
	t := sv.Type()
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		if f := t.Field(i); f.IsExported() {
			keys = append(keys, f.Name)
		}
	}
	return keys
}

// KeysIn returns the own and inherited enumerable property names of v.
//
// For *Object the prototype chain contributes names not already seen. For
// structs the promoted fields of embedded structs are included.
func KeysIn(v any) []string {
	if v == nil {
		return []string{}
	}
	if o, ok := v.(*Object); ok {
		seen := make(map[string]struct{})
		keys := []string{}
		for cur := o; cur != nil; cur = cur.proto {
			for _, k := range cur.keys {
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
		return keys
	}

	rv := reflect.ValueOf(v)
	if keys, ok := indexKeys(rv); ok {
		return keys
	}
	if rv.Kind() == reflect.Map {
		return mapKeys(rv)
	}
	sv := indirect(rv)
	if sv.Kind() != reflect.Struct {
		return []string{}
	}
	keys := []string{}
	for _, f := range reflect.VisibleFields(sv.Type()) {
		if f.IsExported() {
			keys = append(keys, f.Name)
		}
	}
	return keys
}

func indexKeys(rv reflect.Value) ([]string, bool) {
	var n int
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		n = rv.Len()
	case reflect.String:
		n = utf8.RuneCountInString(rv.String())
	default:
		return nil, false
	}
	keys := make([]string, n)
	for i := range n {
		keys[i] = strconv.Itoa(i)
	}
	return keys, true
}

func mapKeys(rv reflect.Value) []string {
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, fmt.Sprint(k.Interface()))
	}
	slices.Sort(keys)
	return keys
}
