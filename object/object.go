// Package object provides dynamic objects with prototype chains and
// property access over arbitrary Go values.
//
// An *Object keeps its own properties in insertion order and may inherit
// from a prototype object. The free functions Property, SetProperty, Keys
// and KeysIn accept *Object as well as maps, structs and sequences so that
// the rest of the library can treat any of them as a receiver.
//
// Objects are not safe for concurrent mutation.
package object

import (
	"fmt"
	"slices"
	"strings"
)

type Object struct {
	keys  []string
	props map[string]any
	proto *Object
}

// New creates an empty object with no prototype.
func New() *Object {
	return Create(nil)
}

// Create creates an empty object that inherits from proto.
func Create(proto *Object) *Object {
	return &Object{
		props: make(map[string]any),
		proto: proto,
	}
}

// FromMap creates a prototype-less object holding the entries of m,
// inserted in sorted key order.
func FromMap(m map[string]any) *Object {
	o := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		o.Set(k, m[k])
	}
	return o
}

// Proto returns the prototype of o, or nil.
func (o *Object) Proto() *Object {
	if o == nil {
		return nil
	}
	return o.proto
}

// Set stores an own property and returns o for chaining. The zero Object
// is ready to use.
func (o *Object) Set(key string, value any) *Object {
	if o.props == nil {
		o.props = make(map[string]any)
	}
	if _, ok := o.props[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.props[key] = value
	return o
}

// GetOwn looks up an own property without consulting the prototype chain.
func (o *Object) GetOwn(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.props[key]
	return v, ok
}

// Get looks up key on o and then along its prototype chain.
func (o *Object) Get(key string) (any, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if v, ok := cur.props[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func (o *Object) HasOwn(key string) bool {
	_, ok := o.GetOwn(key)
	return ok
}

func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes an own property. Inherited properties are untouched.
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	if _, ok := o.props[key]; !ok {
		return false
	}
	delete(o.props, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
	return true
}

// OwnKeys returns own property names in insertion order.
func (o *Object) OwnKeys() []string {
	if o == nil {
		return []string{}
	}
	return slices.Clone(o.keys)
}

// Len returns the number of own properties.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// InheritsFrom reports whether proto is somewhere on the prototype chain of o.
func (o *Object) InheritsFrom(proto *Object) bool {
	if proto == nil {
		return false
	}
	for cur := o.Proto(); cur != nil; cur = cur.proto {
		if cur == proto {
			return true
		}
	}
	return false
}

func (o *Object) String() string {
	if o == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", k, o.props[k])
	}
	sb.WriteByte('}')
	return sb.String()
}
