package functions

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/lowdash_go/object"
)

// Callable is anything a wrapper can forward to.
type Callable interface {
	Call(this any, args ...any) (any, error)
}

// Constructor is a Callable with its own construction semantics.
type Constructor interface {
	Callable
	Construct(args ...any) (any, error)
}

// Lengther reports the declared parameter count of a callable.
// Curry uses it as the default arity.
type Lengther interface {
	Length() int
}

// Prototyper supplies the prototype of objects constructed from a callable.
type Prototyper interface {
	Prototype() *object.Object
}

// Func is the native callable signature. this is the receiver.
type Func func(this any, args ...any) (any, error)

func (f Func) Call(this any, args ...any) (any, error) {
	if f == nil {
		return nil, &InvocationError{Target: f, Err: ErrNotCallable}
	}
	return f(this, args...)
}

// Function is a named Func with a declared length and a prototype used
// when it is constructed.
type Function struct {
	name   string
	length int
	body   Func
	proto  *object.Object
}

// NewFunction creates a Function with an empty prototype object.
func NewFunction(name string, length int, body Func) *Function {
	return &Function{
		name:   name,
		length: max(0, length),
		body:   body,
		proto:  object.New(),
	}
}

func (f *Function) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

func (f *Function) Length() int {
	if f == nil {
		return 0
	}
	return f.length
}

func (f *Function) Prototype() *object.Object {
	if f == nil {
		return nil
	}
	return f.proto
}

func (f *Function) Call(this any, args ...any) (any, error) {
	if f == nil || f.body == nil {
		return nil, &InvocationError{Target: f, Err: ErrNotCallable}
	}
	return f.body(this, args...)
}

var errorType = reflect.TypeFor[error]()

// reflectFunc adapts an arbitrary Go func. The receiver is ignored.
// Missing arguments become zero values and surplus ones are dropped
// unless the func is variadic.
type reflectFunc struct {
	fn reflect.Value
}

func (f reflectFunc) Length() int {
	t := f.fn.Type()
	if t.IsVariadic() {
		return t.NumIn() - 1
	}
	return t.NumIn()
}

func (f reflectFunc) Call(_ any, args ...any) (any, error) {
	t := f.fn.Type()
	fixed := f.Length()
	n := fixed
	if t.IsVariadic() && len(args) > fixed {
		n = len(args)
	}

	in := make([]reflect.Value, n)
	for i := range n {
		pt := t.In(min(i, t.NumIn()-1))
		if i >= fixed {
			pt = pt.Elem()
		}
		var arg any
		if i < len(args) {
			arg = args[i]
		}
		v, err := convertArg(arg, pt)
		if err != nil {
			return nil, &InvocationError{
				Target: f.fn.Interface(),
				Err:    fmt.Errorf("%w: argument %d: %v", ErrArgumentType, i, err),
			}
		}
		in[i] = v
	}
	return splitResults(f.fn.Call(in))
}

func convertArg(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(arg)
	switch {
	case v.Type().AssignableTo(t):
		return v, nil
	case v.Type().ConvertibleTo(t) && (v.Kind() == t.Kind() || (isNumeric(v.Kind()) && isNumeric(t.Kind()))):
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %v", arg, t)
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

// splitResults maps Go results onto (any, error): a trailing error is
// split off, no values give nil, several values give []any.
func splitResults(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			err = out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	values := make([]any, len(out))
	for i, v := range out {
		values[i] = v.Interface()
	}
	return values, err
}

// resolveCallable turns target into a Callable or fails with
// ErrNotCallable.
func resolveCallable(target any) (Callable, error) {
	switch t := target.(type) {
	case nil:
	case Callable:
		return t, nil
	default:
		if rv := reflect.ValueOf(target); rv.Kind() == reflect.Func && !rv.IsNil() {
			return reflectFunc{fn: rv}, nil
		}
	}
	return nil, &InvocationError{Target: target, Err: ErrNotCallable}
}

// lengthOf is the default curry arity of target.
func lengthOf(target any) int {
	switch t := target.(type) {
	case nil:
		return 0
	case Lengther:
		return t.Length()
	}
	if c, err := resolveCallable(target); err == nil {
		if l, ok := c.(Lengther); ok {
			return l.Length()
		}
	}
	return 0
}

func prototypeOf(target any) *object.Object {
	if p, ok := target.(Prototyper); ok {
		return p.Prototype()
	}
	return nil
}

// isObject reports whether a constructor result replaces the constructed
// instance. Nil, booleans, numbers and strings do not.
func isObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
