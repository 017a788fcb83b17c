package functions

import "github.com/on-the-ground/lowdash_go/shared/helper"

// Bind returns a wrapper that always invokes fn with receiver, prepending
// leading to the call-time arguments.
func Bind(fn any, receiver any, leading ...any) *Wrapper {
	flags := FlagBind
	if len(leading) > 0 {
		flags = flags.With(FlagPartial)
	}
	return CreateWrapper(Metadata{
		Target:   fn,
		Flags:    flags,
		Receiver: receiver,
		Leading:  leading,
	})
}

// BindKey returns a wrapper that invokes the method stored under key on obj.
// The method is looked up on every call, so reassigning it after wrapping
// is observed.
func BindKey(obj any, key string, leading ...any) *Wrapper {
	flags := FlagBind | FlagBindKey
	if len(leading) > 0 {
		flags = flags.With(FlagPartial)
	}
	return CreateWrapper(Metadata{
		Target:   key,
		Flags:    flags,
		Receiver: obj,
		Leading:  leading,
	})
}

// Curry returns a wrapper that collects arguments across calls until at
// least arity of them arrive in a single call. Without an explicit arity
// the target's length is used.
func Curry(fn any, arity ...int) *Wrapper {
	n := lengthOf(fn)
	if len(arity) > 0 {
		n = arity[0]
	}
	return CreateWrapper(Metadata{
		Target: fn,
		Flags:  FlagCurry,
		Arity:  n,
	})
}

// Partial returns a wrapper that prepends leading to the call-time arguments.
func Partial(fn any, leading ...any) *Wrapper {
	return CreateWrapper(Metadata{
		Target:  fn,
		Flags:   FlagPartial,
		Leading: leading,
	})
}

// PartialRight returns a wrapper that appends trailing to the call-time arguments.
func PartialRight(fn any, trailing ...any) *Wrapper {
	return CreateWrapper(Metadata{
		Target:   fn,
		Flags:    FlagPartialRight,
		Trailing: trailing,
	})
}

// CallAs calls c without a receiver and asserts the result to T.
func CallAs[T any](c Callable, args ...any) (T, error) {
	return helper.ResultAs[T](c.Call(nil, args...))
}
