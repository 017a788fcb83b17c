// Package functions composes Go callables: binding a receiver, currying,
// and pre-supplying leading or trailing arguments.
//
// # Wrappers
//
// Bind, BindKey, Curry, Partial and PartialRight all describe the requested
// composition as a Metadata value and hand it to CreateWrapper. The
// resulting *Wrapper is immutable. It has two entry points:
//
//   - Call(receiver, args...) invokes the target as a plain call.
//   - Construct(args...) invokes the target as a constructor: a fresh
//     object inheriting from the target's prototype becomes the receiver,
//     and it is returned unless the target returns an object of its own.
//
// # Currying
//
// A curried wrapper invoked with fewer call-time arguments than its arity
// does not call the target. It returns a new *Wrapper that has captured
// the arguments seen so far and expects the remainder:
//
//	add := functions.Curry(func(a, b, c int) int { return a + b + c })
//	step, _ := add.Call(nil, 1)
//	step, _ = step.(*functions.Wrapper).Call(nil, 2)
//	sum, _ := step.(*functions.Wrapper).Call(nil, 3) // 6
//
// Each under-supplied call yields a distinct wrapper, so partially applied
// chains never share accumulated arguments.
//
// # Targets
//
// A target can be a Func, a *Function (which carries a declared length and
// a prototype), any other Callable such as a *Wrapper, or a plain Go func
// invoked through reflection. Targets are not validated when wrapping;
// invoking a wrapper whose target is not callable returns an
// *InvocationError wrapping ErrNotCallable.
package functions
