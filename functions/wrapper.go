package functions

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/on-the-ground/lowdash_go/logging"
	"github.com/on-the-ground/lowdash_go/object"
	"go.uber.org/zap"
)

var (
	_ Constructor = (*Wrapper)(nil)
	_ Lengther    = (*Wrapper)(nil)
)

// Wrapper forwards to a target according to its Metadata.
// A Wrapper never changes after CreateWrapper returns it.
type Wrapper struct {
	id   string
	meta Metadata
}

// CreateWrapper builds a wrapper from meta. The wrapper keeps its own copy
// of the argument slices; the target is not validated until invocation.
func CreateWrapper(meta Metadata) *Wrapper {
	w := &Wrapper{
		id:   uuid.New().String(),
		meta: meta.normalized(),
	}
	logging.Logger().Debug("created wrapper",
		zap.String("wrapper_id", w.id),
		zap.Stringer("flags", w.meta.Flags),
		zap.Int("arity", w.meta.Arity),
	)
	return w
}

// ID identifies this wrapper instance in logs.
func (w *Wrapper) ID() string { return w.id }

func (w *Wrapper) Flags() Flags { return w.meta.Flags }

// Metadata returns a copy of the wrapper's metadata.
func (w *Wrapper) Metadata() Metadata {
	return w.meta.normalized()
}

// Length is the number of arguments the wrapper still expects: the arity
// for curried wrappers, otherwise the target's length minus the arguments
// already supplied.
func (w *Wrapper) Length() int {
	if w.meta.Flags.Has(FlagCurry) {
		return w.meta.Arity
	}
	if w.meta.Flags.Has(FlagBindKey) {
		return 0
	}
	return max(0, lengthOf(w.meta.Target)-len(w.meta.Leading)-len(w.meta.Trailing))
}

// Call invokes the wrapper as a plain call with the given call-site receiver.
// Under-supplied curried calls return a new *Wrapper instead of invoking
// the target.
func (w *Wrapper) Call(this any, args ...any) (any, error) {
	return w.invoke(this, args, false)
}

// Invoke is Call without a receiver.
func (w *Wrapper) Invoke(args ...any) (any, error) {
	return w.invoke(nil, args, false)
}

// Construct invokes the wrapper as a constructor.
func (w *Wrapper) Construct(args ...any) (any, error) {
	return w.invoke(nil, args, true)
}

func (w *Wrapper) invoke(this any, callArgs []any, asConstructor bool) (any, error) {
	if w == nil {
		return nil, &InvocationError{Target: w, Err: ErrNotCallable}
	}
	meta := w.meta

	receiver := this
	if meta.Flags.Has(FlagBind) {
		receiver = meta.Receiver
	}

	args := callArgs
	if meta.Leading != nil || meta.Trailing != nil || meta.Flags.Has(FlagCurry) {
		args = combineArgs(meta.Leading, callArgs, meta.Trailing)
		if meta.Flags.Has(FlagCurry) && len(callArgs) < meta.Arity {
			next := CreateWrapper(meta.curried(len(callArgs), args))
			logging.Logger().Debug("curried wrapper under-supplied",
				zap.String("wrapper_id", w.id),
				zap.String("next_wrapper_id", next.id),
				zap.Int("supplied", len(callArgs)),
				zap.Int("remaining", next.meta.Arity),
			)
			return next, nil
		}
	}

	target := meta.Target
	if meta.Flags.Has(FlagBindKey) {
		key := fmt.Sprint(meta.Target)
		method, ok := object.Property(receiver, key)
		if !ok {
			return nil, &InvocationError{
				Target: key,
				Err:    fmt.Errorf("%w: no property %q on %T", ErrNotCallable, key, receiver),
			}
		}
		target = method
	}

	if asConstructor {
		return construct(target, args)
	}
	fn, err := resolveCallable(target)
	if err != nil {
		return nil, err
	}
	return fn.Call(receiver, args...)
}

// construct applies constructor semantics to target: a fresh object
// inheriting from the target's prototype is the receiver, and it is the
// result unless the target returns an object itself. Constructor targets
// construct on their own.
func construct(target any, args []any) (any, error) {
	if c, ok := target.(Constructor); ok {
		return c.Construct(args...)
	}
	fn, err := resolveCallable(target)
	if err != nil {
		return nil, err
	}
	instance := object.Create(prototypeOf(target))
	res, err := fn.Call(instance, args...)
	if err != nil {
		return res, err
	}
	if isObject(res) {
		return res, nil
	}
	return instance, nil
}
