package memoize

import "fmt"

// Func1 memoizes a pure one-argument function in a trie of maxSize entries
// per generation.
//
// Unlike Memoize, the typed memoizers key on every argument, compared with
// == or, for fmt.Stringer arguments, by their String() form. Arguments that
// are neither comparable nor Stringers panic. At most two generations of
// maxSize stores are kept, older entries are dropped rather than evicted
// one by one. There is no resolver, receiver, TTL or exposed cache.
func Func1[I1 KeyArg, O any](fn func(I1) O, maxSize uint32) func(I1) O {
	memoized := memoizeTuple(func(args ...KeyArg) O {
		return fn(args[0].(I1))
	}, maxSize)
	return func(i1 I1) O {
		return memoized(i1)
	}
}

// Func2 is Func1 for two arguments, keyed on the pair.
func Func2[I1, I2 KeyArg, O any](fn func(I1, I2) O, maxSize uint32) func(I1, I2) O {
	memoized := memoizeTuple(func(args ...KeyArg) O {
		return fn(args[0].(I1), args[1].(I2))
	}, maxSize)
	return func(i1 I1, i2 I2) O {
		return memoized(i1, i2)
	}
}

// Func3 is Func1 for three arguments.
func Func3[I1, I2, I3 KeyArg, O any](fn func(I1, I2, I3) O, maxSize uint32) func(I1, I2, I3) O {
	memoized := memoizeTuple(func(args ...KeyArg) O {
		return fn(args[0].(I1), args[1].(I2), args[2].(I3))
	}, maxSize)
	return func(i1 I1, i2 I2, i3 I3) O {
		return memoized(i1, i2, i3)
	}
}

// Func1E is Func1 for functions that can fail. Errors are returned to the
// caller and never cached.
func Func1E[I1 KeyArg, O any](fn func(I1) (O, error), maxSize uint32) func(I1) (O, error) {
	memoized := memoizeTupleE(func(args ...KeyArg) (O, error) {
		return fn(args[0].(I1))
	}, maxSize)
	return func(i1 I1) (O, error) {
		return memoized(i1)
	}
}

// Func2E is Func2 for functions that can fail.
func Func2E[I1, I2 KeyArg, O any](fn func(I1, I2) (O, error), maxSize uint32) func(I1, I2) (O, error) {
	memoized := memoizeTupleE(func(args ...KeyArg) (O, error) {
		return fn(args[0].(I1), args[1].(I2))
	}, maxSize)
	return func(i1 I1, i2 I2) (O, error) {
		return memoized(i1, i2)
	}
}

func tupleKeys(args []KeyArg) []TrieKey {
	keys := make([]TrieKey, len(args))
	for i, arg := range args {
		if stringer, ok := arg.(fmt.Stringer); ok {
			keys[i] = stringer.String()
			continue
		}
		keys[i] = arg
	}
	return keys
}

func memoizeTuple[O any](fn func(...KeyArg) O, maxSize uint32) func(...KeyArg) O {
	memo := NewTrie[O](maxSize)
	return func(args ...KeyArg) O {
		keys := tupleKeys(args)
		v, ok := memo.Load(keys)
		if !ok {
			v = fn(args...)
			memo.Store(keys, v)
		}
		return v
	}
}

func memoizeTupleE[O any](fn func(...KeyArg) (O, error), maxSize uint32) func(...KeyArg) (O, error) {
	memo := NewTrie[O](maxSize)
	return func(args ...KeyArg) (O, error) {
		keys := tupleKeys(args)
		if v, ok := memo.Load(keys); ok {
			return v, nil
		}
		v, err := fn(args...)
		if err != nil {
			return v, err
		}
		memo.Store(keys, v)
		return v, nil
	}
}
