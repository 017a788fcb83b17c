// Package chain wraps a value so that a sequence of operations reads left
// to right.
//
//	total := chain.Chain([]int{3, 1, 2}).
//		Thru(func(v []int) []int { slices.Sort(v); return v }).
//		Tap(func(v []int) { fmt.Println(v) }).
//		Value()
package chain

import "fmt"

// Wrapped holds a value between chained operations.
type Wrapped[T any] struct {
	value T
}

// Chain wraps value.
func Chain[T any](value T) *Wrapped[T] {
	return &Wrapped[T]{value: value}
}

// Tap calls interceptor with value and returns value. It is used to peek
// at intermediate results.
func Tap[T any](value T, interceptor func(T)) T {
	interceptor(value)
	return value
}

// Tap calls interceptor with the wrapped value and keeps the chain going.
func (w *Wrapped[T]) Tap(interceptor func(T)) *Wrapped[T] {
	Tap(w.value, interceptor)
	return w
}

// Thru replaces the wrapped value with the result of fn. The receiver is
// left untouched.
func (w *Wrapped[T]) Thru(fn func(T) T) *Wrapped[T] {
	return &Wrapped[T]{value: fn(w.value)}
}

// Value unwraps the chain.
func (w *Wrapped[T]) Value() T {
	return w.value
}

func (w *Wrapped[T]) String() string {
	return fmt.Sprint(w.value)
}
