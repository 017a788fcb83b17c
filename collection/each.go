// Package collection iterates and searches slices and objects.
//
// Iteratees return false to stop iteration early.
package collection

import "github.com/on-the-ground/lowdash_go/object"

// ForEach calls fn for each element from left to right and returns array.
func ForEach[T any](array []T, fn func(value T, index int) bool) []T {
	for i, v := range array {
		if !fn(v, i) {
			break
		}
	}
	return array
}

// ForEachRight is like ForEach but iterates from right to left.
func ForEachRight[T any](array []T, fn func(value T, index int) bool) []T {
	for i := len(array) - 1; i >= 0; i-- {
		if !fn(array[i], i) {
			break
		}
	}
	return array
}

// ForOwn calls fn for each own property of obj in object.Keys order.
func ForOwn(obj any, fn func(value any, key string) bool) any {
	for _, k := range object.Keys(obj) {
		v, _ := object.Index(obj, k)
		if !fn(v, k) {
			break
		}
	}
	return obj
}

// ForOwnRight is like ForOwn but iterates the keys in reverse.
func ForOwnRight(obj any, fn func(value any, key string) bool) any {
	keys := object.Keys(obj)
	for i := len(keys) - 1; i >= 0; i-- {
		v, _ := object.Index(obj, keys[i])
		if !fn(v, keys[i]) {
			break
		}
	}
	return obj
}
