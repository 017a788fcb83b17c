package collection

// Find returns the first element for which predicate is true.
func Find[T any](array []T, predicate func(value T, index int) bool) (found T, ok bool) {
	for i, v := range array {
		if predicate(v, i) {
			return v, true
		}
	}
	return found, false
}

// FindLast is like Find but searches from right to left.
func FindLast[T any](array []T, predicate func(value T, index int) bool) (found T, ok bool) {
	ForEachRight(array, func(v T, i int) bool {
		if predicate(v, i) {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

// FindKey returns the first own key of obj whose value satisfies predicate.
func FindKey(obj any, predicate func(value any, key string) bool) (found string, ok bool) {
	ForOwn(obj, func(v any, k string) bool {
		if predicate(v, k) {
			found, ok = k, true
			return false
		}
		return true
	})
	return found, ok
}

// FindLastKey is like FindKey but searches from the last key.
func FindLastKey(obj any, predicate func(value any, key string) bool) (found string, ok bool) {
	ForOwnRight(obj, func(v any, k string) bool {
		if predicate(v, k) {
			found, ok = k, true
			return false
		}
		return true
	})
	return found, ok
}
