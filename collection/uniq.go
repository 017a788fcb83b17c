package collection

import (
	"slices"

	"github.com/on-the-ground/lowdash_go/utility"
)

// LargeArraySize is the length from which Uniq switches from a linear scan
// of seen values to a hash set.
const LargeArraySize = 75

// Uniq returns a duplicate-free copy of array keeping first occurrences.
// With isSorted, only adjacent duplicates are compared.
func Uniq[T comparable](array []T, isSorted bool) []T {
	return UniqBy(array, isSorted, func(v T, _ int) T { return utility.Identity(v) })
}

// UniqBy is like Uniq but compares the values computed by iteratee.
func UniqBy[T any, K comparable](array []T, isSorted bool, iteratee func(value T, index int) K) []T {
	result := make([]T, 0, len(array))
	if len(array) == 0 {
		return result
	}

	if isSorted {
		var last K
		for i, v := range array {
			computed := iteratee(v, i)
			if i == 0 || computed != last {
				result = append(result, v)
			}
			last = computed
		}
		return result
	}

	if len(array) >= LargeArraySize {
		seen := make(map[K]struct{}, len(array))
		for i, v := range array {
			computed := iteratee(v, i)
			if _, dup := seen[computed]; dup {
				continue
			}
			seen[computed] = struct{}{}
			result = append(result, v)
		}
		return result
	}

	seen := make([]K, 0, len(array))
	for i, v := range array {
		computed := iteratee(v, i)
		if slices.Contains(seen, computed) {
			continue
		}
		seen = append(seen, computed)
		result = append(result, v)
	}
	return result
}
