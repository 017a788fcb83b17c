// Package memoize caches the results of functions by their arguments.
//
// Memoize is the general form: it accepts any callable understood by the
// functions package, derives a cache key from the first argument or from a
// resolver, and exposes its cache so entries can be inspected, replaced or
// dropped. Memoized values are themselves callables, so they can be bound,
// curried or partially applied.
//
// Caches:
//   - the default cache is a set of mutex-guarded maps, the shard chosen
//     by an xxhash of the key;
//   - WithTTL gives every entry a validity window after which it is
//     recomputed;
//   - NewRistrettoCache provides a bounded cache with admission and
//     eviction handled by ristretto.
//
// Func1 to Func3 (and their error-returning variants) are typed memoizers
// for pure functions. They key on every argument through a bounded trie
// that keeps two generations of entries. Arguments must be comparable or
// implement fmt.Stringer.
//
// WARNING: only memoize functions whose result depends on nothing but
// their arguments.
package memoize
