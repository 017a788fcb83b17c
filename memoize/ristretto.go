package memoize

import (
	"time"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

var _ Cache = (*RistrettoCache)(nil)

// RistrettoCache is a bounded Cache. Entries may be evicted at any time
// once maxEntries is reached.
type RistrettoCache struct {
	cache *ristretto.Cache[string, any]
	ttl   time.Duration
}

// NewRistrettoCache creates a cache holding roughly maxEntries results.
// A positive ttl expires entries after that duration.
func NewRistrettoCache(maxEntries int64, ttl time.Duration) (*RistrettoCache, error) {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters:        maxEntries * 10, // keys tracked for admission frequency
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &RistrettoCache{cache: cache, ttl: max(0, ttl)}, nil
}

func (r *RistrettoCache) Load(key string) (any, bool) {
	return r.cache.Get(key)
}

// Store waits for the write to be applied so that a following Load sees it
// unless the admission policy rejected the entry.
func (r *RistrettoCache) Store(key string, value any) {
	if r.ttl > 0 {
		r.cache.SetWithTTL(key, value, 1, r.ttl)
	} else {
		r.cache.Set(key, value, 1)
	}
	r.cache.Wait()
}

func (r *RistrettoCache) Delete(key string) {
	r.cache.Del(key)
}

func (r *RistrettoCache) Close() {
	r.cache.Close()
}
