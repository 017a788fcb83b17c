package memoize

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rickb777/date/v2/timespan"
)

// Cache stores memoized results by key. Implementations must be safe for
// concurrent use.
type Cache interface {
	Load(key string) (any, bool)
	Store(key string, value any)
	Delete(key string)
}

var _ Cache = (*ShardedCache)(nil)

// ShardedCache spreads keys over mutex-guarded maps.
type ShardedCache struct {
	shards []*shard
	ttl    time.Duration
	now    func() time.Time
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	value any
	valid timespan.TimeSpan // only consulted when the cache has a TTL
}

// NewShardedCache builds the default cache from cfg.
func NewShardedCache(cfg Config) *ShardedCache {
	cfg = configOf([]Option{WithShards(cfg.Shards), WithTTL(cfg.TTL), WithClock(cfg.Now)})
	shards := make([]*shard, cfg.Shards)
	for i := range shards {
		shards[i] = &shard{entries: make(map[string]entry)}
	}
	return &ShardedCache{
		shards: shards,
		ttl:    cfg.TTL,
		now:    cfg.Now,
	}
}

func (c *ShardedCache) Load(key string) (any, bool) {
	s := c.shardOf(key)
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if now := c.now(); c.ttl > 0 && !e.valid.Contains(now) {
		s.mu.Lock()
		if cur, ok := s.entries[key]; ok && !cur.valid.Contains(now) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *ShardedCache) Store(key string, value any) {
	e := entry{value: value}
	if c.ttl > 0 {
		now := c.now()
		e.valid = timespan.BetweenTimes(now, now.Add(c.ttl))
	}
	s := c.shardOf(key)
	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
}

func (c *ShardedCache) Delete(key string) {
	s := c.shardOf(key)
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len counts stored entries, expired ones included.
func (c *ShardedCache) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}

func (c *ShardedCache) shardOf(key string) *shard {
	return c.shards[shardIndex(key, len(c.shards))]
}

func shardIndex(key string, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(key) % uint64(numShards))
	}
}
