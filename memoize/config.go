package memoize

import "time"

const DefaultShards = 16

type Config struct {
	Shards int           // default: DefaultShards
	TTL    time.Duration // default: 0, entries never expire
	Cache  Cache         // overrides the sharded cache when set
	Now    func() time.Time
}

func NewConfig(shards int, ttl time.Duration) Config {
	if shards <= 0 {
		shards = DefaultShards
	}
	if ttl < 0 {
		ttl = 0
	}
	return Config{
		Shards: shards,
		TTL:    ttl,
		Now:    time.Now,
	}
}

type Option func(*Config)

func WithShards(n int) Option {
	return func(c *Config) { c.Shards = n }
}

// WithTTL expires entries ttl after they were stored.
func WithTTL(ttl time.Duration) Option {
	return func(c *Config) { c.TTL = ttl }
}

// WithCache makes Memoize use cache instead of building its own.
func WithCache(cache Cache) Option {
	return func(c *Config) { c.Cache = cache }
}

// WithClock replaces time.Now for TTL checks.
func WithClock(now func() time.Time) Option {
	return func(c *Config) { c.Now = now }
}

func configOf(opts []Option) Config {
	cfg := NewConfig(DefaultShards, 0)
	for _, opt := range opts {
		opt(&cfg)
	}
	normalized := NewConfig(cfg.Shards, cfg.TTL)
	normalized.Cache = cfg.Cache
	if cfg.Now != nil {
		normalized.Now = cfg.Now
	}
	return normalized
}
