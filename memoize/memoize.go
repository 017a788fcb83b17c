package memoize

import (
	"fmt"

	"github.com/on-the-ground/lowdash_go/functions"
	"github.com/on-the-ground/lowdash_go/logging"
	"go.uber.org/zap"
)

var (
	_ functions.Callable = (*Memoized)(nil)
	_ functions.Lengther = (*Memoized)(nil)
)

// Memoized is a callable that caches the results of its target.
type Memoized struct {
	fn       *functions.Wrapper
	resolver *functions.Wrapper
	cache    Cache
}

// Memoize creates a callable that caches the results of fn. The cache key
// is the result of resolver when given, otherwise the first argument,
// formatted with fmt.Sprint. Both fn and resolver receive the receiver
// the memoized callable is invoked with. Failed calls are not cached.
func Memoize(fn any, resolver any, opts ...Option) *Memoized {
	cfg := configOf(opts)
	cache := cfg.Cache
	if cache == nil {
		cache = NewShardedCache(cfg)
	}
	m := &Memoized{
		fn:    functions.Partial(fn),
		cache: cache,
	}
	if resolver != nil {
		m.resolver = functions.Partial(resolver)
	}
	logging.Logger().Debug("created memoized function",
		zap.String("wrapper_id", m.fn.ID()),
		zap.String("cache", fmt.Sprintf("%T", cache)),
		zap.Duration("ttl", cfg.TTL),
	)
	return m
}

// Cache exposes the result cache.
func (m *Memoized) Cache() Cache {
	return m.cache
}

// Length is the length of the memoized target.
func (m *Memoized) Length() int {
	return m.fn.Length()
}

func (m *Memoized) Call(this any, args ...any) (any, error) {
	key, err := m.key(this, args)
	if err != nil {
		return nil, err
	}
	if v, ok := m.cache.Load(key); ok {
		return v, nil
	}
	v, err := m.fn.Call(this, args...)
	if err != nil {
		return v, err
	}
	m.cache.Store(key, v)
	return v, nil
}

// Invoke is Call without a receiver.
func (m *Memoized) Invoke(args ...any) (any, error) {
	return m.Call(nil, args...)
}

func (m *Memoized) key(this any, args []any) (string, error) {
	if m.resolver != nil {
		k, err := m.resolver.Call(this, args...)
		if err != nil {
			return "", fmt.Errorf("resolve cache key: %w", err)
		}
		return fmt.Sprint(k), nil
	}
	if len(args) == 0 {
		return fmt.Sprint(nil), nil
	}
	return fmt.Sprint(args[0]), nil
}
