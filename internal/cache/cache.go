package cache

import (
	"context"
	"time"
)

// FetchFunc produces the value on a cache miss. The cached representation is
// raw bytes; callers own (de)serialization.
type FetchFunc func(ctx context.Context) ([]byte, error)

// Cache is the injected read-through capability that replaced the old
// process-global timed cache: callers own the instance, the calculation
// engines never see it.
type Cache interface {
	// GetOrFetch returns the cached value for key, or runs fetch and stores
	// the result for ttl.
	GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) ([]byte, error)
	// Invalidate drops a key.
	Invalidate(ctx context.Context, key string) error
}

// NewNoop returns a Cache that always fetches. Used when Redis is disabled
// or unreachable.
func NewNoop() Cache {
	return noopCache{}
}

type noopCache struct{}

func (noopCache) GetOrFetch(ctx context.Context, _ string, _ time.Duration, fetch FetchFunc) ([]byte, error) {
	return fetch(ctx)
}

func (noopCache) Invalidate(context.Context, string) error { return nil }
