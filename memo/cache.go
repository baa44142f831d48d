// Package memo stands in for the external task-memoization runtime the
// chunking core assumes: every capability-surface call (as_chunk,
// references, resolve_reference, chunking_type, from_asset) is expected to
// be memoized on its inputs. Without such a runtime a fresh implementation
// must add its own cache keyed on (operation, input identity); this package
// is that cache.
package memo

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache fronts capability-surface calls keyed by operation name plus the
// input's identity string.
type Cache interface {
	Get(op, key string) (any, bool)
	Set(op, key string, value any)
}

type ristrettoCache struct {
	c *ristretto.Cache[string, any]
}

// New builds a Cache with room for roughly capacity entries. A capacity of
// zero disables caching (every lookup misses), which is useful in tests that
// want to observe every capability call.
func New(capacity int64) (Cache, error) {
	if capacity <= 0 {
		return noopCache{}, nil
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: capacity * 10,
		MaxCost:     capacity,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("memo: failed to build cache: %w", err)
	}
	return &ristrettoCache{c: c}, nil
}

func cacheKey(op, key string) string {
	return op + "\x00" + key
}

func (r *ristrettoCache) Get(op, key string) (any, bool) {
	return r.c.Get(cacheKey(op, key))
}

func (r *ristrettoCache) Set(op, key string, value any) {
	r.c.Set(cacheKey(op, key), value, 1)
}

type noopCache struct{}

func (noopCache) Get(string, string) (any, bool) { return nil, false }
func (noopCache) Set(string, string, any)        {}
