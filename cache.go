package bffsdk

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	memory "github.com/eko/gocache/store/ristretto/v4"
	"golang.org/x/exp/rand"
)

// memcache holds marshaled operation payloads keyed by Key.String(). It is
// a thin wrapper so the fetch layer sees (value, ttl, ok) instead of
// store-specific errors.
type memcache struct {
	wrapped cache.SetterCacheInterface[[]byte]
}

func newMemcache() *memcache {
	r, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1e6,                          // Track LRU for up to 1M keys.
		MaxCost:     debug.SetMemoryLimit(-1) / 4, // Use 25% of available memory.
		BufferItems: 64,                           // Number of keys per Get buffer.
	})
	if err != nil {
		panic(err)
	}
	return &memcache{wrapped: cache.New[[]byte](memory.NewRistretto(r))}
}

func (c *memcache) getWithTTL(ctx context.Context, key string) ([]byte, time.Duration, bool) {
	val, ttl, err := c.wrapped.GetWithTTL(ctx, key)
	if err != nil {
		return nil, 0, false
	}
	return val, ttl, true
}

// set stores a value with a fuzzed TTL so entries written together don't
// all expire together.
func (c *memcache) set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if len(val) == 0 {
		log(ctx).Warn("refusing to cache empty value", "key", key)
		return
	}
	if ttl <= 0 {
		log(ctx).Warn("refusing to cache zero ttl", "key", key)
		return
	}

	fuzz := time.Duration(rand.Int63n(int64(ttl)/10 + 1))
	err := c.wrapped.Set(ctx, key, val, store.WithExpiration(ttl+fuzz), store.WithSynchronousSet())
	if err != nil {
		log(ctx).Warn("problem setting cache", "key", key, "err", err)
	}
}

func (c *memcache) delete(ctx context.Context, key string) {
	if err := c.wrapped.Delete(ctx, key); err != nil {
		log(ctx).Warn("problem deleting cache entry", "key", key, "err", err)
	}
}
