package bffsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// Fetch resolves one operation to its raw data payload.
type Fetch func(ctx context.Context) (json.RawMessage, error)

// Result is what a cached fetch surfaces to callers. Data prefers the
// primary payload, falling back to partial data attached to the error so
// callers don't have to dig it out of the error themselves.
type Result struct {
	Data    json.RawMessage
	Err     error
	Loading bool
}

// Resource is a typed view over a Result.
type Resource[T any] struct {
	Data    *T
	Err     error
	Loading bool
}

// GroupConfig tunes the cached fetch behavior, mirroring the console's
// runtime revalidation switches.
type GroupConfig struct {
	// TTL is how long a cached result is considered fresh. Defaults to a
	// minute.
	TTL time.Duration
	// StaleTTL is how long past freshness a result may still be served
	// while revalidation happens in the background. Defaults to five
	// minutes.
	StaleTTL time.Duration
	// NoRevalidateIfStale disables background refresh of stale entries.
	NoRevalidateIfStale bool
}

// Group serves operation results from cache. Concurrent fetches for the
// same key coalesce in a singleflight group; stale entries are served
// immediately and refreshed in the background.
type Group struct {
	cache *memcache
	sf    singleflight.Group

	ttl        time.Duration
	staleTTL   time.Duration
	revalidate bool
}

// NewGroup returns a Group with the given configuration.
func NewGroup(cfg GroupConfig) *Group {
	if cfg.TTL <= 0 {
		cfg.TTL = time.Minute
	}
	if cfg.StaleTTL <= 0 {
		cfg.StaleTTL = 5 * time.Minute
	}
	return &Group{
		cache:      newMemcache(),
		ttl:        cfg.TTL,
		staleTTL:   cfg.StaleTTL,
		revalidate: !cfg.NoRevalidateIfStale,
	}
}

// Fetch returns the cached result for key, fetching on a miss. Entries in
// their stale window are returned as-is and refreshed in the background.
func (g *Group) Fetch(ctx context.Context, key Key, fetch Fetch) Result {
	k := key.String()

	if val, remaining, ok := g.cache.getWithTTL(ctx, k); ok {
		if remaining < g.staleTTL && g.revalidate {
			g.refresh(k, fetch)
		}
		return normalize(val, nil)
	}

	val, err, _ := g.sf.Do(k, func() (any, error) {
		data, err := fetch(ctx)
		if err != nil {
			return data, err
		}
		g.cache.set(ctx, k, data, g.ttl+g.staleTTL)
		return data, nil
	})
	data, _ := val.(json.RawMessage)
	return normalize(data, err)
}

// Invalidate drops the cached entry for key so the next Fetch goes to the
// network.
func (g *Group) Invalidate(ctx context.Context, key Key) {
	g.cache.delete(ctx, key.String())
}

// refresh revalidates a stale entry without blocking the caller. Failures
// are logged; the stale value remains until it expires.
func (g *Group) refresh(k string, fetch Fetch) {
	go func() {
		ctx := context.Background()
		_, _, _ = g.sf.Do(k, func() (any, error) {
			data, err := fetch(ctx)
			if err != nil {
				log(ctx).Warn("revalidation failed", "key", k, "err", err)
				return nil, err
			}
			g.cache.set(ctx, k, data, g.ttl+g.staleTTL)
			return data, nil
		})
	}()
}

// normalize decides what a fetch surfaces. A populated object payload wins;
// otherwise partial data attached to a ClientError is substituted. Loading
// is true only when there is neither data nor an error.
func normalize(data json.RawMessage, err error) Result {
	if !isPopulatedObject(data) {
		var cerr *ClientError
		if errors.As(err, &cerr) && cerr.Response != nil && len(cerr.Response.Data) > 0 {
			data = cerr.Response.Data
		}
	}
	return Result{
		Data:    data,
		Err:     err,
		Loading: isAbsent(data) && err == nil,
	}
}

// isPopulatedObject reports whether raw is a JSON object with at least one
// key.
func isPopulatedObject(raw json.RawMessage) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return false
	}
	return len(m) > 0
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// asResource decodes a Result's payload into T. Decode failures surface on
// Err when the fetch itself didn't already fail.
func asResource[T any](res Result) Resource[T] {
	out := Resource[T]{Err: res.Err, Loading: res.Loading}
	if isAbsent(res.Data) {
		return out
	}
	data := new(T)
	if err := json.Unmarshal(res.Data, data); err != nil {
		if out.Err == nil {
			out.Err = fmt.Errorf("decoding %T: %w", data, err)
		}
		return out
	}
	out.Data = data
	return out
}
