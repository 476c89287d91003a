package bffsdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

func TestNormalize(t *testing.T) {
	t.Run("data-no-error", func(t *testing.T) {
		res := normalize(json.RawMessage(`{"Dataset":{}}`), nil)
		assert.False(t, res.Loading)
		assert.NoError(t, res.Err)
		assert.JSONEq(t, `{"Dataset":{}}`, string(res.Data))
	})

	t.Run("nothing-yet-is-loading", func(t *testing.T) {
		res := normalize(nil, nil)
		assert.True(t, res.Loading)

		res = normalize(json.RawMessage(`null`), nil)
		assert.True(t, res.Loading)
	})

	t.Run("error-is-not-loading", func(t *testing.T) {
		res := normalize(nil, errors.New("boom"))
		assert.False(t, res.Loading)
		assert.Error(t, res.Err)
	})

	t.Run("partial-data-fallback", func(t *testing.T) {
		cerr := &ClientError{
			Response: &Response{
				Data:   json.RawMessage(`{"Dataset":{"getDataset":null}}`),
				Errors: gqlerror.List{{Message: "partial failure"}},
			},
			StatusCode: 200,
		}

		res := normalize(nil, cerr)
		assert.False(t, res.Loading)
		assert.Error(t, res.Err)
		assert.JSONEq(t, `{"Dataset":{"getDataset":null}}`, string(res.Data))
	})

	t.Run("populated-primary-wins", func(t *testing.T) {
		cerr := &ClientError{
			Response:   &Response{Data: json.RawMessage(`{"fallback":true}`)},
			StatusCode: 200,
		}

		res := normalize(json.RawMessage(`{"primary":true}`), cerr)
		assert.JSONEq(t, `{"primary":true}`, string(res.Data))
	})

	t.Run("empty-object-falls-back", func(t *testing.T) {
		cerr := &ClientError{
			Response:   &Response{Data: json.RawMessage(`{"fallback":true}`)},
			StatusCode: 200,
		}

		// An empty object is not a populated payload.
		res := normalize(json.RawMessage(`{}`), cerr)
		assert.JSONEq(t, `{"fallback":true}`, string(res.Data))
	})

	t.Run("plain-error-no-fallback", func(t *testing.T) {
		res := normalize(nil, errors.New("conn refused"))
		assert.Empty(t, res.Data)
		assert.Error(t, res.Err)
	})
}

func TestGroupFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("caches", func(t *testing.T) {
		g := NewGroup(GroupConfig{})
		key := BuildKey("GetDataset", map[string]any{"name": "d1"})

		var calls atomic.Int64
		fetch := func(context.Context) (json.RawMessage, error) {
			calls.Add(1)
			return json.RawMessage(`{"Dataset":{"getDataset":{"name":"d1"}}}`), nil
		}

		first := g.Fetch(ctx, key, fetch)
		require.NoError(t, first.Err)

		second := g.Fetch(ctx, key, fetch)
		require.NoError(t, second.Err)
		assert.Equal(t, string(first.Data), string(second.Data))
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("errors-are-not-cached", func(t *testing.T) {
		g := NewGroup(GroupConfig{})
		key := BuildKey("GetDataset", map[string]any{"name": "gone"})

		var calls atomic.Int64
		fetch := func(context.Context) (json.RawMessage, error) {
			calls.Add(1)
			return nil, errors.New("boom")
		}

		assert.Error(t, g.Fetch(ctx, key, fetch).Err)
		assert.Error(t, g.Fetch(ctx, key, fetch).Err)
		assert.Equal(t, int64(2), calls.Load())
	})

	t.Run("invalidate-forces-refetch", func(t *testing.T) {
		g := NewGroup(GroupConfig{})
		key := BuildKey("ListModels", map[string]any{"namespace": "default"})

		var calls atomic.Int64
		fetch := func(context.Context) (json.RawMessage, error) {
			calls.Add(1)
			return json.RawMessage(`{"Model":{"listModels":{"nodes":[]}}}`), nil
		}

		_ = g.Fetch(ctx, key, fetch)
		g.Invalidate(ctx, key)
		_ = g.Fetch(ctx, key, fetch)

		assert.Equal(t, int64(2), calls.Load())
	})

	t.Run("stale-hit-serves-cached-then-revalidates", func(t *testing.T) {
		g := NewGroup(GroupConfig{TTL: 25 * time.Millisecond, StaleTTL: time.Second})
		key := BuildKey("GetDataset", map[string]any{"name": "stale"})

		var calls atomic.Int64
		fetch := func(context.Context) (json.RawMessage, error) {
			return json.RawMessage(fmt.Sprintf(`{"v":%d}`, calls.Add(1))), nil
		}

		first := g.Fetch(ctx, key, fetch)
		require.NoError(t, first.Err)
		assert.JSONEq(t, `{"v":1}`, string(first.Data))

		// Let the entry age into its stale window.
		time.Sleep(200 * time.Millisecond)

		stale := g.Fetch(ctx, key, fetch)
		require.NoError(t, stale.Err)
		// The stale value is served immediately, not the refresh's result.
		assert.JSONEq(t, `{"v":1}`, string(stale.Data))

		// The refresh runs in the background and replaces the entry.
		require.Eventually(t, func() bool {
			return calls.Load() >= 2
		}, time.Second, 10*time.Millisecond, "background refresh never ran")
		require.Eventually(t, func() bool {
			res := g.Fetch(ctx, key, fetch)
			return res.Err == nil && string(res.Data) != `{"v":1}`
		}, time.Second, 10*time.Millisecond, "refreshed value never served")
	})

	t.Run("no-revalidate-if-stale", func(t *testing.T) {
		g := NewGroup(GroupConfig{
			TTL:                 25 * time.Millisecond,
			StaleTTL:            time.Second,
			NoRevalidateIfStale: true,
		})
		key := BuildKey("GetDataset", map[string]any{"name": "frozen"})

		var calls atomic.Int64
		fetch := func(context.Context) (json.RawMessage, error) {
			calls.Add(1)
			return json.RawMessage(`{"v":1}`), nil
		}

		require.NoError(t, g.Fetch(ctx, key, fetch).Err)
		time.Sleep(200 * time.Millisecond)

		stale := g.Fetch(ctx, key, fetch)
		require.NoError(t, stale.Err)
		assert.JSONEq(t, `{"v":1}`, string(stale.Data))

		// Give a would-be background refresh ample time to fire.
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("concurrent-fetches-coalesce", func(t *testing.T) {
		g := NewGroup(GroupConfig{})
		key := BuildKey("ListModels", map[string]any{"namespace": "crowded"})

		var calls atomic.Int64
		fetch := func(context.Context) (json.RawMessage, error) {
			calls.Add(1)
			time.Sleep(50 * time.Millisecond)
			return json.RawMessage(`{"ok":true}`), nil
		}

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res := g.Fetch(ctx, key, fetch)
				assert.NoError(t, res.Err)
				assert.JSONEq(t, `{"ok":true}`, string(res.Data))
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("distinct-keys-fetch-separately", func(t *testing.T) {
		g := NewGroup(GroupConfig{})

		var calls atomic.Int64
		fetch := func(context.Context) (json.RawMessage, error) {
			calls.Add(1)
			return json.RawMessage(`{"ok":true}`), nil
		}

		_ = g.Fetch(ctx, BuildKey("GetModel", map[string]any{"name": "a"}), fetch)
		_ = g.Fetch(ctx, BuildKey("GetModel", map[string]any{"name": "b"}), fetch)

		assert.Equal(t, int64(2), calls.Load())
	})
}

func TestAsResource(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("decodes", func(t *testing.T) {
		res := asResource[payload](Result{Data: json.RawMessage(`{"name":"d1"}`)})
		require.NotNil(t, res.Data)
		assert.Equal(t, "d1", res.Data.Name)
		assert.NoError(t, res.Err)
	})

	t.Run("loading-passthrough", func(t *testing.T) {
		res := asResource[payload](Result{Loading: true})
		assert.True(t, res.Loading)
		assert.Nil(t, res.Data)
	})

	t.Run("decode-failure-surfaces", func(t *testing.T) {
		res := asResource[payload](Result{Data: json.RawMessage(`[1,2]`)})
		assert.Nil(t, res.Data)
		assert.Error(t, res.Err)
	})

	t.Run("fetch-error-wins", func(t *testing.T) {
		boom := errors.New("boom")
		res := asResource[payload](Result{Data: json.RawMessage(`[1,2]`), Err: boom})
		assert.ErrorIs(t, res.Err, boom)
	})
}
