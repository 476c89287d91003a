package bffsdk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemcache(t *testing.T) {
	ctx := context.Background()
	c := newMemcache()

	t.Run("miss", func(t *testing.T) {
		out, _, ok := c.getWithTTL(ctx, "miss")
		assert.False(t, ok)
		assert.Nil(t, out)
	})

	t.Run("set-get", func(t *testing.T) {
		key := "set-get"
		val := []byte(`{"ok":true}`)

		c.set(ctx, key, val, time.Hour)

		out, ttl, ok := c.getWithTTL(ctx, key)
		assert.True(t, ok)
		assert.Equal(t, val, out)
		assert.Greater(t, ttl, 59*time.Minute)
	})

	t.Run("delete", func(t *testing.T) {
		key := "delete-me"
		c.set(ctx, key, []byte(`1`), time.Hour)
		c.delete(ctx, key)

		_, _, ok := c.getWithTTL(ctx, key)
		assert.False(t, ok)
	})

	t.Run("empty-value-refused", func(t *testing.T) {
		c.set(ctx, "empty", nil, time.Hour)

		_, _, ok := c.getWithTTL(ctx, "empty")
		assert.False(t, ok)
	})

	t.Run("zero-ttl-refused", func(t *testing.T) {
		c.set(ctx, "zero-ttl", []byte(`1`), 0)

		_, _, ok := c.getWithTTL(ctx, "zero-ttl")
		assert.False(t, ok)
	})
}
