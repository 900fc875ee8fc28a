package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*ItemCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewItemCache(rdb, time.Minute), mr
}

func TestItemCache_SetGetExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, 1, 2)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, 1, 2, []byte(`{"id":1}`)))
	body, ok := c.Get(ctx, 1, 2)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":1}`, string(body))

	_, ok = c.Get(ctx, 1, 3)
	assert.False(t, ok, "entries are per viewer")

	mr.FastForward(2 * time.Minute)
	_, ok = c.Get(ctx, 1, 2)
	assert.False(t, ok)
}

func TestItemCache_InvalidateItem(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 1, 2, []byte(`a`)))
	require.NoError(t, c.Set(ctx, 1, 3, []byte(`b`)))
	require.NoError(t, c.Set(ctx, 10, 2, []byte(`c`)))

	require.NoError(t, c.InvalidateItem(ctx, 1))

	_, ok := c.Get(ctx, 1, 2)
	assert.False(t, ok)
	_, ok = c.Get(ctx, 1, 3)
	assert.False(t, ok)
	_, ok = c.Get(ctx, 10, 2)
	assert.True(t, ok, "item 10 must survive invalidation of item 1")
}

func TestItemCache_Flush(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("unrelated", "keep"))

	require.NoError(t, c.Set(ctx, 1, 2, []byte(`a`)))
	require.NoError(t, c.Set(ctx, 7, 2, []byte(`b`)))
	require.NoError(t, c.Flush(ctx))

	assert.Equal(t, []string{"unrelated"}, mr.Keys())
}

func TestItemCache_NilIsNoop(t *testing.T) {
	var c *ItemCache
	ctx := context.Background()

	assert.Nil(t, NewItemCache(nil, time.Minute))
	assert.NoError(t, c.Set(ctx, 1, 1, []byte("x")))
	_, ok := c.Get(ctx, 1, 1)
	assert.False(t, ok)
	assert.NoError(t, c.InvalidateItem(ctx, 1))
	assert.NoError(t, c.Flush(ctx))
}
