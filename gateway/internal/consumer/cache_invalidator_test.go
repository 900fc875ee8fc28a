package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Eursukkul/shareit/gateway/internal/cache"
	"github.com/Eursukkul/shareit/pkg/rabbitmq"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAck) Ack(bool) error {
	f.acked = true
	return nil
}

func (f *fakeAck) Nack(_, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

type failingCache struct{}

func (failingCache) InvalidateItem(context.Context, int64) error { return errors.New("redis down") }
func (failingCache) Flush(context.Context) error                 { return errors.New("redis down") }

func encode(t *testing.T, m rabbitmq.Message) []byte {
	t.Helper()
	body, err := json.Marshal(m)
	require.NoError(t, err)
	return body
}

func newCache(t *testing.T) *cache.ItemCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.NewItemCache(rdb, time.Minute)
}

func TestHandle_ItemEventsInvalidateOneItem(t *testing.T) {
	ctx := context.Background()
	ic := newCache(t)
	ci := NewCacheInvalidator(ic, zerolog.Nop())

	for _, key := range []string{rabbitmq.KeyItemUpdated, rabbitmq.KeyBookingApproved, rabbitmq.KeyCommentCreated} {
		require.NoError(t, ic.Set(ctx, 1, 5, []byte(`{"id":1}`)))
		require.NoError(t, ic.Set(ctx, 2, 5, []byte(`{"id":2}`)))

		ack := &fakeAck{}
		ci.handle(ctx, encode(t, rabbitmq.Message{Type: key, ItemID: 1}), ack)

		assert.True(t, ack.acked, key)
		_, ok := ic.Get(ctx, 1, 5)
		assert.False(t, ok, key)
		_, ok = ic.Get(ctx, 2, 5)
		assert.True(t, ok, key)
	}
}

func TestHandle_UserEventsFlush(t *testing.T) {
	ctx := context.Background()
	ic := newCache(t)
	ci := NewCacheInvalidator(ic, zerolog.Nop())
	require.NoError(t, ic.Set(ctx, 1, 5, []byte(`a`)))
	require.NoError(t, ic.Set(ctx, 2, 6, []byte(`b`)))

	ack := &fakeAck{}
	ci.handle(ctx, encode(t, rabbitmq.Message{Type: rabbitmq.KeyUserDeleted, UserID: 6}), ack)

	assert.True(t, ack.acked)
	_, ok := ic.Get(ctx, 1, 5)
	assert.False(t, ok)
	_, ok = ic.Get(ctx, 2, 6)
	assert.False(t, ok)
}

func TestHandle_IgnoredEventsAreAcked(t *testing.T) {
	ctx := context.Background()
	ic := newCache(t)
	ci := NewCacheInvalidator(ic, zerolog.Nop())
	require.NoError(t, ic.Set(ctx, 1, 5, []byte(`a`)))

	ack := &fakeAck{}
	ci.handle(ctx, encode(t, rabbitmq.Message{Type: rabbitmq.KeyRequestCreated, RequestID: 3}), ack)

	assert.True(t, ack.acked)
	_, ok := ic.Get(ctx, 1, 5)
	assert.True(t, ok)
}

func TestHandle_MalformedIsDropped(t *testing.T) {
	ack := &fakeAck{}
	NewCacheInvalidator(failingCache{}, zerolog.Nop()).handle(context.Background(), []byte("{not json"), ack)

	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue)
}

func TestHandle_CacheFailureRequeues(t *testing.T) {
	ack := &fakeAck{}
	NewCacheInvalidator(failingCache{}, zerolog.Nop()).handle(context.Background(),
		encode(t, rabbitmq.Message{Type: rabbitmq.KeyItemUpdated, ItemID: 1}), ack)

	assert.True(t, ack.nacked)
	assert.True(t, ack.requeue)
}
