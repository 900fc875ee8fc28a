package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shareit:item:"

// ItemCache stores server responses for GET /items/{id}, one entry per
// (item, viewer) because owners see bookings other users do not.
// A nil *ItemCache is valid and caches nothing.
type ItemCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewItemCache(rdb *redis.Client, ttl time.Duration) *ItemCache {
	if rdb == nil || ttl <= 0 {
		return nil
	}
	return &ItemCache{rdb: rdb, ttl: ttl}
}

func itemKey(itemID, userID int64) string {
	return fmt.Sprintf("%s%d:user:%d", keyPrefix, itemID, userID)
}

func (c *ItemCache) Get(ctx context.Context, itemID, userID int64) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	val, err := c.rdb.Get(ctx, itemKey(itemID, userID)).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *ItemCache) Set(ctx context.Context, itemID, userID int64, body []byte) error {
	if c == nil {
		return nil
	}
	return c.rdb.Set(ctx, itemKey(itemID, userID), body, c.ttl).Err()
}

// InvalidateItem drops every viewer's copy of itemID.
func (c *ItemCache) InvalidateItem(ctx context.Context, itemID int64) error {
	if c == nil {
		return nil
	}
	return c.deleteMatching(ctx, fmt.Sprintf("%s%d:user:*", keyPrefix, itemID))
}

// Flush drops all cached items.
func (c *ItemCache) Flush(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.deleteMatching(ctx, keyPrefix+"*")
}

func (c *ItemCache) deleteMatching(ctx context.Context, pattern string) error {
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
