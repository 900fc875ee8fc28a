package consumer

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Eursukkul/shareit/pkg/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Bindings are the routing keys the gateway listens to.
var Bindings = []string{"item.*", "booking.*", "comment.*", "user.*"}

// ItemCache is the part of the item cache the invalidator drives.
type ItemCache interface {
	InvalidateItem(ctx context.Context, itemID int64) error
	Flush(ctx context.Context) error
}

// acknowledger is the subset of amqp.Delivery used to settle a message.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type CacheInvalidator struct {
	cache  ItemCache
	logger zerolog.Logger
}

func NewCacheInvalidator(cache ItemCache, logger zerolog.Logger) *CacheInvalidator {
	return &CacheInvalidator{
		cache:  cache,
		logger: logger.With().Str("component", "cache-invalidator").Logger(),
	}
}

// Start drains msgs in a goroutine until the channel closes.
func (ci *CacheInvalidator) Start(ctx context.Context, msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			ci.handle(ctx, msg.Body, &msg)
		}
		ci.logger.Info().Msg("delivery channel closed, stopping")
	}()
}

func (ci *CacheInvalidator) handle(ctx context.Context, body []byte, ack acknowledger) {
	var m rabbitmq.Message
	if err := json.Unmarshal(body, &m); err != nil {
		ci.logger.Error().Err(err).Msg("malformed message dropped")
		_ = ack.Nack(false, false)
		return
	}

	if err := ci.apply(ctx, m); err != nil {
		ci.logger.Error().Err(err).Str("type", m.Type).Int64("item_id", m.ItemID).Msg("cache invalidation failed")
		_ = ack.Nack(false, true)
		return
	}

	ci.logger.Debug().Str("type", m.Type).Int64("item_id", m.ItemID).Msg("cache invalidated")
	_ = ack.Ack(false)
}

func (ci *CacheInvalidator) apply(ctx context.Context, m rabbitmq.Message) error {
	kind, _, _ := strings.Cut(m.Type, ".")
	switch kind {
	case "user":
		return ci.cache.Flush(ctx)
	case "item", "booking", "comment":
		if m.ItemID == 0 {
			return nil
		}
		return ci.cache.InvalidateItem(ctx, m.ItemID)
	default:
		return nil
	}
}
