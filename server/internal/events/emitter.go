package events

import (
	"context"
	"time"

	"github.com/Eursukkul/shareit/pkg/rabbitmq"
	"github.com/rs/zerolog"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Emitter publishes domain events. A nil Emitter, or one without a
// publisher, drops events silently. Publish failures are logged only.
type Emitter struct {
	pub    Publisher
	logger zerolog.Logger
}

func NewEmitter(pub Publisher, logger zerolog.Logger) *Emitter {
	return &Emitter{pub: pub, logger: logger.With().Str("component", "events").Logger()}
}

func (e *Emitter) Emit(ctx context.Context, msg rabbitmq.Message) {
	if e == nil || e.pub == nil {
		return
	}
	if msg.At.IsZero() {
		msg.At = time.Now().UTC()
	}
	if err := e.pub.Publish(ctx, msg.Type, msg); err != nil {
		e.logger.Warn().Err(err).Str("type", msg.Type).Msg("publish event failed")
	}
}
