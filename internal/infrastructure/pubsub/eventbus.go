// Package pubsub forwards committed domain events to Redis Pub/Sub so other
// services and replicas can follow ledger and subscription changes.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

// DefaultChannel carries every forwarded domain event.
const DefaultChannel = "subscribe:events"

const publishTimeout = 2 * time.Second

// EventMessage is the wire form of a forwarded event. Payload holds the
// event's own JSON encoding.
type EventMessage struct {
	EventType   string          `json:"event_type"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// EventMessageHandler receives decoded messages from Subscribe.
type EventMessageHandler func(ctx context.Context, msg EventMessage)

// Encode wraps event into its wire form.
func Encode(event events.DomainEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	data, err := json.Marshal(EventMessage{
		EventType:   event.GetEventType(),
		AggregateID: event.GetAggregateID(),
		OccurredAt:  event.GetOccurredAt(),
		Payload:     payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return data, nil
}

// Decode parses a message produced by Encode.
func Decode(data []byte) (EventMessage, error) {
	var msg EventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return EventMessage{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if msg.EventType == "" {
		return EventMessage{}, fmt.Errorf("event message without event_type")
	}
	return msg, nil
}

// RedisEventBus is an events.EventHandler that republishes each event on a
// Redis channel, and a subscriber for that channel.
type RedisEventBus struct {
	client  *redis.Client
	channel string
	logger  logger.Interface
}

func NewRedisEventBus(client *redis.Client, channel string, logger logger.Interface) *RedisEventBus {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisEventBus{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// Register forwards every dispatched event.
func (b *RedisEventBus) Register(subscriber events.EventSubscriber) error {
	return subscriber.Subscribe(events.WildcardEventType, b)
}

// Handle publishes event. Dispatcher handlers carry no context, so the
// publish is bounded by its own timeout.
func (b *RedisEventBus) Handle(event events.DomainEvent) error {
	data, err := Encode(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish domain event",
			"event_type", event.GetEventType(),
			"aggregate_id", event.GetAggregateID(),
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debugw("domain event published",
		"channel", b.channel,
		"event_type", event.GetEventType(),
		"aggregate_id", event.GetAggregateID(),
	)
	return nil
}

// Subscribe blocks delivering messages to handler until ctx is done.
// Messages are handled in order on the calling goroutine.
func (b *RedisEventBus) Subscribe(ctx context.Context, handler EventMessageHandler) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	// Wait for subscription confirmation
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.logger.Infow("subscribed to domain events", "channel", b.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("domain event subscriber stopped", "reason", ctx.Err())
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("domain event channel closed")
				return nil
			}

			decoded, err := Decode([]byte(msg.Payload))
			if err != nil {
				b.logger.Warnw("failed to decode domain event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}
			handler(ctx, decoded)
		}
	}
}
