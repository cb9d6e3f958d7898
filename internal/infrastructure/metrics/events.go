package metrics

import (
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
)

// EventCollector turns committed domain events into counters. Register it
// for the wildcard event type.
type EventCollector struct {
	metrics *Metrics
}

func NewEventCollector(m *Metrics) *EventCollector {
	return &EventCollector{metrics: m}
}

// Register subscribes the collector to every event.
func (c *EventCollector) Register(subscriber events.EventSubscriber) error {
	return subscriber.Subscribe(events.WildcardEventType, c)
}

func (c *EventCollector) Handle(event events.DomainEvent) error {
	eventType := event.GetEventType()
	c.metrics.EventsPublished.WithLabelValues(eventType).Inc()

	switch evt := event.(type) {
	case wallet.BalanceChangedEvent:
		c.metrics.PointsMoved.WithLabelValues(eventType).Add(float64(evt.Amount))
	case wallet.PresentedEvent:
		c.metrics.PointsMoved.WithLabelValues(eventType).Add(float64(evt.Amount))
	case subscription.ChangedEvent:
		c.metrics.PointsMoved.WithLabelValues(eventType).Add(float64(evt.Amount))
		c.metrics.SubscriptionChanges.WithLabelValues(eventType, evt.Tier.String()).Inc()
	}
	return nil
}
