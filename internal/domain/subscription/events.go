package subscription

import (
	"time"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	vo "github.com/cbnu/subscribe-service/internal/domain/subscription/valueobjects"
)

const (
	EventTypeSubscribed = "subscription.subscribed"
	EventTypeRenewed    = "subscription.renewed"
	EventTypeTerminated = "subscription.terminated"
)

// ChangedEvent carries the outcome of a subscribe, renew or terminate.
// Amount is the price paid, or the refund on termination.
type ChangedEvent struct {
	events.BaseEvent
	UserID  shared.UserID `json:"user_id"`
	Tier    vo.Tier       `json:"tier"`
	Amount  int64         `json:"amount"`
	EndDate time.Time     `json:"end_date"`
}

func NewSubscribedEvent(s *Subscription, price int64, at time.Time) ChangedEvent {
	return newChangedEvent(EventTypeSubscribed, s, price, at)
}

func NewRenewedEvent(s *Subscription, price int64, at time.Time) ChangedEvent {
	return newChangedEvent(EventTypeRenewed, s, price, at)
}

func NewTerminatedEvent(s *Subscription, refund int64, at time.Time) ChangedEvent {
	return newChangedEvent(EventTypeTerminated, s, refund, at)
}

func newChangedEvent(eventType string, s *Subscription, amount int64, at time.Time) ChangedEvent {
	return ChangedEvent{
		BaseEvent: events.NewBaseEvent(s.UserID().String(), eventType, at),
		UserID:    s.UserID(),
		Tier:      s.Tier(),
		Amount:    amount,
		EndDate:   s.EndDate(),
	}
}
