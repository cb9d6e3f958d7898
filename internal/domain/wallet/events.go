package wallet

import (
	"time"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
)

const (
	EventTypeRecharged = "wallet.recharged"
	EventTypeUsed      = "wallet.used"
	EventTypePresented = "wallet.presented"
)

// BalanceChangedEvent is raised after a recharge or use commits.
type BalanceChangedEvent struct {
	events.BaseEvent
	UserID  shared.UserID `json:"user_id"`
	Amount  int64         `json:"amount"`
	Balance int64         `json:"balance"`
}

func NewRechargedEvent(w *Wallet, amount int64, at time.Time) BalanceChangedEvent {
	return newBalanceChanged(EventTypeRecharged, w, amount, at)
}

func NewUsedEvent(w *Wallet, amount int64, at time.Time) BalanceChangedEvent {
	return newBalanceChanged(EventTypeUsed, w, amount, at)
}

func newBalanceChanged(eventType string, w *Wallet, amount int64, at time.Time) BalanceChangedEvent {
	return BalanceChangedEvent{
		BaseEvent: events.NewBaseEvent(w.UserID().String(), eventType, at),
		UserID:    w.UserID(),
		Amount:    amount,
		Balance:   w.Balance().Points(),
	}
}

// PresentedEvent is raised after a transfer commits.
type PresentedEvent struct {
	events.BaseEvent
	FromUserID shared.UserID `json:"from_user_id"`
	ToUserID   shared.UserID `json:"to_user_id"`
	Amount     int64         `json:"amount"`
}

func NewPresentedEvent(from, to shared.UserID, amount int64, at time.Time) PresentedEvent {
	return PresentedEvent{
		BaseEvent:  events.NewBaseEvent(from.String(), EventTypePresented, at),
		FromUserID: from,
		ToUserID:   to,
		Amount:     amount,
	}
}
