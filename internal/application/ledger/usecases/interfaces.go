package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/shared/biztime"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

// TransactionRunner runs fn inside one database transaction.
// *db.TransactionManager is the production implementation.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BalanceCache keeps read-through copies of wallet balances. Put must keep
// an entry that is at least as new as snap, so a reader that loaded a balance
// before a write committed cannot overwrite the committed one.
type BalanceCache interface {
	Get(ctx context.Context, userID shared.UserID) (snap wallet.BalanceSnapshot, found bool, err error)
	Put(ctx context.Context, userID shared.UserID, snap wallet.BalanceSnapshot) error
	Invalidate(ctx context.Context, userID shared.UserID) error
}

// options carries the optional collaborators shared by every ledger use case.
type options struct {
	cache     BalanceCache
	publisher events.EventPublisher
	retry     db.RetryPolicy
	now       func() time.Time
}

func defaultOptions() options {
	return options{
		retry: db.DefaultRetryPolicy,
		now:   biztime.NowUTC,
	}
}

func isConflict(err error) bool {
	return errors.Is(err, shared.ErrConcurrentModification)
}

// afterCommit writes the committed balances to the cache and publishes
// events once the surrounding transaction has committed.
func (o *options) afterCommit(ctx context.Context, log logger.Interface, committed []*wallet.Wallet, evts ...events.DomainEvent) {
	db.AfterCommit(ctx, func() {
		// the request context may already be done once the hook fires
		bg := context.WithoutCancel(ctx)
		if o.cache != nil {
			for _, w := range committed {
				o.cacheCommitted(bg, log, w)
			}
		}
		if o.publisher != nil {
			for _, evt := range evts {
				if err := o.publisher.Publish(evt); err != nil {
					log.Warnw("failed to publish event", "event_type", evt.GetEventType(), "error", err)
				}
			}
		}
	})
}

// cacheCommitted stores w's balance. If that fails the entry is dropped so
// no older balance survives.
func (o *options) cacheCommitted(ctx context.Context, log logger.Interface, w *wallet.Wallet) {
	err := o.cache.Put(ctx, w.UserID(), w.Snapshot())
	if err == nil {
		return
	}
	log.Warnw("failed to cache committed balance", "user_id", w.UserID(), "version", w.Version(), "error", err)
	if err := o.cache.Invalidate(ctx, w.UserID()); err != nil {
		log.Warnw("failed to invalidate balance cache", "user_id", w.UserID(), "error", err)
	}
}
