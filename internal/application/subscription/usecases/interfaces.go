package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	ledgerdto "github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	"github.com/cbnu/subscribe-service/internal/shared/biztime"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

// PointLedger moves points for subscription purchases and refunds. Calls made
// with a transactional context join that transaction.
type PointLedger interface {
	Pay(ctx context.Context, userID shared.UserID, amount int64, metadata map[string]any) (*ledgerdto.BalanceChangeDTO, error)
	Refund(ctx context.Context, userID shared.UserID, amount int64, metadata map[string]any) (*ledgerdto.BalanceChangeDTO, error)
}

// TransactionRunner runs fn inside one database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type options struct {
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

func (o *options) publishAfterCommit(ctx context.Context, log logger.Interface, evt events.DomainEvent) {
	if o.publisher == nil {
		return
	}
	db.AfterCommit(ctx, func() {
		if err := o.publisher.Publish(evt); err != nil {
			log.Warnw("failed to publish event", "event_type", evt.GetEventType(), "error", err)
		}
	})
}

// loadOwned fetches the user's subscription or fails with ErrSubscriptionNotFound.
func loadOwned(ctx context.Context, repo subscription.Repository, userID shared.UserID) (*subscription.Subscription, error) {
	sub, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: user %d", subscription.ErrSubscriptionNotFound, userID)
	}
	return sub, nil
}
