package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cbnu/subscribe-service/internal/application/subscription/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	vo "github.com/cbnu/subscribe-service/internal/domain/subscription/valueobjects"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/errors"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type SubscribeCommand struct {
	UserID int64
	Tier   string
	Days   int64
}

// SubscribeUseCase pays for and opens a new subscription. The payment and
// the subscription row commit together.
type SubscribeUseCase struct {
	subscriptionRepo subscription.Repository
	ledger           PointLedger
	txMgr            TransactionRunner
	logger           logger.Interface
	opts             options
}

func NewSubscribeUseCase(
	subscriptionRepo subscription.Repository,
	ledger PointLedger,
	txMgr TransactionRunner,
	logger logger.Interface,
) *SubscribeUseCase {
	return &SubscribeUseCase{
		subscriptionRepo: subscriptionRepo,
		ledger:           ledger,
		txMgr:            txMgr,
		logger:           logger,
		opts:             defaultOptions(),
	}
}

func (uc *SubscribeUseCase) SetEventPublisher(publisher events.EventPublisher) {
	uc.opts.publisher = publisher
}

func (uc *SubscribeUseCase) SetRetryPolicy(policy db.RetryPolicy) {
	uc.opts.retry = policy
}

func (uc *SubscribeUseCase) SetClock(now func() time.Time) {
	uc.opts.now = now
}

func (uc *SubscribeUseCase) Execute(ctx context.Context, cmd SubscribeCommand) (*dto.PurchaseDTO, error) {
	userID, err := shared.NewUserID(cmd.UserID)
	if err != nil {
		return nil, err
	}
	tier, err := vo.ParseTier(cmd.Tier)
	if err != nil {
		return nil, err
	}
	if err := vo.ValidateDays(cmd.Days); err != nil {
		return nil, err
	}

	var result *dto.PurchaseDTO
	err = db.Retry(ctx, uc.opts.retry, isConflict, func(ctx context.Context) error {
		return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			res, err := uc.subscribeOnce(txCtx, userID, tier, cmd.Days)
			if err != nil {
				return err
			}
			result = res
			return nil
		})
	})
	if err != nil {
		uc.logger.Warnw("subscribe failed", "user_id", userID, "tier", tier, "days", cmd.Days, "error", err)
		return nil, err
	}

	uc.logger.Infow("subscription created",
		"user_id", userID,
		"subscription_id", result.SubscriptionID,
		"tier", tier,
		"price", result.Price,
	)
	return result, nil
}

func (uc *SubscribeUseCase) subscribeOnce(ctx context.Context, userID shared.UserID, tier vo.Tier, days int64) (*dto.PurchaseDTO, error) {
	now := uc.opts.now()

	exists, err := uc.subscriptionRepo.ExistsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: user %d", subscription.ErrSubscriptionAlreadyExists, userID)
	}

	sub, err := subscription.NewSubscription(userID, tier, days, now)
	if err != nil {
		return nil, err
	}

	price := subscription.PriceOf(tier, days)
	paid, err := uc.ledger.Pay(ctx, userID, price, map[string]any{
		"tier": tier.String(),
		"days": days,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, fmt.Errorf("%w: user %d", subscription.ErrSubscriptionAlreadyExists, userID)
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.opts.publishAfterCommit(ctx, uc.logger, subscription.NewSubscribedEvent(sub, price, now))

	return &dto.PurchaseDTO{
		SubscriptionDTO: dto.ToSubscriptionDTO(sub),
		Price:           price,
		Balance:         paid.Balance,
	}, nil
}
