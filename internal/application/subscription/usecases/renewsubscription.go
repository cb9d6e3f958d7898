package usecases

import (
	"context"
	"time"

	"github.com/cbnu/subscribe-service/internal/application/subscription/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	vo "github.com/cbnu/subscribe-service/internal/domain/subscription/valueobjects"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type RenewSubscriptionCommand struct {
	UserID int64
	Tier   string
	Days   int64
}

// RenewSubscriptionUseCase replaces the tier and window of an existing
// subscription and charges the new price.
type RenewSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	ledger           PointLedger
	txMgr            TransactionRunner
	logger           logger.Interface
	opts             options
}

func NewRenewSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	ledger PointLedger,
	txMgr TransactionRunner,
	logger logger.Interface,
) *RenewSubscriptionUseCase {
	return &RenewSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		ledger:           ledger,
		txMgr:            txMgr,
		logger:           logger,
		opts:             defaultOptions(),
	}
}

func (uc *RenewSubscriptionUseCase) SetEventPublisher(publisher events.EventPublisher) {
	uc.opts.publisher = publisher
}

func (uc *RenewSubscriptionUseCase) SetRetryPolicy(policy db.RetryPolicy) {
	uc.opts.retry = policy
}

func (uc *RenewSubscriptionUseCase) SetClock(now func() time.Time) {
	uc.opts.now = now
}

func (uc *RenewSubscriptionUseCase) Execute(ctx context.Context, cmd RenewSubscriptionCommand) (*dto.PurchaseDTO, error) {
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
			res, err := uc.renewOnce(txCtx, userID, tier, cmd.Days)
			if err != nil {
				return err
			}
			result = res
			return nil
		})
	})
	if err != nil {
		uc.logger.Warnw("renew subscription failed", "user_id", userID, "tier", tier, "days", cmd.Days, "error", err)
		return nil, err
	}

	uc.logger.Infow("subscription renewed",
		"user_id", userID,
		"tier", tier,
		"end_date", result.EndDate,
		"price", result.Price,
	)
	return result, nil
}

func (uc *RenewSubscriptionUseCase) renewOnce(ctx context.Context, userID shared.UserID, tier vo.Tier, days int64) (*dto.PurchaseDTO, error) {
	now := uc.opts.now()

	current, err := loadOwned(ctx, uc.subscriptionRepo, userID)
	if err != nil {
		return nil, err
	}

	renewed, err := current.Renew(userID, tier, days, now)
	if err != nil {
		return nil, err
	}

	price := subscription.PriceOf(tier, days)
	paid, err := uc.ledger.Pay(ctx, userID, price, map[string]any{
		"tier":    tier.String(),
		"days":    days,
		"renewal": true,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.subscriptionRepo.Update(ctx, renewed); err != nil {
		return nil, err
	}

	uc.opts.publishAfterCommit(ctx, uc.logger, subscription.NewRenewedEvent(renewed, price, now))

	return &dto.PurchaseDTO{
		SubscriptionDTO: dto.ToSubscriptionDTO(renewed),
		Price:           price,
		Balance:         paid.Balance,
	}, nil
}
