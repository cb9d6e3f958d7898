package usecases

import (
	"context"
	"time"

	"github.com/cbnu/subscribe-service/internal/application/subscription/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type TerminateSubscriptionCommand struct {
	UserID int64
}

// TerminateSubscriptionUseCase refunds half the value of the unused days and
// deletes the subscription.
type TerminateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	ledger           PointLedger
	txMgr            TransactionRunner
	logger           logger.Interface
	opts             options
}

func NewTerminateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	ledger PointLedger,
	txMgr TransactionRunner,
	logger logger.Interface,
) *TerminateSubscriptionUseCase {
	return &TerminateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		ledger:           ledger,
		txMgr:            txMgr,
		logger:           logger,
		opts:             defaultOptions(),
	}
}

func (uc *TerminateSubscriptionUseCase) SetEventPublisher(publisher events.EventPublisher) {
	uc.opts.publisher = publisher
}

func (uc *TerminateSubscriptionUseCase) SetRetryPolicy(policy db.RetryPolicy) {
	uc.opts.retry = policy
}

func (uc *TerminateSubscriptionUseCase) SetClock(now func() time.Time) {
	uc.opts.now = now
}

func (uc *TerminateSubscriptionUseCase) Execute(ctx context.Context, cmd TerminateSubscriptionCommand) (*dto.TerminateResultDTO, error) {
	userID, err := shared.NewUserID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	var result *dto.TerminateResultDTO
	err = db.Retry(ctx, uc.opts.retry, isConflict, func(ctx context.Context) error {
		return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			res, err := uc.terminateOnce(txCtx, userID)
			if err != nil {
				return err
			}
			result = res
			return nil
		})
	})
	if err != nil {
		uc.logger.Warnw("terminate subscription failed", "user_id", userID, "error", err)
		return nil, err
	}

	uc.logger.Infow("subscription terminated", "user_id", userID, "refund", result.Refund)
	return result, nil
}

func (uc *TerminateSubscriptionUseCase) terminateOnce(ctx context.Context, userID shared.UserID) (*dto.TerminateResultDTO, error) {
	now := uc.opts.now()

	sub, err := loadOwned(ctx, uc.subscriptionRepo, userID)
	if err != nil {
		return nil, err
	}

	refund, err := sub.Refund(userID, now)
	if err != nil {
		return nil, err
	}

	credited, err := uc.ledger.Refund(ctx, userID, refund, map[string]any{
		"tier":            sub.Tier().String(),
		"subscription_id": sub.ID(),
	})
	if err != nil {
		return nil, err
	}

	if err := uc.subscriptionRepo.Delete(ctx, sub); err != nil {
		return nil, err
	}

	uc.opts.publishAfterCommit(ctx, uc.logger, subscription.NewTerminatedEvent(sub, refund, now))

	return &dto.TerminateResultDTO{
		UserID:          userID.Uint64(),
		PreviousBalance: credited.PreviousBalance,
		Refund:          refund,
		CurrentBalance:  credited.Balance,
	}, nil
}
