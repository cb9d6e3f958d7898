// Package subscription wires the subscription use cases behind one facade.
package subscription

import (
	"context"
	"time"

	"github.com/cbnu/subscribe-service/internal/application/subscription/dto"
	"github.com/cbnu/subscribe-service/internal/application/subscription/usecases"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type Service struct {
	subscribeUC *usecases.SubscribeUseCase
	renewUC     *usecases.RenewSubscriptionUseCase
	terminateUC *usecases.TerminateSubscriptionUseCase
	verifyUC    *usecases.VerifyAccessUseCase
	getUC       *usecases.GetSubscriptionUseCase
}

func NewService(
	subscriptionRepo subscription.Repository,
	ledger usecases.PointLedger,
	txMgr usecases.TransactionRunner,
	logger logger.Interface,
) *Service {
	return &Service{
		subscribeUC: usecases.NewSubscribeUseCase(subscriptionRepo, ledger, txMgr, logger),
		renewUC:     usecases.NewRenewSubscriptionUseCase(subscriptionRepo, ledger, txMgr, logger),
		terminateUC: usecases.NewTerminateSubscriptionUseCase(subscriptionRepo, ledger, txMgr, logger),
		verifyUC:    usecases.NewVerifyAccessUseCase(subscriptionRepo, logger),
		getUC:       usecases.NewGetSubscriptionUseCase(subscriptionRepo, logger),
	}
}

func (s *Service) SetEventPublisher(publisher events.EventPublisher) {
	s.subscribeUC.SetEventPublisher(publisher)
	s.renewUC.SetEventPublisher(publisher)
	s.terminateUC.SetEventPublisher(publisher)
}

func (s *Service) SetRetryPolicy(policy db.RetryPolicy) {
	s.subscribeUC.SetRetryPolicy(policy)
	s.renewUC.SetRetryPolicy(policy)
	s.terminateUC.SetRetryPolicy(policy)
}

// SetClock replaces the time source used to open, renew and refund windows.
func (s *Service) SetClock(now func() time.Time) {
	s.subscribeUC.SetClock(now)
	s.renewUC.SetClock(now)
	s.terminateUC.SetClock(now)
}

func (s *Service) Subscribe(ctx context.Context, userID int64, tier string, days int64) (*dto.PurchaseDTO, error) {
	return s.subscribeUC.Execute(ctx, usecases.SubscribeCommand{UserID: userID, Tier: tier, Days: days})
}

func (s *Service) Renew(ctx context.Context, userID int64, tier string, days int64) (*dto.PurchaseDTO, error) {
	return s.renewUC.Execute(ctx, usecases.RenewSubscriptionCommand{UserID: userID, Tier: tier, Days: days})
}

func (s *Service) Terminate(ctx context.Context, userID int64) (*dto.TerminateResultDTO, error) {
	return s.terminateUC.Execute(ctx, usecases.TerminateSubscriptionCommand{UserID: userID})
}

func (s *Service) Verify(ctx context.Context, userID int64, tier string) (*dto.VerifyResultDTO, error) {
	return s.verifyUC.Execute(ctx, usecases.VerifyAccessCommand{UserID: userID, Tier: tier})
}

func (s *Service) Get(ctx context.Context, userID int64) (*dto.SubscriptionDTO, error) {
	return s.getUC.Execute(ctx, usecases.GetSubscriptionQuery{UserID: userID})
}
