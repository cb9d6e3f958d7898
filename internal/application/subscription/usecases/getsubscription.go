package usecases

import (
	"context"

	"github.com/cbnu/subscribe-service/internal/application/subscription/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type GetSubscriptionQuery struct {
	UserID int64
}

type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, query GetSubscriptionQuery) (*dto.SubscriptionDTO, error) {
	userID, err := shared.NewUserID(query.UserID)
	if err != nil {
		return nil, err
	}

	sub, err := loadOwned(ctx, uc.subscriptionRepo, userID)
	if err != nil {
		return nil, err
	}

	out := dto.ToSubscriptionDTO(sub)
	return &out, nil
}
