package usecases

import (
	"context"

	"github.com/cbnu/subscribe-service/internal/application/subscription/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	vo "github.com/cbnu/subscribe-service/internal/domain/subscription/valueobjects"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type VerifyAccessCommand struct {
	UserID int64
	Tier   string
}

// VerifyAccessUseCase checks whether the user's subscription covers content
// gated at the requested tier.
type VerifyAccessUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewVerifyAccessUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *VerifyAccessUseCase {
	return &VerifyAccessUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *VerifyAccessUseCase) Execute(ctx context.Context, cmd VerifyAccessCommand) (*dto.VerifyResultDTO, error) {
	userID, err := shared.NewUserID(cmd.UserID)
	if err != nil {
		return nil, err
	}
	requested, err := vo.ParseTier(cmd.Tier)
	if err != nil {
		return nil, err
	}

	sub, err := loadOwned(ctx, uc.subscriptionRepo, userID)
	if err != nil {
		return nil, err
	}

	auth, err := sub.Verify(userID, requested)
	if err != nil {
		return nil, err
	}

	if !auth.IsAuthorized() {
		uc.logger.Infow("access denied", "user_id", userID, "held", sub.Tier(), "requested", requested)
	} else {
		uc.logger.Debugw("access granted", "user_id", userID, "held", sub.Tier(), "requested", requested)
	}
	return &dto.VerifyResultDTO{
		UserID:        userID.Uint64(),
		Authorization: auth.String(),
	}, nil
}
