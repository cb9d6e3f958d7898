package usecases

import (
	"context"
	"fmt"

	"github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/shared/constants"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type ListPointHistoryQuery struct {
	UserID   int64
	Page     int
	PageSize int
}

// ListPointHistoryUseCase pages through a wallet's history, newest first.
type ListPointHistoryUseCase struct {
	walletRepo  wallet.Repository
	historyRepo wallet.HistoryRepository
	logger      logger.Interface
}

func NewListPointHistoryUseCase(
	walletRepo wallet.Repository,
	historyRepo wallet.HistoryRepository,
	logger logger.Interface,
) *ListPointHistoryUseCase {
	return &ListPointHistoryUseCase{
		walletRepo:  walletRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *ListPointHistoryUseCase) Execute(ctx context.Context, query ListPointHistoryQuery) (*dto.PointHistoryListDTO, error) {
	userID, err := shared.NewUserID(query.UserID)
	if err != nil {
		return nil, err
	}

	page, pageSize := query.Page, query.PageSize
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	exists, err := uc.walletRepo.ExistsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check wallet: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %d", wallet.ErrWalletNotFound, userID)
	}

	entries, total, err := uc.historyRepo.ListByUserID(ctx, userID, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list point history", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list point history: %w", err)
	}

	return &dto.PointHistoryListDTO{
		Items:    dto.ToPointHistoryDTOs(entries),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
