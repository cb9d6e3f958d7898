package usecases

import (
	"context"
	"fmt"

	"github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type LoadWalletQuery struct {
	UserID int64
}

// LoadWalletUseCase reads a balance, preferring the balance cache.
type LoadWalletUseCase struct {
	walletRepo wallet.Repository
	cache      BalanceCache
	logger     logger.Interface
}

func NewLoadWalletUseCase(walletRepo wallet.Repository, logger logger.Interface) *LoadWalletUseCase {
	return &LoadWalletUseCase{
		walletRepo: walletRepo,
		logger:     logger,
	}
}

func (uc *LoadWalletUseCase) SetBalanceCache(cache BalanceCache) {
	uc.cache = cache
}

func (uc *LoadWalletUseCase) Execute(ctx context.Context, query LoadWalletQuery) (*dto.WalletDTO, error) {
	userID, err := shared.NewUserID(query.UserID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		snap, found, err := uc.cache.Get(ctx, userID)
		if err != nil {
			uc.logger.Warnw("balance cache read failed, falling back to database", "user_id", userID, "error", err)
		} else if found {
			return &dto.WalletDTO{UserID: userID.Uint64(), Balance: snap.Balance, Version: snap.Version}, nil
		}
	}

	w, err := uc.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get wallet", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: user %d", wallet.ErrWalletNotFound, userID)
	}

	// a write may have committed since the read; Put keeps the newer entry
	if uc.cache != nil {
		if err := uc.cache.Put(ctx, userID, w.Snapshot()); err != nil {
			uc.logger.Warnw("failed to cache balance", "user_id", userID, "error", err)
		}
	}
	return dto.ToWalletDTO(w), nil
}
