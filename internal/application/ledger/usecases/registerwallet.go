package usecases

import (
	"context"
	"fmt"

	"github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/shared/biztime"
	"github.com/cbnu/subscribe-service/internal/shared/errors"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type RegisterWalletCommand struct {
	UserID int64
}

// RegisterWalletUseCase creates an empty wallet. Registering twice is a no-op
// that returns the existing wallet.
type RegisterWalletUseCase struct {
	walletRepo wallet.Repository
	logger     logger.Interface
}

func NewRegisterWalletUseCase(walletRepo wallet.Repository, logger logger.Interface) *RegisterWalletUseCase {
	return &RegisterWalletUseCase{
		walletRepo: walletRepo,
		logger:     logger,
	}
}

func (uc *RegisterWalletUseCase) Execute(ctx context.Context, cmd RegisterWalletCommand) (*dto.WalletDTO, error) {
	userID, err := shared.NewUserID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get wallet", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if existing != nil {
		return dto.ToWalletDTO(existing), nil
	}

	w, err := wallet.NewWallet(userID, biztime.NowUTC())
	if err != nil {
		return nil, err
	}

	if err := uc.walletRepo.Create(ctx, w); err != nil {
		// lost a concurrent register for the same user
		if errors.IsDuplicateError(err) {
			return uc.loadExisting(ctx, userID)
		}
		uc.logger.Errorw("failed to create wallet", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	uc.logger.Infow("wallet registered", "user_id", userID, "wallet_id", w.ID())
	return dto.ToWalletDTO(w), nil
}

func (uc *RegisterWalletUseCase) loadExisting(ctx context.Context, userID shared.UserID) (*dto.WalletDTO, error) {
	w, err := uc.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: user %d", wallet.ErrWalletNotFound, userID)
	}
	return dto.ToWalletDTO(w), nil
}
