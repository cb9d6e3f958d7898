package usecases

import (
	"context"

	"github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
)

type UsePointCommand struct {
	UserID int64
	Amount int64
	Reason string
}

type UsePointUseCase struct {
	changer *BalanceChanger
}

func NewUsePointUseCase(changer *BalanceChanger) *UsePointUseCase {
	return &UsePointUseCase{changer: changer}
}

func (uc *UsePointUseCase) Execute(ctx context.Context, cmd UsePointCommand) (*dto.BalanceChangeDTO, error) {
	userID, err := shared.NewUserID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	var metadata map[string]any
	if cmd.Reason != "" {
		metadata = map[string]any{"reason": cmd.Reason}
	}
	return uc.changer.Apply(ctx, BalanceChange{
		UserID:    userID,
		Amount:    cmd.Amount,
		EntryType: wallet.EntryTypeUse,
		Metadata:  metadata,
	})
}
