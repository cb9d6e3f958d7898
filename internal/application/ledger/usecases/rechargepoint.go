package usecases

import (
	"context"

	"github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
)

type RechargePointCommand struct {
	UserID int64
	Amount int64
}

type RechargePointUseCase struct {
	changer *BalanceChanger
}

func NewRechargePointUseCase(changer *BalanceChanger) *RechargePointUseCase {
	return &RechargePointUseCase{changer: changer}
}

func (uc *RechargePointUseCase) Execute(ctx context.Context, cmd RechargePointCommand) (*dto.BalanceChangeDTO, error) {
	userID, err := shared.NewUserID(cmd.UserID)
	if err != nil {
		return nil, err
	}
	return uc.changer.Apply(ctx, BalanceChange{
		UserID:    userID,
		Amount:    cmd.Amount,
		EntryType: wallet.EntryTypeRecharge,
	})
}
