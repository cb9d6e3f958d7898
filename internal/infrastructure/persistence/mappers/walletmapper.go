// Package mappers converts between domain aggregates and persistence models.
package mappers

import (
	"fmt"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/infrastructure/persistence/models"
)

type WalletMapper interface {
	ToEntity(model *models.WalletModel) (*wallet.Wallet, error)
	ToModel(entity *wallet.Wallet) *models.WalletModel
}

type WalletMapperImpl struct{}

func NewWalletMapper() WalletMapper {
	return &WalletMapperImpl{}
}

func (m *WalletMapperImpl) ToEntity(model *models.WalletModel) (*wallet.Wallet, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := wallet.ReconstructWallet(
		model.ID,
		shared.UserID(model.UserID),
		model.Balance,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct wallet %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *WalletMapperImpl) ToModel(entity *wallet.Wallet) *models.WalletModel {
	if entity == nil {
		return nil
	}
	return &models.WalletModel{
		ID:        entity.ID(),
		UserID:    entity.UserID().Uint64(),
		Balance:   entity.Balance().Points(),
		Version:   entity.Version(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}
