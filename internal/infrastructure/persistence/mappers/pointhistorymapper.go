package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/infrastructure/persistence/models"
	"github.com/cbnu/subscribe-service/internal/shared/mapper"
)

type PointHistoryMapper interface {
	ToEntity(model *models.PointHistoryModel) (*wallet.Entry, error)
	ToModel(entity *wallet.Entry) *models.PointHistoryModel
	ToEntities(models []*models.PointHistoryModel) ([]*wallet.Entry, error)
	ToModels(entities []*wallet.Entry) []*models.PointHistoryModel
}

type PointHistoryMapperImpl struct{}

func NewPointHistoryMapper() PointHistoryMapper {
	return &PointHistoryMapperImpl{}
}

func (m *PointHistoryMapperImpl) ToEntity(model *models.PointHistoryModel) (*wallet.Entry, error) {
	if model == nil {
		return nil, nil
	}

	entryType := wallet.EntryType(model.EntryType)
	if !entryType.IsValid() {
		return nil, fmt.Errorf("%w: %q", wallet.ErrInvalidEntryType, model.EntryType)
	}

	var counterparty *shared.UserID
	if model.CounterpartyUserID != nil {
		id := shared.UserID(*model.CounterpartyUserID)
		counterparty = &id
	}

	return wallet.ReconstructEntry(
		model.ID,
		model.WalletID,
		shared.UserID(model.UserID),
		entryType,
		model.Amount,
		model.BalanceAfter,
		counterparty,
		map[string]any(model.Metadata),
		model.CreatedAt,
	), nil
}

func (m *PointHistoryMapperImpl) ToModel(entity *wallet.Entry) *models.PointHistoryModel {
	if entity == nil {
		return nil
	}

	var counterparty *uint64
	if cp := entity.Counterparty(); cp != nil {
		id := cp.Uint64()
		counterparty = &id
	}

	var metadata datatypes.JSONMap
	if md := entity.Metadata(); len(md) > 0 {
		metadata = datatypes.JSONMap(md)
	}

	return &models.PointHistoryModel{
		ID:                 entity.ID(),
		WalletID:           entity.WalletID(),
		UserID:             entity.UserID().Uint64(),
		EntryType:          string(entity.Type()),
		Amount:             entity.Amount(),
		BalanceAfter:       entity.BalanceAfter(),
		CounterpartyUserID: counterparty,
		Metadata:           metadata,
		CreatedAt:          entity.CreatedAt(),
	}
}

func (m *PointHistoryMapperImpl) ToEntities(items []*models.PointHistoryModel) ([]*wallet.Entry, error) {
	return mapper.MapRows(items, m.ToEntity)
}

func (m *PointHistoryMapperImpl) ToModels(entities []*wallet.Entry) []*models.PointHistoryModel {
	return mapper.MapSlice(entities, m.ToModel)
}
