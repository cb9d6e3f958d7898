package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/infrastructure/persistence/mappers"
	"github.com/cbnu/subscribe-service/internal/infrastructure/persistence/models"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type PointHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PointHistoryMapper
	logger logger.Interface
}

func NewPointHistoryRepository(db *gorm.DB, logger logger.Interface) wallet.HistoryRepository {
	return &PointHistoryRepositoryImpl{
		db:     db,
		mapper: mappers.NewPointHistoryMapper(),
		logger: logger,
	}
}

func (r *PointHistoryRepositoryImpl) Append(ctx context.Context, entries ...*wallet.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := r.mapper.ToModels(entries)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&rows).Error; err != nil {
		r.logger.Errorw("failed to append point history", "count", len(rows), "error", err)
		return fmt.Errorf("failed to append point history: %w", err)
	}

	for i, row := range rows {
		entries[i].SetID(row.ID)
	}
	return nil
}

// ListByUserID returns the newest entries first.
func (r *PointHistoryRepositoryImpl) ListByUserID(ctx context.Context, userID shared.UserID, page, pageSize int) ([]*wallet.Entry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	owned := func() *gorm.DB {
		return tx.Model(&models.PointHistoryModel{}).Scopes(db.OwnedBy(uint(userID.Uint64())))
	}

	var total int64
	if err := owned().Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count point history", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to count point history: %w", err)
	}

	var rows []*models.PointHistoryModel
	if err := owned().
		Order("created_at DESC").
		Order("id DESC").
		Scopes(db.Paginate(page, pageSize)).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list point history", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to list point history: %w", err)
	}

	entries, err := r.mapper.ToEntities(rows)
	if err != nil {
		r.logger.Errorw("failed to map point history", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to map point history: %w", err)
	}
	return entries, total, nil
}
