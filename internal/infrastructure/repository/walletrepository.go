package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/infrastructure/persistence/mappers"
	"github.com/cbnu/subscribe-service/internal/infrastructure/persistence/models"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type WalletRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.WalletMapper
	logger logger.Interface
}

func NewWalletRepository(db *gorm.DB, logger logger.Interface) wallet.Repository {
	return &WalletRepositoryImpl{
		db:     db,
		mapper: mappers.NewWalletMapper(),
		logger: logger,
	}
}

func (r *WalletRepositoryImpl) Create(ctx context.Context, w *wallet.Wallet) error {
	model := r.mapper.ToModel(w)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create wallet in database", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	if err := w.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set wallet ID", "error", err)
		return fmt.Errorf("failed to set wallet ID: %w", err)
	}

	r.logger.Infow("wallet created successfully", "id", model.ID, "user_id", model.UserID)
	return nil
}

func (r *WalletRepositoryImpl) GetByUserID(ctx context.Context, userID shared.UserID) (*wallet.Wallet, error) {
	var model models.WalletModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID.Uint64()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get wallet by user ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map wallet model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map wallet: %w", err)
	}
	return entity, nil
}

func (r *WalletRepositoryImpl) ExistsByUserID(ctx context.Context, userID shared.UserID) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.WalletModel{}).Where("user_id = ?", userID.Uint64()).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check wallet existence", "user_id", userID, "error", err)
		return false, fmt.Errorf("failed to check wallet existence: %w", err)
	}
	return count > 0, nil
}

// Update writes the new balance only if nobody bumped the version since w was loaded.
func (r *WalletRepositoryImpl) Update(ctx context.Context, w *wallet.Wallet) error {
	model := r.mapper.ToModel(w)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.WalletModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"balance":    model.Balance,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update wallet", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Warnw("wallet version conflict", "id", model.ID, "expected_version", model.Version-1)
		return fmt.Errorf("wallet %d: %w", model.ID, shared.ErrConcurrentModification)
	}

	r.logger.Debugw("wallet updated", "id", model.ID, "balance", model.Balance, "version", model.Version)
	return nil
}
