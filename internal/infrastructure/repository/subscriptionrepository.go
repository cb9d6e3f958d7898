package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	"github.com/cbnu/subscribe-service/internal/infrastructure/persistence/mappers"
	"github.com/cbnu/subscribe-service/internal/infrastructure/persistence/models"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set subscription ID", "error", err)
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created successfully", "id", model.ID, "user_id", model.UserID, "tier", model.Tier)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByUserID(ctx context.Context, userID shared.UserID) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID.Uint64()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by user ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map subscription model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}
	return entity, nil
}

func (r *SubscriptionRepositoryImpl) ExistsByUserID(ctx context.Context, userID shared.UserID) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.SubscriptionModel{}).Where("user_id = ?", userID.Uint64()).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check subscription existence", "user_id", userID, "error", err)
		return false, fmt.Errorf("failed to check subscription existence: %w", err)
	}
	return count > 0, nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SubscriptionModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"tier":       model.Tier,
			"start_date": model.StartDate,
			"end_date":   model.EndDate,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Warnw("subscription version conflict", "id", model.ID, "expected_version", model.Version-1)
		return fmt.Errorf("subscription %d: %w", model.ID, shared.ErrConcurrentModification)
	}

	r.logger.Infow("subscription updated successfully", "id", model.ID, "tier", model.Tier)
	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, s *subscription.Subscription) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("id = ? AND version = ?", s.ID(), s.Version()).Delete(&models.SubscriptionModel{})

	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "id", s.ID(), "error", result.Error)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Warnw("subscription version conflict on delete", "id", s.ID(), "version", s.Version())
		return fmt.Errorf("subscription %d: %w", s.ID(), shared.ErrConcurrentModification)
	}

	r.logger.Infow("subscription deleted successfully", "id", s.ID())
	return nil
}
