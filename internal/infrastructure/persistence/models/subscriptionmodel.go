package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/cbnu/subscribe-service/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions.
// A user holds at most one row.
type SubscriptionModel struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint64    `gorm:"uniqueIndex:uk_subscription_user;not null"`
	Tier      string    `gorm:"not null;size:20"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null;index:idx_subscription_end_date"`
	Version   int       `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
