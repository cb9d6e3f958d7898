package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/cbnu/subscribe-service/internal/shared/constants"
)

// WalletModel is the persistence model for a user's point balance.
type WalletModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint64 `gorm:"uniqueIndex:uk_wallet_user;not null"`
	Balance   int64  `gorm:"not null;default:0"`
	Version   int    `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (WalletModel) TableName() string {
	return constants.TableWallets
}

// BeforeCreate hook for GORM
func (w *WalletModel) BeforeCreate(tx *gorm.DB) error {
	if w.Version == 0 {
		w.Version = 1
	}
	return nil
}
