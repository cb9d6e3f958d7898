package models

import (
	"strconv"
	"time"

	"gorm.io/datatypes"

	"github.com/cbnu/subscribe-service/internal/shared/constants"
)

// PointHistoryModel is one row of the append-only point history.
type PointHistoryModel struct {
	ID                 uint    `gorm:"primarykey"`
	WalletID           uint    `gorm:"not null;index:idx_point_history_wallet"`
	UserID             uint64  `gorm:"not null;index:idx_point_history_user,priority:1"`
	EntryType          string  `gorm:"not null;size:32"`
	Amount             int64   `gorm:"not null"`
	BalanceAfter       int64   `gorm:"not null"`
	CounterpartyUserID *uint64 `gorm:"index:idx_point_history_counterparty"`
	Metadata           datatypes.JSONMap
	CreatedAt          time.Time `gorm:"not null;index:idx_point_history_user,priority:2"`
}

// TableName specifies the table name for GORM
func (PointHistoryModel) TableName() string {
	return constants.TablePointHistories
}

// Key identifies the row in mapping errors.
func (m *PointHistoryModel) Key() string {
	return "point_history#" + strconv.FormatUint(uint64(m.ID), 10)
}
