// Package models contains the GORM persistence models.
package models

// All lists every model managed by the auto-migrate strategy.
func All() []interface{} {
	return []interface{}{
		&WalletModel{},
		&PointHistoryModel{},
		&SubscriptionModel{},
	}
}
