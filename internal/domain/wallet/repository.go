package wallet

import (
	"context"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
)

// Repository persists wallets. GetByUserID returns (nil, nil) when no wallet exists.
type Repository interface {
	Create(ctx context.Context, w *Wallet) error
	GetByUserID(ctx context.Context, userID shared.UserID) (*Wallet, error)
	ExistsByUserID(ctx context.Context, userID shared.UserID) (bool, error)
	// Update stores w if the persisted version is w.Version()-1, otherwise
	// it fails with shared.ErrConcurrentModification.
	Update(ctx context.Context, w *Wallet) error
}

// HistoryRepository stores the append-only point history.
type HistoryRepository interface {
	Append(ctx context.Context, entries ...*Entry) error
	ListByUserID(ctx context.Context, userID shared.UserID, page, pageSize int) ([]*Entry, int64, error)
}
