package subscription

import (
	"context"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
)

// Repository persists subscriptions. GetByUserID returns (nil, nil) when the
// user holds no subscription.
type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	GetByUserID(ctx context.Context, userID shared.UserID) (*Subscription, error)
	ExistsByUserID(ctx context.Context, userID shared.UserID) (bool, error)
	// Update stores s if the persisted version is s.Version()-1.
	Update(ctx context.Context, s *Subscription) error
	// Delete removes s if the persisted version still equals s.Version().
	Delete(ctx context.Context, s *Subscription) error
}
