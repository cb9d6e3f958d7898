// Package subscription models a user's time-bounded tiered membership.
package subscription

import (
	"fmt"
	"time"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	vo "github.com/cbnu/subscribe-service/internal/domain/subscription/valueobjects"
)

const day = 24 * time.Hour

// Subscription is the aggregate root for one user's membership.
// Mutations return a copy one version ahead of the receiver.
type Subscription struct {
	id        uint
	userID    shared.UserID
	tier      vo.Tier
	startDate time.Time
	endDate   time.Time
	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewSubscription opens a window of days starting at now.
func NewSubscription(userID shared.UserID, tier vo.Tier, days int64, now time.Time) (*Subscription, error) {
	if userID == 0 {
		return nil, shared.ErrInvalidUserID
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("%w: %q", vo.ErrInvalidTier, tier)
	}
	if err := vo.ValidateDays(days); err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Subscription{
		userID:    userID,
		tier:      tier,
		startDate: now,
		endDate:   now.Add(time.Duration(days) * day),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(
	id uint,
	userID shared.UserID,
	tier vo.Tier,
	startDate, endDate time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if userID == 0 {
		return nil, shared.ErrInvalidUserID
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("%w: %q", vo.ErrInvalidTier, tier)
	}
	if !endDate.After(startDate) {
		return nil, ErrInvalidSubscriptionWindow
	}
	return &Subscription{
		id:        id,
		userID:    userID,
		tier:      tier,
		startDate: startDate,
		endDate:   endDate,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// PriceOf returns what a subscription of tier for days costs.
func PriceOf(tier vo.Tier, days int64) int64 {
	return vo.Price(tier, days)
}

// Renew replaces the tier and restarts the window at now.
func (s *Subscription) Renew(userID shared.UserID, tier vo.Tier, days int64, now time.Time) (*Subscription, error) {
	if err := s.verifyOwner(userID); err != nil {
		return nil, err
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("%w: %q", vo.ErrInvalidTier, tier)
	}
	if err := vo.ValidateDays(days); err != nil {
		return nil, err
	}

	now = now.UTC()
	next := *s
	next.tier = tier
	next.startDate = now
	next.endDate = now.Add(time.Duration(days) * day)
	next.version = s.version + 1
	next.updatedAt = now
	return &next, nil
}

// RemainingDays counts whole unused days at now. It fails once the window
// has ended.
func (s *Subscription) RemainingDays(now time.Time) (int64, error) {
	if s.endDate.Before(now) {
		return 0, fmt.Errorf("%w: ended at %s", ErrSubscriptionExpired, s.endDate.Format(time.RFC3339))
	}
	return int64(s.endDate.Sub(now) / day), nil
}

// Refund returns the points owed to userID for terminating at now.
func (s *Subscription) Refund(userID shared.UserID, now time.Time) (int64, error) {
	if err := s.verifyOwner(userID); err != nil {
		return 0, err
	}
	remaining, err := s.RemainingDays(now)
	if err != nil {
		return 0, err
	}
	return vo.Refund(s.tier, remaining), nil
}

// Verify checks whether userID may access content gated at requested.
func (s *Subscription) Verify(userID shared.UserID, requested vo.Tier) (vo.Authorization, error) {
	if err := s.verifyOwner(userID); err != nil {
		return vo.Unauthorized, err
	}
	if s.tier.Covers(requested) {
		return vo.Authorized, nil
	}
	return vo.Unauthorized, nil
}

func (s *Subscription) verifyOwner(userID shared.UserID) error {
	if s.userID != userID {
		return fmt.Errorf("%w: subscription belongs to %d, caller %d", shared.ErrWrongUserID, s.userID, userID)
	}
	return nil
}

// SetID sets the storage-assigned identifier (only for persistence layer use).
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) UserID() shared.UserID {
	return s.userID
}

func (s *Subscription) Tier() vo.Tier {
	return s.tier
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) EndDate() time.Time {
	return s.endDate
}

func (s *Subscription) Version() int {
	return s.version
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}
