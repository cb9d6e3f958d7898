package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	ledgerdto "github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	vo "github.com/cbnu/subscribe-service/internal/domain/subscription/valueobjects"
)

var fixedNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

type mockSubscriptionRepository struct {
	mock.Mock
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		_ = s.SetID(77)
	}
	return args.Error(0)
}

func (m *mockSubscriptionRepository) GetByUserID(ctx context.Context, userID shared.UserID) (*subscription.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) ExistsByUserID(ctx context.Context, userID shared.UserID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) Delete(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type mockPointLedger struct {
	mock.Mock
}

func (m *mockPointLedger) Pay(ctx context.Context, userID shared.UserID, amount int64, metadata map[string]any) (*ledgerdto.BalanceChangeDTO, error) {
	args := m.Called(ctx, userID, amount, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerdto.BalanceChangeDTO), args.Error(1)
}

func (m *mockPointLedger) Refund(ctx context.Context, userID shared.UserID, amount int64, metadata map[string]any) (*ledgerdto.BalanceChangeDTO, error) {
	args := m.Called(ctx, userID, amount, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerdto.BalanceChangeDTO), args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

type passThroughTx struct {
	calls int
}

func (p *passThroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func storedSubscription(userID shared.UserID, tier vo.Tier, start time.Time, days int, version int) *subscription.Subscription {
	s, err := subscription.ReconstructSubscription(5, userID, tier, start, start.AddDate(0, 0, days), version, start, start)
	if err != nil {
		panic(err)
	}
	return s
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e events.DomainEvent) bool {
		return e.GetEventType() == eventType
	})
}
