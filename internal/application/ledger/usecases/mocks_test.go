package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type mockWalletRepository struct {
	mock.Mock
}

func (m *mockWalletRepository) Create(ctx context.Context, w *wallet.Wallet) error {
	args := m.Called(ctx, w)
	if args.Error(0) == nil {
		_ = w.SetID(100)
	}
	return args.Error(0)
}

func (m *mockWalletRepository) GetByUserID(ctx context.Context, userID shared.UserID) (*wallet.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *mockWalletRepository) ExistsByUserID(ctx context.Context, userID shared.UserID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockWalletRepository) Update(ctx context.Context, w *wallet.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

type mockHistoryRepository struct {
	mock.Mock
}

func (m *mockHistoryRepository) Append(ctx context.Context, entries ...*wallet.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *mockHistoryRepository) ListByUserID(ctx context.Context, userID shared.UserID, page, pageSize int) ([]*wallet.Entry, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*wallet.Entry), args.Get(1).(int64), args.Error(2)
}

type mockBalanceCache struct {
	mock.Mock
}

func (m *mockBalanceCache) Get(ctx context.Context, userID shared.UserID) (wallet.BalanceSnapshot, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(wallet.BalanceSnapshot), args.Bool(1), args.Error(2)
}

func (m *mockBalanceCache) Put(ctx context.Context, userID shared.UserID, snap wallet.BalanceSnapshot) error {
	args := m.Called(ctx, userID, snap)
	return args.Error(0)
}

func (m *mockBalanceCache) Invalidate(ctx context.Context, userID shared.UserID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// passThroughTx runs fn without a real transaction, so after-commit hooks fire immediately.
type passThroughTx struct {
	calls int
}

func (p *passThroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func storedWallet(userID shared.UserID, points int64, version int) *wallet.Wallet {
	w, err := wallet.ReconstructWallet(uint(userID), userID, points, version, fixedNow, fixedNow)
	if err != nil {
		panic(err)
	}
	return w
}

func walletWith(points int64, version int) interface{} {
	return mock.MatchedBy(func(w *wallet.Wallet) bool {
		return w.Balance().Points() == points && w.Version() == version
	})
}
