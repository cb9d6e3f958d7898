package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	ledgerdto "github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	vo "github.com/cbnu/subscribe-service/internal/domain/subscription/valueobjects"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

func newTerminateUseCase(repo *mockSubscriptionRepository, ledger *mockPointLedger, pub *mockEventPublisher, now time.Time) *TerminateSubscriptionUseCase {
	uc := NewTerminateSubscriptionUseCase(repo, ledger, &passThroughTx{}, logger.NewDiscardLogger())
	uc.SetEventPublisher(pub)
	uc.opts.now = func() time.Time { return now }
	return uc
}

func TestTerminateSubscriptionUseCase_RefundsHalfOfUnusedDays(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	ledger := new(mockPointLedger)
	pub := new(mockEventPublisher)

	sub := storedSubscription(1, vo.TierBasic, fixedNow, 10, 1)
	repo.On("GetByUserID", mock.Anything, shared.UserID(1)).Return(sub, nil)
	ledger.On("Refund", mock.Anything, shared.UserID(1), int64(2500), mock.Anything).
		Return(&ledgerdto.BalanceChangeDTO{UserID: 1, Amount: 2500, PreviousBalance: 5000, Balance: 7500}, nil)
	repo.On("Delete", mock.Anything, sub).Return(nil)
	pub.On("Publish", eventOfType(subscription.EventTypeTerminated)).Return(nil)

	got, err := newTerminateUseCase(repo, ledger, pub, fixedNow).Execute(context.Background(),
		TerminateSubscriptionCommand{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(5000), got.PreviousBalance)
	assert.Equal(t, int64(2500), got.Refund)
	assert.Equal(t, int64(7500), got.CurrentBalance)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestTerminateSubscriptionUseCase_Expired(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	ledger := new(mockPointLedger)

	sub := storedSubscription(1, vo.TierBasic, fixedNow.AddDate(0, 0, -30), 10, 1)
	repo.On("GetByUserID", mock.Anything, shared.UserID(1)).Return(sub, nil)

	_, err := newTerminateUseCase(repo, ledger, new(mockEventPublisher), fixedNow).Execute(context.Background(),
		TerminateSubscriptionCommand{UserID: 1})

	assert.ErrorIs(t, err, subscription.ErrSubscriptionExpired)
	ledger.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTerminateSubscriptionUseCase_NotFound(t *testing.T) {
	repo := new(mockSubscriptionRepository)
	repo.On("GetByUserID", mock.Anything, shared.UserID(2)).Return(nil, nil)

	_, err := newTerminateUseCase(repo, new(mockPointLedger), new(mockEventPublisher), fixedNow).Execute(context.Background(),
		TerminateSubscriptionCommand{UserID: 2})

	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
}
