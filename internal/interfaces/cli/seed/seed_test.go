package seed

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ledgerDTO "github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	subscriptionDTO "github.com/cbnu/subscribe-service/internal/application/subscription/dto"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
)

const sampleFixture = `
wallets:
  - user_id: 1
    recharge: 20000
  - user_id: 2
subscriptions:
  - user_id: 1
    tier: standard
    days: 30
  - user_id: 1
    tier: basic
    days: 5
`

func TestParseFixture(t *testing.T) {
	f, err := ParseFixture([]byte(sampleFixture))
	require.NoError(t, err)

	require.Len(t, f.Wallets, 2)
	assert.Equal(t, WalletSeed{UserID: 1, Recharge: 20000}, f.Wallets[0])
	assert.Equal(t, int64(0), f.Wallets[1].Recharge)
	require.Len(t, f.Subscriptions, 2)
	assert.Equal(t, SubscriptionSeed{UserID: 1, Tier: "standard", Days: 30}, f.Subscriptions[0])
}

func TestParseFixture_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "wallets: []\n", "empty"},
		{"bad user", "wallets:\n  - user_id: 0\n", "wallets[0]: user_id"},
		{"negative recharge", "wallets:\n  - user_id: 3\n    recharge: -5\n", "recharge must not be negative"},
		{"missing tier", "subscriptions:\n  - user_id: 3\n    days: 1\n", "tier is required"},
		{"malformed", "wallets: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFixture([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

type fakeLedger struct {
	balances map[int64]int64
}

func (l *fakeLedger) RegisterWallet(_ context.Context, userID int64) (*ledgerDTO.WalletDTO, error) {
	if _, ok := l.balances[userID]; !ok {
		l.balances[userID] = 0
	}
	return &ledgerDTO.WalletDTO{UserID: uint64(userID), Balance: l.balances[userID]}, nil
}

func (l *fakeLedger) Recharge(_ context.Context, userID, amount int64) (*ledgerDTO.BalanceChangeDTO, error) {
	prev := l.balances[userID]
	l.balances[userID] = prev + amount
	return &ledgerDTO.BalanceChangeDTO{UserID: uint64(userID), Amount: amount, PreviousBalance: prev, Balance: prev + amount}, nil
}

type fakeSubscriber struct {
	active map[int64]bool
}

func (s *fakeSubscriber) Subscribe(_ context.Context, userID int64, tier string, days int64) (*subscriptionDTO.PurchaseDTO, error) {
	if s.active[userID] {
		return nil, fmt.Errorf("%w: user %d", subscription.ErrSubscriptionAlreadyExists, userID)
	}
	s.active[userID] = true
	return &subscriptionDTO.PurchaseDTO{
		SubscriptionDTO: subscriptionDTO.SubscriptionDTO{UserID: uint64(userID), Tier: "STANDARD", EndDate: "2026-02-01"},
		Price:           28500,
	}, nil
}

func TestApply(t *testing.T) {
	f, err := ParseFixture([]byte(sampleFixture))
	require.NoError(t, err)

	points := &fakeLedger{balances: map[int64]int64{}}
	subs := &fakeSubscriber{active: map[int64]bool{}}

	var out bytes.Buffer
	require.NoError(t, Apply(context.Background(), &out, points, subs, f))

	assert.Equal(t, int64(20000), points.balances[1])
	assert.Contains(t, points.balances, int64(2))
	assert.Contains(t, out.String(), "wallet 1 recharged to 20000")
	assert.Contains(t, out.String(), "wallet 2 registered")
	assert.Contains(t, out.String(), "subscription 1: STANDARD until 2026-02-01")
	assert.Contains(t, out.String(), "subscription for 1 exists, skipped")
}
