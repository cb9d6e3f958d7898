package wallet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newStoredWallet(t *testing.T, id uint, userID shared.UserID, points int64) *Wallet {
	t.Helper()
	w, err := ReconstructWallet(id, userID, points, 1, testNow, testNow)
	require.NoError(t, err)
	return w
}

func TestNewWallet(t *testing.T) {
	w, err := NewWallet(1, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.Balance().Points())
	assert.Equal(t, 1, w.Version())
	assert.Zero(t, w.ID())

	_, err = NewWallet(0, testNow)
	assert.ErrorIs(t, err, shared.ErrInvalidUserID)
}

func TestReconstructWallet_RejectsOutOfRangeBalance(t *testing.T) {
	_, err := ReconstructWallet(1, 1, MaxPoints+1, 1, testNow, testNow)
	assert.ErrorIs(t, err, ErrPointLimitExceeded)

	_, err = ReconstructWallet(0, 1, 0, 1, testNow, testNow)
	assert.Error(t, err)
}

func TestWallet_SetID(t *testing.T) {
	w, err := NewWallet(1, testNow)
	require.NoError(t, err)

	require.NoError(t, w.SetID(10))
	assert.Equal(t, uint(10), w.ID())
	assert.Error(t, w.SetID(11))
}

func TestWallet_RechargeScenario(t *testing.T) {
	w := newStoredWallet(t, 1, 1, 0)

	w, err := w.Recharge(1, 1000, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), w.Balance().Points())
	assert.Equal(t, 2, w.Version())

	_, err = w.Recharge(1, 9_999_500, testNow)
	assert.ErrorIs(t, err, ErrPointLimitExceeded)
	assert.Equal(t, int64(1000), w.Balance().Points())
}

func TestWallet_DebitBelowThresholdLeavesBalance(t *testing.T) {
	w := newStoredWallet(t, 1, 1, 100)

	next, err := w.Debit(1, 150, testNow)

	assert.ErrorIs(t, err, ErrPointBelowThreshold)
	assert.Nil(t, next)
	assert.Equal(t, int64(100), w.Balance().Points())
	assert.Equal(t, 1, w.Version())
}

func TestWallet_MutationsAreCopyOnWrite(t *testing.T) {
	w := newStoredWallet(t, 1, 1, 100)
	later := testNow.Add(time.Hour)

	next, err := w.Debit(1, 30, later)
	require.NoError(t, err)

	assert.Equal(t, int64(100), w.Balance().Points())
	assert.Equal(t, 1, w.Version())
	assert.Equal(t, int64(70), next.Balance().Points())
	assert.Equal(t, 2, next.Version())
	assert.Equal(t, w.ID(), next.ID())
	assert.Equal(t, later, next.UpdatedAt())
	assert.Equal(t, testNow, next.CreatedAt())
}

func TestWallet_WrongUser(t *testing.T) {
	w := newStoredWallet(t, 1, 1, 100)

	_, err := w.Recharge(2, 10, testNow)
	assert.ErrorIs(t, err, shared.ErrWrongUserID)

	_, err = w.Debit(2, 10, testNow)
	assert.ErrorIs(t, err, shared.ErrWrongUserID)
}

func TestTransfer(t *testing.T) {
	tests := []struct {
		name     string
		from, to int64
		amount   int64
		wantFrom int64
		wantTo   int64
		wantErr  error
	}{
		{"moves points", 500, 200, 300, 200, 500, nil},
		{"whole balance", 500, 0, 500, 0, 500, nil},
		{"insufficient source", 100, 0, 150, 0, 0, ErrPointBelowThreshold},
		{"destination overflow", 500, MaxPoints - 100, 101, 0, 0, ErrPointLimitExceeded},
		{"negative amount", 500, 0, -1, 0, 0, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newStoredWallet(t, 1, 1, tt.from)
			b := newStoredWallet(t, 2, 2, tt.to)

			gotA, gotB, err := Transfer(a, b, tt.amount, testNow)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, gotA)
				assert.Nil(t, gotB)
				assert.Equal(t, tt.from, a.Balance().Points())
				assert.Equal(t, tt.to, b.Balance().Points())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, gotA.Balance().Points())
			assert.Equal(t, tt.wantTo, gotB.Balance().Points())
			assert.Equal(t, tt.from+tt.to, gotA.Balance().Points()+gotB.Balance().Points())
		})
	}
}

func TestTransfer_SameWallet(t *testing.T) {
	a := newStoredWallet(t, 1, 1, 500)

	_, _, err := Transfer(a, a, 10, testNow)
	assert.ErrorIs(t, err, ErrSameWallet)
}

func TestNewEntry(t *testing.T) {
	w := newStoredWallet(t, 3, 7, 250)

	e, err := NewEntry(w, EntryTypePresentIn, 50, testNow)
	require.NoError(t, err)
	e.WithCounterparty(9).WithMetadata("note", "gift")

	assert.Equal(t, uint(3), e.WalletID())
	assert.Equal(t, shared.UserID(7), e.UserID())
	assert.Equal(t, int64(250), e.BalanceAfter())
	require.NotNil(t, e.Counterparty())
	assert.Equal(t, shared.UserID(9), *e.Counterparty())
	assert.Equal(t, "gift", e.Metadata()["note"])
	assert.True(t, e.Type().IsCredit())

	_, err = NewEntry(w, EntryType("bonus"), 1, testNow)
	assert.ErrorIs(t, err, ErrInvalidEntryType)
}
