package wallet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name    string
		points  int64
		wantErr error
	}{
		{"zero", 0, nil},
		{"max", MaxPoints, nil},
		{"negative", -1, ErrInvalidAmount},
		{"above max", MaxPoints + 1, ErrPointLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoney(tt.points)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.points, m.Points())
		})
	}
}

func TestMoney_Recharge(t *testing.T) {
	tests := []struct {
		name    string
		start   int64
		delta   int64
		want    int64
		wantErr error
	}{
		{"simple", 1000, 500, 1500, nil},
		{"exactly max", 9_999_000, 1000, MaxPoints, nil},
		{"one over max", 1000, 9_999_500 + 1, 0, ErrPointLimitExceeded},
		{"no int64 overflow", 1, math.MaxInt64, 0, ErrPointLimitExceeded},
		{"negative delta", 10, -5, 0, ErrInvalidAmount},
		{"zero delta", 10, 0, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoney(tt.start)
			require.NoError(t, err)

			got, err := m.Recharge(tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.start, m.Points(), "receiver is unchanged")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Points())
		})
	}
}

func TestMoney_Debit(t *testing.T) {
	tests := []struct {
		name    string
		start   int64
		delta   int64
		want    int64
		wantErr error
	}{
		{"simple", 100, 40, 60, nil},
		{"to zero", 100, 100, 0, nil},
		{"below zero", 100, 150, 0, ErrPointBelowThreshold},
		{"negative delta", 100, -1, 0, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoney(tt.start)
			require.NoError(t, err)

			got, err := m.Debit(tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Points())
		})
	}
}

func TestMoney_RechargeThenDebitIsIdentity(t *testing.T) {
	for _, start := range []int64{0, 1, 4_999_999, MaxPoints - 7} {
		for _, delta := range []int64{0, 1, 7} {
			m, _ := NewMoney(start)
			up, err := m.Recharge(delta)
			require.NoError(t, err)
			down, err := up.Debit(delta)
			require.NoError(t, err)
			assert.Equal(t, m, down)
		}
	}
}
