package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{"PREMIUM", TierPremium, false},
		{"basic", TierBasic, false},
		{" Standard ", TierStandard, false},
		{"free", TierFree, false},
		{"GOLD", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTier(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTier_DailyPrice(t *testing.T) {
	assert.Equal(t, int64(0), TierFree.DailyPrice())
	assert.Equal(t, int64(500), TierBasic.DailyPrice())
	assert.Equal(t, int64(1000), TierStandard.DailyPrice())
	assert.Equal(t, int64(1500), TierPremium.DailyPrice())
}

func TestTier_Covers(t *testing.T) {
	tests := []struct {
		held, requested Tier
		want            bool
	}{
		{TierPremium, TierBasic, true},
		{TierStandard, TierFree, true},
		{TierBasic, TierBasic, false},
		{TierBasic, TierPremium, false},
		{TierFree, TierFree, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.held)+"/"+string(tt.requested), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.held.Covers(tt.requested))
		})
	}
}

func TestDiscountFor(t *testing.T) {
	tests := []struct {
		days int64
		want Discount
	}{
		{1, DiscountNone},
		{29, DiscountNone},
		{30, DiscountOneMonth},
		{59, DiscountOneMonth},
		{60, DiscountTwoMonth},
		{89, DiscountTwoMonth},
		{90, DiscountThreeMonth},
		{119, DiscountThreeMonth},
		{120, DiscountLongTerm},
		{3650, DiscountLongTerm},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DiscountFor(tt.days), "days=%d", tt.days)
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		days int64
		want int64
	}{
		{"basic ten days", TierBasic, 10, 5000},
		{"premium 35 days", TierPremium, 35, 49_875},
		{"standard 60 days", TierStandard, 60, 54_000},
		{"standard 90 days", TierStandard, 90, 72_000},
		{"basic 120 days", TierBasic, 120, 42_000},
		{"free", TierFree, 365, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Price(tt.tier, tt.days))
		})
	}
}

func TestValidateDays(t *testing.T) {
	assert.NoError(t, ValidateDays(1))
	assert.NoError(t, ValidateDays(MaxDays))
	assert.ErrorIs(t, ValidateDays(0), ErrInvalidDuration)
	assert.ErrorIs(t, ValidateDays(-3), ErrInvalidDuration)
	assert.ErrorIs(t, ValidateDays(MaxDays+1), ErrInvalidDuration)
}

func TestRefund(t *testing.T) {
	assert.Equal(t, int64(2500), Refund(TierBasic, 10))
	assert.Equal(t, int64(750), Refund(TierPremium, 1))
	assert.Equal(t, int64(0), Refund(TierPremium, 0))
	assert.Equal(t, int64(0), Refund(TierPremium, -2))
}
