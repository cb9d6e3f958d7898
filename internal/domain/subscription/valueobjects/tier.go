package valueobjects

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTier = errors.New("invalid subscription tier")

// Tier is the membership level of a subscription.
type Tier string

const (
	TierFree     Tier = "FREE"
	TierBasic    Tier = "BASIC"
	TierStandard Tier = "STANDARD"
	TierPremium  Tier = "PREMIUM"
)

// dailyPrices lists the per-day price of each tier in points.
var dailyPrices = map[Tier]int64{
	TierFree:     0,
	TierBasic:    500,
	TierStandard: 1000,
	TierPremium:  1500,
}

// ParseTier accepts tier names case-insensitively.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q, must be one of FREE, BASIC, STANDARD, PREMIUM", ErrInvalidTier, s)
	}
	return t, nil
}

// IsValid checks if the tier is one of the known tiers
func (t Tier) IsValid() bool {
	_, ok := dailyPrices[t]
	return ok
}

// DailyPrice returns the per-day price. Unknown tiers cost nothing.
func (t Tier) DailyPrice() int64 {
	return dailyPrices[t]
}

// Covers reports whether a holder of t may access content gated at requested.
// Only a strictly cheaper requested tier is covered.
func (t Tier) Covers(requested Tier) bool {
	return requested.DailyPrice() < t.DailyPrice()
}

func (t Tier) String() string {
	return string(t)
}
