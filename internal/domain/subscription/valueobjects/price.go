package valueobjects

import (
	"errors"
	"fmt"
)

const (
	MinDays int64 = 1
	// MaxDays caps a purchase at ten years so prices stay far below int64 limits.
	MaxDays int64 = 3650
)

var ErrInvalidDuration = errors.New("invalid subscription duration")

// ValidateDays checks the requested duration.
func ValidateDays(days int64) error {
	if days < MinDays || days > MaxDays {
		return fmt.Errorf("%w: %d days, must be between %d and %d", ErrInvalidDuration, days, MinDays, MaxDays)
	}
	return nil
}

// Price is dailyPrice × days × (100 − discount) / 100, truncated toward zero.
func Price(tier Tier, days int64) int64 {
	return tier.DailyPrice() * days * (100 - DiscountFor(days).Percent()) / 100
}
