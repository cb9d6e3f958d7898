package valueobjects

// RefundRate is the percentage of unused value returned on termination.
const RefundRate int64 = 50

// Refund returns the points owed for remainingDays unused days of tier.
func Refund(tier Tier, remainingDays int64) int64 {
	if remainingDays <= 0 {
		return 0
	}
	return remainingDays * tier.DailyPrice() * RefundRate / 100
}
