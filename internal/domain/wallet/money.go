package wallet

import (
	"fmt"
	"strconv"
)

const (
	// MinPoints is the lowest balance a wallet may hold.
	MinPoints int64 = 0
	// MaxPoints is the highest balance a wallet may hold.
	MaxPoints int64 = 10_000_000
)

// Money is an immutable point balance bounded by [MinPoints, MaxPoints].
type Money struct {
	points int64
}

// NewMoney builds a balance. Values outside the bounds are rejected.
func NewMoney(points int64) (Money, error) {
	if points < MinPoints {
		return Money{}, fmt.Errorf("%w: %d", ErrInvalidAmount, points)
	}
	if points > MaxPoints {
		return Money{}, fmt.Errorf("%w: %d", ErrPointLimitExceeded, points)
	}
	return Money{points: points}, nil
}

// ZeroMoney is the balance of a freshly registered wallet.
func ZeroMoney() Money {
	return Money{}
}

// Points returns the raw balance.
func (m Money) Points() int64 {
	return m.points
}

// Recharge returns m+delta.
func (m Money) Recharge(delta int64) (Money, error) {
	if delta < 0 {
		return m, fmt.Errorf("%w: %d", ErrInvalidAmount, delta)
	}
	// compare against the headroom so huge deltas cannot overflow int64
	if delta > MaxPoints-m.points {
		return m, fmt.Errorf("%w: balance %d, recharge %d, max %d", ErrPointLimitExceeded, m.points, delta, MaxPoints)
	}
	return Money{points: m.points + delta}, nil
}

// Debit returns m-delta.
func (m Money) Debit(delta int64) (Money, error) {
	if delta < 0 {
		return m, fmt.Errorf("%w: %d", ErrInvalidAmount, delta)
	}
	if delta > m.points-MinPoints {
		return m, fmt.Errorf("%w: balance %d, debit %d", ErrPointBelowThreshold, m.points, delta)
	}
	return Money{points: m.points - delta}, nil
}

func (m Money) String() string {
	return strconv.FormatInt(m.points, 10)
}
