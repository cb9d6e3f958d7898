// Package shared holds value objects and errors used by more than one bounded context.
package shared

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidUserID = errors.New("user id must be a positive integer")
	// ErrWrongUserID is returned when an aggregate is touched on behalf of another user.
	ErrWrongUserID = errors.New("user id does not own this resource")
	// ErrConcurrentModification reports a lost optimistic-lock race.
	ErrConcurrentModification = errors.New("resource was modified concurrently")
)

// UserID identifies a user across the point ledger and subscriptions.
type UserID uint64

// NewUserID validates a raw identifier.
func NewUserID(raw int64) (UserID, error) {
	if raw <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidUserID, raw)
	}
	return UserID(raw), nil
}

// ParseUserID parses a decimal path or CLI argument.
func ParseUserID(s string) (UserID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, s)
	}
	return NewUserID(n)
}

func (id UserID) Uint64() uint64 { return uint64(id) }

func (id UserID) String() string { return strconv.FormatUint(uint64(id), 10) }
