// Package wallet models the per-user point balance and its ledger history.
package wallet

import (
	"fmt"
	"time"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
)

// Wallet is the aggregate root holding one user's points.
// Mutations never change the receiver; they return a copy whose version is
// one ahead so the repository can compare-and-swap on the previous version.
type Wallet struct {
	id        uint
	userID    shared.UserID
	balance   Money
	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewWallet creates an empty wallet for userID.
func NewWallet(userID shared.UserID, now time.Time) (*Wallet, error) {
	if userID == 0 {
		return nil, shared.ErrInvalidUserID
	}
	return &Wallet{
		userID:    userID,
		balance:   ZeroMoney(),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructWallet rebuilds a wallet from persistence.
func ReconstructWallet(id uint, userID shared.UserID, points int64, version int, createdAt, updatedAt time.Time) (*Wallet, error) {
	if id == 0 {
		return nil, fmt.Errorf("wallet ID cannot be zero")
	}
	if userID == 0 {
		return nil, shared.ErrInvalidUserID
	}
	balance, err := NewMoney(points)
	if err != nil {
		return nil, fmt.Errorf("invalid stored balance for wallet %d: %w", id, err)
	}
	return &Wallet{
		id:        id,
		userID:    userID,
		balance:   balance,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (w *Wallet) ID() uint {
	return w.id
}

func (w *Wallet) UserID() shared.UserID {
	return w.userID
}

func (w *Wallet) Balance() Money {
	return w.balance
}

func (w *Wallet) Version() int {
	return w.version
}

func (w *Wallet) CreatedAt() time.Time {
	return w.createdAt
}

func (w *Wallet) UpdatedAt() time.Time {
	return w.updatedAt
}

// SetID sets the storage-assigned identifier (only for persistence layer use).
func (w *Wallet) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("wallet ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("wallet ID cannot be zero")
	}
	w.id = id
	return nil
}

// Recharge adds amount on behalf of userID.
func (w *Wallet) Recharge(userID shared.UserID, amount int64, now time.Time) (*Wallet, error) {
	if err := w.verifyOwner(userID); err != nil {
		return nil, err
	}
	balance, err := w.balance.Recharge(amount)
	if err != nil {
		return nil, err
	}
	return w.with(balance, now), nil
}

// Debit removes amount on behalf of userID.
func (w *Wallet) Debit(userID shared.UserID, amount int64, now time.Time) (*Wallet, error) {
	if err := w.verifyOwner(userID); err != nil {
		return nil, err
	}
	balance, err := w.balance.Debit(amount)
	if err != nil {
		return nil, err
	}
	return w.with(balance, now), nil
}

func (w *Wallet) with(balance Money, now time.Time) *Wallet {
	next := *w
	next.balance = balance
	next.version = w.version + 1
	next.updatedAt = now
	return &next
}

func (w *Wallet) verifyOwner(userID shared.UserID) error {
	if w.userID != userID {
		return fmt.Errorf("%w: wallet belongs to %d, caller %d", shared.ErrWrongUserID, w.userID, userID)
	}
	return nil
}

// BalanceSnapshot is a committed balance tagged with the wallet version it
// was read at. A higher version always describes a later state.
type BalanceSnapshot struct {
	Balance int64
	Version int
}

// NewerThan reports whether s describes a later state than other.
func (s BalanceSnapshot) NewerThan(other BalanceSnapshot) bool {
	return s.Version > other.Version
}

func (w *Wallet) Snapshot() BalanceSnapshot {
	return BalanceSnapshot{Balance: w.balance.Points(), Version: w.version}
}
