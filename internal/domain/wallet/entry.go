package wallet

import (
	"fmt"
	"time"

	"github.com/cbnu/subscribe-service/internal/domain/shared"
)

// EntryType classifies a point history entry.
type EntryType string

const (
	EntryTypeRecharge            EntryType = "recharge"
	EntryTypeUse                 EntryType = "use"
	EntryTypePresentOut          EntryType = "present_out"
	EntryTypePresentIn           EntryType = "present_in"
	EntryTypeSubscriptionPayment EntryType = "subscription_payment"
	EntryTypeSubscriptionRefund  EntryType = "subscription_refund"
)

var validEntryTypes = map[EntryType]bool{
	EntryTypeRecharge:            true,
	EntryTypeUse:                 true,
	EntryTypePresentOut:          true,
	EntryTypePresentIn:           true,
	EntryTypeSubscriptionPayment: true,
	EntryTypeSubscriptionRefund:  true,
}

func (t EntryType) IsValid() bool {
	return validEntryTypes[t]
}

// IsCredit reports whether the entry increased the balance.
func (t EntryType) IsCredit() bool {
	return t == EntryTypeRecharge || t == EntryTypePresentIn || t == EntryTypeSubscriptionRefund
}

// Entry is an append-only record of one balance change.
type Entry struct {
	id           uint
	walletID     uint
	userID       shared.UserID
	entryType    EntryType
	amount       int64
	balanceAfter int64
	counterparty *shared.UserID
	metadata     map[string]any
	createdAt    time.Time
}

// NewEntry records the change that produced w.
func NewEntry(w *Wallet, entryType EntryType, amount int64, createdAt time.Time) (*Entry, error) {
	if !entryType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEntryType, entryType)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	return &Entry{
		walletID:     w.ID(),
		userID:       w.UserID(),
		entryType:    entryType,
		amount:       amount,
		balanceAfter: w.Balance().Points(),
		metadata:     map[string]any{},
		createdAt:    createdAt,
	}, nil
}

// ReconstructEntry rebuilds an entry from persistence.
func ReconstructEntry(
	id, walletID uint,
	userID shared.UserID,
	entryType EntryType,
	amount, balanceAfter int64,
	counterparty *shared.UserID,
	metadata map[string]any,
	createdAt time.Time,
) *Entry {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Entry{
		id:           id,
		walletID:     walletID,
		userID:       userID,
		entryType:    entryType,
		amount:       amount,
		balanceAfter: balanceAfter,
		counterparty: counterparty,
		metadata:     metadata,
		createdAt:    createdAt,
	}
}

// WithCounterparty records the other side of a transfer.
func (e *Entry) WithCounterparty(userID shared.UserID) *Entry {
	e.counterparty = &userID
	return e
}

// WithMetadata attaches a free-form attribute.
func (e *Entry) WithMetadata(key string, value any) *Entry {
	e.metadata[key] = value
	return e
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) WalletID() uint {
	return e.walletID
}

func (e *Entry) UserID() shared.UserID {
	return e.userID
}

func (e *Entry) Type() EntryType {
	return e.entryType
}

func (e *Entry) Amount() int64 {
	return e.amount
}

func (e *Entry) BalanceAfter() int64 {
	return e.balanceAfter
}

// Counterparty is nil unless the entry is one side of a transfer.
func (e *Entry) Counterparty() *shared.UserID {
	return e.counterparty
}

func (e *Entry) Metadata() map[string]any {
	return e.metadata
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// SetID sets the storage-assigned identifier (only for persistence layer use).
func (e *Entry) SetID(id uint) {
	e.id = id
}
