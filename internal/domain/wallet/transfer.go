package wallet

import (
	"fmt"
	"time"
)

// Transfer moves amount from one wallet to another and returns both updated
// copies. Either both copies are produced or neither; the caller persists them
// inside one transaction.
func Transfer(from, to *Wallet, amount int64, now time.Time) (*Wallet, *Wallet, error) {
	if from.userID == to.userID || (from.id != 0 && from.id == to.id) {
		return nil, nil, fmt.Errorf("%w: user %d", ErrSameWallet, from.userID)
	}
	debited, err := from.Debit(from.userID, amount, now)
	if err != nil {
		return nil, nil, err
	}
	credited, err := to.Recharge(to.userID, amount, now)
	if err != nil {
		return nil, nil, err
	}
	return debited, credited, nil
}
