package wallet

import "errors"

var (
	ErrInvalidAmount       = errors.New("point amount must not be negative")
	ErrPointLimitExceeded  = errors.New("point balance would exceed the maximum")
	ErrPointBelowThreshold = errors.New("point balance is insufficient")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrSameWallet          = errors.New("cannot present points to the same wallet")
	ErrInvalidEntryType    = errors.New("invalid point history entry type")
)
