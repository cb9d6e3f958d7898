// Package dto holds the ledger use-case results handed to adapters.
package dto

import (
	"time"

	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/shared/mapper"
)

type WalletDTO struct {
	UserID    uint64    `json:"user_id"`
	Balance   int64     `json:"balance"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BalanceChangeDTO reports a single-wallet mutation.
type BalanceChangeDTO struct {
	UserID          uint64 `json:"user_id"`
	Amount          int64  `json:"amount"`
	PreviousBalance int64  `json:"previous_balance"`
	Balance         int64  `json:"balance"`
}

type PresentResultDTO struct {
	FromUserID      uint64 `json:"from_user_id"`
	ToUserID        uint64 `json:"to_user_id"`
	Amount          int64  `json:"amount"`
	SenderBalance   int64  `json:"sender_balance"`
	ReceiverBalance int64  `json:"receiver_balance"`
}

type PointHistoryDTO struct {
	ID                 uint           `json:"id"`
	Type               string         `json:"type"`
	Amount             int64          `json:"amount"`
	BalanceAfter       int64          `json:"balance_after"`
	CounterpartyUserID *uint64        `json:"counterparty_user_id,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

type PointHistoryListDTO struct {
	Items    []PointHistoryDTO `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

func ToWalletDTO(w *wallet.Wallet) *WalletDTO {
	return &WalletDTO{
		UserID:    w.UserID().Uint64(),
		Balance:   w.Balance().Points(),
		Version:   w.Version(),
		UpdatedAt: w.UpdatedAt(),
	}
}

func ToPointHistoryDTO(e *wallet.Entry) PointHistoryDTO {
	out := PointHistoryDTO{
		ID:           e.ID(),
		Type:         string(e.Type()),
		Amount:       e.Amount(),
		BalanceAfter: e.BalanceAfter(),
		Metadata:     e.Metadata(),
		CreatedAt:    e.CreatedAt(),
	}
	if cp := e.Counterparty(); cp != nil {
		id := cp.Uint64()
		out.CounterpartyUserID = &id
	}
	return out
}

func ToPointHistoryDTOs(entries []*wallet.Entry) []PointHistoryDTO {
	items := mapper.MapSlice(entries, ToPointHistoryDTO)
	if items == nil {
		return []PointHistoryDTO{}
	}
	return items
}
