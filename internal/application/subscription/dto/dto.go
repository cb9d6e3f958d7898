// Package dto holds the subscription use-case results handed to adapters.
package dto

import (
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
	"github.com/cbnu/subscribe-service/internal/shared/biztime"
)

// SubscriptionDTO renders dates as calendar days in the business timezone.
type SubscriptionDTO struct {
	SubscriptionID uint   `json:"subscription_id"`
	UserID         uint64 `json:"user_id"`
	Tier           string `json:"tier"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

// PurchaseDTO is returned by subscribe and renew.
type PurchaseDTO struct {
	SubscriptionDTO
	Price   int64 `json:"price"`
	Balance int64 `json:"balance"`
}

type TerminateResultDTO struct {
	UserID          uint64 `json:"user_id"`
	PreviousBalance int64  `json:"previous_balance"`
	Refund          int64  `json:"refund"`
	CurrentBalance  int64  `json:"current_balance"`
}

type VerifyResultDTO struct {
	UserID        uint64 `json:"user_id"`
	Authorization string `json:"authorization"`
}

func ToSubscriptionDTO(s *subscription.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		SubscriptionID: s.ID(),
		UserID:         s.UserID().Uint64(),
		Tier:           s.Tier().String(),
		StartDate:      biztime.FormatDate(s.StartDate()),
		EndDate:        biztime.FormatDate(s.EndDate()),
	}
}
