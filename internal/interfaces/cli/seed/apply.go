package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	ledgerDTO "github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	subscriptionDTO "github.com/cbnu/subscribe-service/internal/application/subscription/dto"
	"github.com/cbnu/subscribe-service/internal/domain/subscription"
)

type pointLedger interface {
	RegisterWallet(ctx context.Context, userID int64) (*ledgerDTO.WalletDTO, error)
	Recharge(ctx context.Context, userID, amount int64) (*ledgerDTO.BalanceChangeDTO, error)
}

type subscriber interface {
	Subscribe(ctx context.Context, userID int64, tier string, days int64) (*subscriptionDTO.PurchaseDTO, error)
}

// Apply runs the fixture against the services and reports each step to out.
func Apply(ctx context.Context, out io.Writer, points pointLedger, subs subscriber, f *Fixture) error {
	for _, w := range f.Wallets {
		if _, err := points.RegisterWallet(ctx, w.UserID); err != nil {
			return fmt.Errorf("register wallet %d: %w", w.UserID, err)
		}
		if w.Recharge == 0 {
			fmt.Fprintf(out, "wallet %d registered\n", w.UserID)
			continue
		}
		change, err := points.Recharge(ctx, w.UserID, w.Recharge)
		if err != nil {
			return fmt.Errorf("recharge wallet %d: %w", w.UserID, err)
		}
		fmt.Fprintf(out, "wallet %d recharged to %d\n", w.UserID, change.Balance)
	}

	for _, s := range f.Subscriptions {
		purchase, err := subs.Subscribe(ctx, s.UserID, s.Tier, s.Days)
		if errors.Is(err, subscription.ErrSubscriptionAlreadyExists) {
			fmt.Fprintf(out, "subscription for %d exists, skipped\n", s.UserID)
			continue
		}
		if err != nil {
			return fmt.Errorf("subscribe %d to %s: %w", s.UserID, s.Tier, err)
		}
		fmt.Fprintf(out, "subscription %d: %s until %s for %d points\n",
			s.UserID, purchase.Tier, purchase.EndDate, purchase.Price)
	}
	return nil
}
