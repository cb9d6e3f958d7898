package handlers

import (
	"context"

	ledgerdto "github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	subdto "github.com/cbnu/subscribe-service/internal/application/subscription/dto"
)

// Service ports consumed by the handlers

type pointService interface {
	RegisterWallet(ctx context.Context, userID int64) (*ledgerdto.WalletDTO, error)
	Recharge(ctx context.Context, userID, amount int64) (*ledgerdto.BalanceChangeDTO, error)
	Use(ctx context.Context, userID, amount int64, reason string) (*ledgerdto.BalanceChangeDTO, error)
	Present(ctx context.Context, fromUserID, toUserID, amount int64) (*ledgerdto.PresentResultDTO, error)
	LoadWallet(ctx context.Context, userID int64) (*ledgerdto.WalletDTO, error)
	ListHistory(ctx context.Context, userID int64, page, pageSize int) (*ledgerdto.PointHistoryListDTO, error)
}

type subscriptionService interface {
	Subscribe(ctx context.Context, userID int64, tier string, days int64) (*subdto.PurchaseDTO, error)
	Renew(ctx context.Context, userID int64, tier string, days int64) (*subdto.PurchaseDTO, error)
	Terminate(ctx context.Context, userID int64) (*subdto.TerminateResultDTO, error)
	Verify(ctx context.Context, userID int64, tier string) (*subdto.VerifyResultDTO, error)
	Get(ctx context.Context, userID int64) (*subdto.SubscriptionDTO, error)
}
