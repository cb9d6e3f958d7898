// Package ledger wires the point ledger use cases behind one facade used by
// the HTTP adapter, the CLI and the subscription service.
package ledger

import (
	"context"

	"github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	"github.com/cbnu/subscribe-service/internal/application/ledger/usecases"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

type Service struct {
	changer    *usecases.BalanceChanger
	registerUC *usecases.RegisterWalletUseCase
	rechargeUC *usecases.RechargePointUseCase
	useUC      *usecases.UsePointUseCase
	presentUC  *usecases.PresentPointUseCase
	loadUC     *usecases.LoadWalletUseCase
	listUC     *usecases.ListPointHistoryUseCase
}

func NewService(
	walletRepo wallet.Repository,
	historyRepo wallet.HistoryRepository,
	txMgr usecases.TransactionRunner,
	logger logger.Interface,
) *Service {
	changer := usecases.NewBalanceChanger(walletRepo, historyRepo, txMgr, logger)
	return &Service{
		changer:    changer,
		registerUC: usecases.NewRegisterWalletUseCase(walletRepo, logger),
		rechargeUC: usecases.NewRechargePointUseCase(changer),
		useUC:      usecases.NewUsePointUseCase(changer),
		presentUC:  usecases.NewPresentPointUseCase(walletRepo, historyRepo, txMgr, logger),
		loadUC:     usecases.NewLoadWalletUseCase(walletRepo, logger),
		listUC:     usecases.NewListPointHistoryUseCase(walletRepo, historyRepo, logger),
	}
}

func (s *Service) SetBalanceCache(cache usecases.BalanceCache) {
	s.changer.SetBalanceCache(cache)
	s.presentUC.SetBalanceCache(cache)
	s.loadUC.SetBalanceCache(cache)
}

func (s *Service) SetEventPublisher(publisher events.EventPublisher) {
	s.changer.SetEventPublisher(publisher)
	s.presentUC.SetEventPublisher(publisher)
}

func (s *Service) SetRetryPolicy(policy db.RetryPolicy) {
	s.changer.SetRetryPolicy(policy)
	s.presentUC.SetRetryPolicy(policy)
}

func (s *Service) RegisterWallet(ctx context.Context, userID int64) (*dto.WalletDTO, error) {
	return s.registerUC.Execute(ctx, usecases.RegisterWalletCommand{UserID: userID})
}

func (s *Service) Recharge(ctx context.Context, userID, amount int64) (*dto.BalanceChangeDTO, error) {
	return s.rechargeUC.Execute(ctx, usecases.RechargePointCommand{UserID: userID, Amount: amount})
}

func (s *Service) Use(ctx context.Context, userID, amount int64, reason string) (*dto.BalanceChangeDTO, error) {
	return s.useUC.Execute(ctx, usecases.UsePointCommand{UserID: userID, Amount: amount, Reason: reason})
}

func (s *Service) Present(ctx context.Context, fromUserID, toUserID, amount int64) (*dto.PresentResultDTO, error) {
	return s.presentUC.Execute(ctx, usecases.PresentPointCommand{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Amount:     amount,
	})
}

func (s *Service) LoadWallet(ctx context.Context, userID int64) (*dto.WalletDTO, error) {
	return s.loadUC.Execute(ctx, usecases.LoadWalletQuery{UserID: userID})
}

func (s *Service) ListHistory(ctx context.Context, userID int64, page, pageSize int) (*dto.PointHistoryListDTO, error) {
	return s.listUC.Execute(ctx, usecases.ListPointHistoryQuery{UserID: userID, Page: page, PageSize: pageSize})
}

// Pay debits a subscription purchase. Inside a caller's transaction it joins
// that transaction.
func (s *Service) Pay(ctx context.Context, userID shared.UserID, amount int64, metadata map[string]any) (*dto.BalanceChangeDTO, error) {
	return s.changer.Apply(ctx, usecases.BalanceChange{
		UserID:    userID,
		Amount:    amount,
		EntryType: wallet.EntryTypeSubscriptionPayment,
		Metadata:  metadata,
	})
}

// Refund credits a subscription refund.
func (s *Service) Refund(ctx context.Context, userID shared.UserID, amount int64, metadata map[string]any) (*dto.BalanceChangeDTO, error) {
	return s.changer.Apply(ctx, usecases.BalanceChange{
		UserID:    userID,
		Amount:    amount,
		EntryType: wallet.EntryTypeSubscriptionRefund,
		Metadata:  metadata,
	})
}
