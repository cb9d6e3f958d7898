package usecases

import (
	"context"
	"fmt"

	"github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	"github.com/cbnu/subscribe-service/internal/domain/shared"
	"github.com/cbnu/subscribe-service/internal/domain/shared/events"
	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/shared/db"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

// BalanceChange describes a single-wallet credit or debit.
type BalanceChange struct {
	UserID    shared.UserID
	Amount    int64
	EntryType wallet.EntryType
	Metadata  map[string]any
}

// BalanceChanger applies one credit or debit: load, mutate, compare-and-swap
// and history append in one transaction, rerun on version conflicts.
// When ctx already carries a transaction it joins it and runs once.
type BalanceChanger struct {
	walletRepo  wallet.Repository
	historyRepo wallet.HistoryRepository
	txMgr       TransactionRunner
	logger      logger.Interface
	opts        options
}

func NewBalanceChanger(
	walletRepo wallet.Repository,
	historyRepo wallet.HistoryRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *BalanceChanger {
	return &BalanceChanger{
		walletRepo:  walletRepo,
		historyRepo: historyRepo,
		txMgr:       txMgr,
		logger:      logger,
		opts:        defaultOptions(),
	}
}

func (c *BalanceChanger) SetBalanceCache(cache BalanceCache) {
	c.opts.cache = cache
}

func (c *BalanceChanger) SetEventPublisher(publisher events.EventPublisher) {
	c.opts.publisher = publisher
}

func (c *BalanceChanger) SetRetryPolicy(policy db.RetryPolicy) {
	c.opts.retry = policy
}

func (c *BalanceChanger) Apply(ctx context.Context, change BalanceChange) (*dto.BalanceChangeDTO, error) {
	if !change.EntryType.IsValid() {
		return nil, fmt.Errorf("%w: %q", wallet.ErrInvalidEntryType, change.EntryType)
	}
	if change.Amount < 0 {
		return nil, fmt.Errorf("%w: %d", wallet.ErrInvalidAmount, change.Amount)
	}

	var result *dto.BalanceChangeDTO
	err := db.Retry(ctx, c.opts.retry, isConflict, func(ctx context.Context) error {
		return c.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			res, err := c.applyOnce(txCtx, change)
			if err != nil {
				return err
			}
			result = res
			return nil
		})
	})
	if err != nil {
		if isConflict(err) {
			c.logger.Warnw("balance change lost optimistic lock race",
				"user_id", change.UserID,
				"entry_type", change.EntryType,
			)
		}
		return nil, err
	}

	c.logger.Infow("balance changed",
		"user_id", change.UserID,
		"entry_type", change.EntryType,
		"amount", change.Amount,
		"balance", result.Balance,
	)
	return result, nil
}

func (c *BalanceChanger) applyOnce(ctx context.Context, change BalanceChange) (*dto.BalanceChangeDTO, error) {
	now := c.opts.now()

	current, err := c.walletRepo.GetByUserID(ctx, change.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("%w: user %d", wallet.ErrWalletNotFound, change.UserID)
	}

	var next *wallet.Wallet
	var evt events.DomainEvent
	if change.EntryType.IsCredit() {
		next, err = current.Recharge(change.UserID, change.Amount, now)
		if err == nil {
			evt = wallet.NewRechargedEvent(next, change.Amount, now)
		}
	} else {
		next, err = current.Debit(change.UserID, change.Amount, now)
		if err == nil {
			evt = wallet.NewUsedEvent(next, change.Amount, now)
		}
	}
	if err != nil {
		return nil, err
	}

	if err := c.walletRepo.Update(ctx, next); err != nil {
		return nil, err
	}

	entry, err := wallet.NewEntry(next, change.EntryType, change.Amount, now)
	if err != nil {
		return nil, err
	}
	for k, v := range change.Metadata {
		entry.WithMetadata(k, v)
	}
	if err := c.historyRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append point history: %w", err)
	}

	c.opts.afterCommit(ctx, c.logger, []*wallet.Wallet{next}, evt)

	return &dto.BalanceChangeDTO{
		UserID:          change.UserID.Uint64(),
		Amount:          change.Amount,
		PreviousBalance: current.Balance().Points(),
		Balance:         next.Balance().Points(),
	}, nil
}
