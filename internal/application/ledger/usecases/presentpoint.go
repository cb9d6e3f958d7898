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

type PresentPointCommand struct {
	FromUserID int64
	ToUserID   int64
	Amount     int64
}

// PresentPointUseCase moves points between two wallets. Both wallet updates
// and both history entries commit together or not at all.
type PresentPointUseCase struct {
	walletRepo  wallet.Repository
	historyRepo wallet.HistoryRepository
	txMgr       TransactionRunner
	logger      logger.Interface
	opts        options
}

func NewPresentPointUseCase(
	walletRepo wallet.Repository,
	historyRepo wallet.HistoryRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *PresentPointUseCase {
	return &PresentPointUseCase{
		walletRepo:  walletRepo,
		historyRepo: historyRepo,
		txMgr:       txMgr,
		logger:      logger,
		opts:        defaultOptions(),
	}
}

func (uc *PresentPointUseCase) SetBalanceCache(cache BalanceCache) {
	uc.opts.cache = cache
}

func (uc *PresentPointUseCase) SetEventPublisher(publisher events.EventPublisher) {
	uc.opts.publisher = publisher
}

func (uc *PresentPointUseCase) SetRetryPolicy(policy db.RetryPolicy) {
	uc.opts.retry = policy
}

func (uc *PresentPointUseCase) Execute(ctx context.Context, cmd PresentPointCommand) (*dto.PresentResultDTO, error) {
	fromID, err := shared.NewUserID(cmd.FromUserID)
	if err != nil {
		return nil, err
	}
	toID, err := shared.NewUserID(cmd.ToUserID)
	if err != nil {
		return nil, err
	}
	if fromID == toID {
		return nil, fmt.Errorf("%w: user %d", wallet.ErrSameWallet, fromID)
	}
	if cmd.Amount < 0 {
		return nil, fmt.Errorf("%w: %d", wallet.ErrInvalidAmount, cmd.Amount)
	}

	var result *dto.PresentResultDTO
	err = db.Retry(ctx, uc.opts.retry, isConflict, func(ctx context.Context) error {
		return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			res, err := uc.presentOnce(txCtx, fromID, toID, cmd.Amount)
			if err != nil {
				return err
			}
			result = res
			return nil
		})
	})
	if err != nil {
		uc.logger.Warnw("present point failed",
			"from_user_id", fromID,
			"to_user_id", toID,
			"amount", cmd.Amount,
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("points presented",
		"from_user_id", fromID,
		"to_user_id", toID,
		"amount", cmd.Amount,
		"sender_balance", result.SenderBalance,
	)
	return result, nil
}

func (uc *PresentPointUseCase) presentOnce(ctx context.Context, fromID, toID shared.UserID, amount int64) (*dto.PresentResultDTO, error) {
	now := uc.opts.now()

	from, err := uc.load(ctx, fromID)
	if err != nil {
		return nil, err
	}
	to, err := uc.load(ctx, toID)
	if err != nil {
		return nil, err
	}

	debited, credited, err := wallet.Transfer(from, to, amount, now)
	if err != nil {
		return nil, err
	}

	if err := uc.walletRepo.Update(ctx, debited); err != nil {
		return nil, err
	}
	if err := uc.walletRepo.Update(ctx, credited); err != nil {
		return nil, err
	}

	out, err := wallet.NewEntry(debited, wallet.EntryTypePresentOut, amount, now)
	if err != nil {
		return nil, err
	}
	in, err := wallet.NewEntry(credited, wallet.EntryTypePresentIn, amount, now)
	if err != nil {
		return nil, err
	}
	out.WithCounterparty(toID)
	in.WithCounterparty(fromID)
	if err := uc.historyRepo.Append(ctx, out, in); err != nil {
		return nil, fmt.Errorf("failed to append point history: %w", err)
	}

	uc.opts.afterCommit(ctx, uc.logger, []*wallet.Wallet{debited, credited},
		wallet.NewPresentedEvent(fromID, toID, amount, now))

	return &dto.PresentResultDTO{
		FromUserID:      fromID.Uint64(),
		ToUserID:        toID.Uint64(),
		Amount:          amount,
		SenderBalance:   debited.Balance().Points(),
		ReceiverBalance: credited.Balance().Points(),
	}, nil
}

func (uc *PresentPointUseCase) load(ctx context.Context, userID shared.UserID) (*wallet.Wallet, error) {
	w, err := uc.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: user %d", wallet.ErrWalletNotFound, userID)
	}
	return w, nil
}
