package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/itrustbank/itrust_backend/internal/apperrors"
	"github.com/itrustbank/itrust_backend/internal/core/domain"
	portsrepo "github.com/itrustbank/itrust_backend/internal/core/ports/repositories"
	portssvc "github.com/itrustbank/itrust_backend/internal/core/ports/services"
	"github.com/itrustbank/itrust_backend/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerService performs the balance-affecting operations. Every mutation
// is a read-modify-write committed atomically: the account row is locked
// FOR UPDATE, the domain model applies the change, and the updated
// financials commit together with the appended transaction.
type LedgerService struct {
	accountRepo portsrepo.AccountRepository
	txnRepo     portsrepo.TransactionRepository
}

var _ portssvc.LedgerSvc = (*LedgerService)(nil)

func NewLedgerService(accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository) *LedgerService {
	return &LedgerService{accountRepo: accountRepo, txnRepo: txnRepo}
}

// Deposit credits the account and appends a "Deposit" transaction.
func (s *LedgerService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, operatorID string) (*domain.Transaction, error) {
	return s.post(ctx, accountID, operatorID, func(acc *domain.Account, now time.Time) (domain.Transaction, error) {
		return acc.Deposit(amount, now)
	})
}

// Withdraw debits the account and appends a "Withdrawal" transaction.
// ErrInsufficientFunds leaves state unchanged; the surrounding database
// transaction rolls back.
func (s *LedgerService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, operatorID string) (*domain.Transaction, error) {
	return s.post(ctx, accountID, operatorID, func(acc *domain.Account, now time.Time) (domain.Transaction, error) {
		return acc.Withdraw(amount, now)
	})
}

// post runs one mutation under a row lock and commits the updated
// financials with the appended transaction.
func (s *LedgerService) post(ctx context.Context, accountID string, operatorID string, mutate func(*domain.Account, time.Time) (domain.Transaction, error)) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}

	now := time.Now()
	txn, err := mutate(account, now)
	if err != nil {
		return nil, err
	}

	account.LastUpdatedAt = now
	account.LastUpdatedBy = operatorID

	if err := s.persistMutation(ctx, tx, *account, txn); err != nil {
		logger.Error("Failed to persist ledger mutation", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Ledger transaction posted",
		slog.String("account_id", accountID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.StringFixed(2)),
	)
	return &txn, nil
}

// ApplyFeeCycle advances the weekly fee-cycle counter and applies the
// monthly interest or fee when due. Invoked on login or from a periodic
// sweep; the model has no internal clock.
func (s *LedgerService) ApplyFeeCycle(ctx context.Context, accountID string, operatorID string) (*domain.Account, *domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, nil, err
	}

	counterBefore := account.FeeCycleCounter
	appliedBefore := account.LastFeeAppliedAt

	now := time.Now()
	applied, err := account.AdvanceFeeCycle(now)
	if err != nil {
		return nil, nil, err
	}

	if applied == nil && account.FeeCycleCounter == counterBefore && account.LastFeeAppliedAt.Equal(appliedBefore) {
		// Nothing due; the deferred rollback discards the empty transaction.
		return account, nil, nil
	}

	account.LastUpdatedAt = now
	account.LastUpdatedBy = operatorID

	var txn domain.Transaction
	if applied != nil {
		txn = *applied
	}
	if applied != nil {
		err = s.persistMutation(ctx, tx, *account, txn)
	} else {
		err = s.accountRepo.UpdateAccountFinancialsInTx(ctx, tx, *account)
	}
	if err != nil {
		logger.Error("Failed to persist fee cycle", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, nil, err
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	if applied != nil {
		logger.Info("Monthly conditions applied",
			slog.String("account_id", accountID),
			slog.String("type", string(applied.Type)),
			slog.String("amount", applied.Amount.StringFixed(2)),
		)
	}
	return account, applied, nil
}

// ListTransactions returns an account's history, newest first.
func (s *LedgerService) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListTransactions(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

func (s *LedgerService) persistMutation(ctx context.Context, tx pgx.Tx, account domain.Account, txn domain.Transaction) error {
	if err := s.accountRepo.UpdateAccountFinancialsInTx(ctx, tx, account); err != nil {
		return err
	}
	return s.txnRepo.SaveTransactionInTx(ctx, tx, txn)
}
