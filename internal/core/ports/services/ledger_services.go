package services

import (
	"context"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvc performs the balance-affecting operations. Each call is one
// atomically-committed read-modify-write against storage.
type LedgerSvc interface {
	// Deposit credits the account and returns the appended transaction.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, operatorID string) (*domain.Transaction, error)

	// Withdraw debits the account and returns the appended transaction.
	// Reports ErrInsufficientFunds without mutating state when the amount
	// exceeds the balance.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, operatorID string) (*domain.Transaction, error)

	// ApplyFeeCycle runs the weekly-counted, monthly-triggered interest or
	// fee application. The returned transaction is nil when no monthly
	// application was due.
	ApplyFeeCycle(ctx context.Context, accountID string, operatorID string) (*domain.Account, *domain.Transaction, error)

	// ListTransactions returns an account's history, newest first.
	ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)
}
