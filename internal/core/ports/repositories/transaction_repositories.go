package repositories

import (
	"context"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionRepository persists and reads immutable transaction records.
type TransactionRepository interface {
	// SaveTransactionInTx appends a transaction within the same database
	// transaction that carries the balance update.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// ListTransactions returns an account's history, newest first.
	ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// HasTransactions reports whether any transaction exists for the
	// account, read within the transaction that locks the account row.
	// Deletes fall back to deactivation when it returns true.
	HasTransactions(ctx context.Context, tx pgx.Tx, accountID string) (bool, error)
}
