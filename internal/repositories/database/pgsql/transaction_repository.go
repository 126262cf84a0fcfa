package pgsql

import (
	"context"
	"fmt"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
	portsrepo "github.com/itrustbank/itrust_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// SaveTransactionInTx appends a ledger entry within the transaction that
// holds the account row lock.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, account_id, type, amount, balance_after, occurred_at
		)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.AccountID,
		txn.Type,
		txn.Amount,
		txn.BalanceAfter,
		txn.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// ListTransactions returns an account's history, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, type, amount, balance_after, occurred_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY occurred_at DESC, transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %s: %w", accountID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(
			&txn.TransactionID,
			&txn.AccountID,
			&txn.Type,
			&txn.Amount,
			&txn.BalanceAfter,
			&txn.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("transaction rows error: %w", err)
	}
	return txns, nil
}

// HasTransactions reports whether the account has any ledger history. It
// runs on the caller's transaction so the answer stays true for the
// duration of the account row lock.
func (r *PgxTransactionRepository) HasTransactions(ctx context.Context, tx pgx.Tx, accountID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE account_id = $1);`
	if err := tx.QueryRow(ctx, query, accountID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check transactions for %s: %w", accountID, err)
	}
	return exists, nil
}
