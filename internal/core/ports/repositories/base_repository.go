package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for database transaction management.
// Every balance mutation runs inside one of these transactions so the
// read-modify-write is committed atomically.
type TransactionManager interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Rolling back an already-committed
	// transaction is a no-op.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
