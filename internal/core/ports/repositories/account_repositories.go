package repositories

import (
	"context"
	"time"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves an account by its account ID.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByIdentifier tries an exact match across customer ID,
	// account ID, and email.
	FindAccountByIdentifier(ctx context.Context, identifier string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// SearchAccounts performs a case-insensitive substring match over
	// customer ID, account ID, full name, and email.
	SearchAccounts(ctx context.Context, query string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// UpdateAccount updates an account's profile fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// SetAccountActive flips the active flag.
	SetAccountActive(ctx context.Context, accountID string, active bool, userID string, now time.Time) error
}

// AccountTransactionSupport defines the operations used inside database
// transactions for atomic balance updates.
type AccountTransactionSupport interface {
	// SaveAccountInTx persists a new account within a transaction, so the
	// opening deposit commits with the account row.
	SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// FindAccountByIDForUpdate selects the account row and locks it for
	// update within the transaction.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// UpdateAccountFinancialsInTx writes balance, counters, and timestamps
	// within the transaction.
	UpdateAccountFinancialsInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// SetAccountActiveInTx flips the active flag within the transaction
	// holding the row lock.
	SetAccountActiveInTx(ctx context.Context, tx pgx.Tx, accountID string, active bool, userID string, now time.Time) error

	// DeleteAccountInTx removes the account row within the transaction
	// holding the row lock, so the history check that turns deletes into
	// deactivations cannot race a concurrent deposit.
	DeleteAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) error
}

// AccountRepository combines all account repository capabilities.
type AccountRepository interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
	TransactionManager
}
