package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/itrustbank/itrust_backend/internal/apperrors"
	"github.com/itrustbank/itrust_backend/internal/core/domain"
	portsrepo "github.com/itrustbank/itrust_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// accountColumns is the canonical select list; scanAccount must stay in
// sync with it.
const accountColumns = `
	customer_id, account_id, first_name, middle_name, last_name, birth_date,
	street, barangay, municipality, province_city, zip, phone, email, sex,
	account_type, balance, is_active, fee_cycle_counter, transaction_count,
	last_transaction_date, last_fee_applied_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.CustomerID,
		&acc.AccountID,
		&acc.FirstName,
		&acc.MiddleName,
		&acc.LastName,
		&acc.BirthDate,
		&acc.Street,
		&acc.Barangay,
		&acc.Municipality,
		&acc.ProvinceCity,
		&acc.Zip,
		&acc.Phone,
		&acc.Email,
		&acc.Sex,
		&acc.AccountType,
		&acc.Balance,
		&acc.IsActive,
		&acc.FeeCycleCounter,
		&acc.TransactionCount,
		&acc.LastTransactionDate,
		&acc.LastFeeAppliedAt,
		&acc.CreatedAt,
		&acc.CreatedBy,
		&acc.LastUpdatedAt,
		&acc.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()
	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("account rows error: %w", err)
	}
	return accounts, nil
}

// FindAccountByID retrieves an account by its account ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return acc, nil
}

// FindAccountByIdentifier tries an exact match across customer ID, account
// ID, and email. A customer ID can own several accounts, so the exact
// account-ID match wins, then the newest account.
func (r *PgxAccountRepository) FindAccountByIdentifier(ctx context.Context, identifier string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE customer_id = $1 OR account_id = $1 OR email = $1
		ORDER BY (account_id = $1) DESC, created_at DESC, account_id
		LIMIT 1;`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %q: %w", identifier, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account by identifier: %w", err)
	}
	return acc, nil
}

// ListAccounts retrieves a paginated list of accounts.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		ORDER BY created_at DESC, account_id
		LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return collectAccounts(rows)
}

// SearchAccounts performs a case-insensitive substring match over customer
// ID, account ID, full name, and email.
func (r *PgxAccountRepository) SearchAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	sql := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE customer_id ILIKE $1
		   OR account_id ILIKE $1
		   OR (first_name || ' ' || last_name) ILIKE $1
		   OR email ILIKE $1
		ORDER BY created_at DESC, account_id;`
	rows, err := r.Pool.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	return collectAccounts(rows)
}

// SaveAccountInTx persists a new account within the given transaction.
func (r *PgxAccountRepository) SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	query := `
		INSERT INTO accounts (
			customer_id, account_id, first_name, middle_name, last_name, birth_date,
			street, barangay, municipality, province_city, zip, phone, email, sex,
			account_type, balance, is_active, fee_cycle_counter, transaction_count,
			last_transaction_date, last_fee_applied_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err := tx.Exec(ctx, query,
		account.CustomerID,
		account.AccountID,
		account.FirstName,
		account.MiddleName,
		account.LastName,
		account.BirthDate,
		account.Street,
		account.Barangay,
		account.Municipality,
		account.ProvinceCity,
		account.Zip,
		account.Phone,
		account.Email,
		account.Sex,
		account.AccountType,
		account.Balance,
		account.IsActive,
		account.FeeCycleCounter,
		account.TransactionCount,
		account.LastTransactionDate,
		account.LastFeeAppliedAt,
		account.CreatedAt,
		account.CreatedBy,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.AccountID, err)
	}
	return nil
}

// FindAccountByIDForUpdate selects the account row and locks it for the
// duration of the transaction.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`
	acc, err := scanAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}
	return acc, nil
}

// UpdateAccountFinancialsInTx writes the balance, counters, and timestamps
// within the transaction holding the row lock.
func (r *PgxAccountRepository) UpdateAccountFinancialsInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	query := `
		UPDATE accounts
		SET balance = $2,
		    fee_cycle_counter = $3,
		    transaction_count = $4,
		    last_transaction_date = $5,
		    last_fee_applied_at = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE account_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		account.AccountID,
		account.Balance,
		account.FeeCycleCounter,
		account.TransactionCount,
		account.LastTransactionDate,
		account.LastFeeAppliedAt,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account financials %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrNotFound)
	}
	return nil
}

// UpdateAccount updates an account's profile fields.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET first_name = $2, middle_name = $3, last_name = $4,
		    street = $5, barangay = $6, municipality = $7, province_city = $8, zip = $9,
		    phone = $10, email = $11, sex = $12,
		    last_updated_at = $13, last_updated_by = $14
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.FirstName,
		account.MiddleName,
		account.LastName,
		account.Street,
		account.Barangay,
		account.Municipality,
		account.ProvinceCity,
		account.Zip,
		account.Phone,
		account.Email,
		account.Sex,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrNotFound)
	}
	return nil
}

// SetAccountActive flips the active flag.
func (r *PgxAccountRepository) SetAccountActive(ctx context.Context, accountID string, active bool, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, active, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set account %s active flag: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}

// SetAccountActiveInTx flips the active flag within the transaction holding
// the row lock.
func (r *PgxAccountRepository) SetAccountActiveInTx(ctx context.Context, tx pgx.Tx, accountID string, active bool, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	tag, err := tx.Exec(ctx, query, accountID, active, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set account %s active flag: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteAccountInTx removes the account row within the transaction holding
// the row lock. The transactions FK has no cascade, so a delete that would
// orphan history fails at the database even if the service-layer check is
// ever bypassed.
func (r *PgxAccountRepository) DeleteAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}
