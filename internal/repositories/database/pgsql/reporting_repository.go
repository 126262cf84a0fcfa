package pgsql

import (
	"context"
	"fmt"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
	portsrepo "github.com/itrustbank/itrust_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// TotalAccounts counts all accounts, active or not.
func (r *PgxReportingRepository) TotalAccounts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// TotalDeposits sums all deposit amounts across every account.
func (r *PgxReportingRepository) TotalDeposits(ctx context.Context) (decimal.Decimal, error) {
	return r.sumByType(ctx, domain.Deposit)
}

// TotalWithdrawals sums all withdrawal amounts across every account.
func (r *PgxReportingRepository) TotalWithdrawals(ctx context.Context) (decimal.Decimal, error) {
	return r.sumByType(ctx, domain.Withdrawal)
}

func (r *PgxReportingRepository) sumByType(ctx context.Context, txType domain.TransactionType) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = $1;`
	if err := r.Pool.QueryRow(ctx, query, txType).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s transactions: %w", txType, err)
	}
	return total, nil
}

// TotalTransactions counts every ledger entry.
func (r *PgxReportingRepository) TotalTransactions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
