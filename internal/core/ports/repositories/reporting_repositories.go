package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// ReportingRepository serves the dashboard aggregates.
type ReportingRepository interface {
	// TotalAccounts counts all customer accounts, active or not.
	TotalAccounts(ctx context.Context) (int64, error)

	// TotalDeposits sums the amounts of all "Deposit" transactions.
	TotalDeposits(ctx context.Context) (decimal.Decimal, error)

	// TotalWithdrawals sums the amounts of all "Withdrawal" transactions.
	TotalWithdrawals(ctx context.Context) (decimal.Decimal, error)

	// TotalTransactions counts all transactions of any type.
	TotalTransactions(ctx context.Context) (int64, error)
}
