package domain_test

import (
	"testing"
	"time"

	"github.com/itrustbank/itrust_backend/internal/apperrors"
	"github.com/itrustbank/itrust_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(accType domain.AccountType, balance string, now time.Time) *domain.Account {
	return &domain.Account{
		CustomerID:       domain.NewCustomerID(),
		AccountID:        domain.NewAccountID(),
		FirstName:        "Juan",
		LastName:         "Dela Cruz",
		BirthDate:        time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC),
		AccountType:      accType,
		Balance:          decimal.RequireFromString(balance),
		IsActive:         true,
		LastFeeAppliedAt: now,
	}
}

func TestAccount_AgeAt(t *testing.T) {
	acc := &domain.Account{BirthDate: time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{
			name:  "day before birthday",
			today: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
			want:  23,
		},
		{
			name:  "on birthday",
			today: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			want:  24,
		},
		{
			name:  "month before birthday",
			today: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			want:  23,
		},
		{
			name:  "month after birthday",
			today: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			want:  24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, acc.AgeAt(tt.today))
		})
	}
}

func TestAccount_FullName(t *testing.T) {
	tests := []struct {
		name    string
		account domain.Account
		want    string
	}{
		{
			name:    "all parts",
			account: domain.Account{FirstName: "Juan", MiddleName: "Santos", LastName: "Dela Cruz"},
			want:    "Juan Santos Dela Cruz",
		},
		{
			name:    "no middle name",
			account: domain.Account{FirstName: "Juan", LastName: "Dela Cruz"},
			want:    "Juan Dela Cruz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.FullName())
		})
	}
}

func TestAccount_FullAddress(t *testing.T) {
	tests := []struct {
		name    string
		account domain.Account
		want    string
	}{
		{
			name: "all parts",
			account: domain.Account{
				Street: "123 Rizal St", Barangay: "Poblacion",
				Municipality: "Makati", ProvinceCity: "Metro Manila", Zip: "1210",
			},
			want: "123 Rizal St, Poblacion, Makati, Metro Manila 1210",
		},
		{
			name:    "missing parts skipped",
			account: domain.Account{Street: "123 Rizal St", Municipality: "Makati"},
			want:    "123 Rizal St, Makati",
		},
		{
			name:    "zip only",
			account: domain.Account{Zip: "1210"},
			want:    "1210",
		},
		{
			name:    "empty",
			account: domain.Account{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.FullAddress())
		})
	}
}

func TestAccount_Deposit(t *testing.T) {
	now := time.Now()
	acc := newTestAccount(domain.Savings, "100.00", now)

	txn, err := acc.Deposit(decimal.RequireFromString("50.25"), now)
	require.NoError(t, err)

	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("150.25")))
	assert.Equal(t, domain.Deposit, txn.Type)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("50.25")))
	assert.True(t, txn.BalanceAfter.Equal(acc.Balance))
	assert.Equal(t, 1, acc.TransactionCount)
	require.NotNil(t, acc.LastTransaction())
	assert.Equal(t, txn.TransactionID, acc.LastTransaction().TransactionID)
}

func TestAccount_Deposit_RejectsNonPositive(t *testing.T) {
	now := time.Now()
	acc := newTestAccount(domain.Savings, "100.00", now)

	_, err := acc.Deposit(decimal.Zero, now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = acc.Deposit(decimal.RequireFromString("-5"), now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, 0, acc.TransactionCount)
}

func TestAccount_Deposit_RejectsInactive(t *testing.T) {
	now := time.Now()
	acc := newTestAccount(domain.Savings, "100.00", now)
	acc.Deactivate()

	_, err := acc.Deposit(decimal.RequireFromString("10"), now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAccount_Withdraw(t *testing.T) {
	now := time.Now()
	acc := newTestAccount(domain.Checking, "100.00", now)

	txn, err := acc.Withdraw(decimal.RequireFromString("40.00"), now)
	require.NoError(t, err)

	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("60.00")))
	assert.Equal(t, domain.Withdrawal, txn.Type)
	assert.True(t, txn.BalanceAfter.Equal(acc.Balance))
}

func TestAccount_Withdraw_InsufficientFundsLeavesStateUnchanged(t *testing.T) {
	now := time.Now()
	acc := newTestAccount(domain.Checking, "100.00", now)

	_, err := acc.Withdraw(decimal.RequireFromString("100.01"), now)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, 0, acc.TransactionCount)
	assert.Nil(t, acc.LastTransaction())
}

func TestAccount_Withdraw_ExactBalanceAllowed(t *testing.T) {
	now := time.Now()
	acc := newTestAccount(domain.Checking, "100.00", now)

	_, err := acc.Withdraw(decimal.RequireFromString("100.00"), now)
	require.NoError(t, err)
	assert.True(t, acc.Balance.IsZero())
}

func TestAccount_RecordOpeningDeposit(t *testing.T) {
	now := time.Now()

	t.Run("zero opening deposit allowed", func(t *testing.T) {
		acc := newTestAccount(domain.Savings, "0", now)
		txn, err := acc.RecordOpeningDeposit(decimal.Zero, now)
		require.NoError(t, err)
		assert.Equal(t, domain.Deposit, txn.Type)
		assert.True(t, acc.Balance.IsZero())
		assert.Equal(t, 1, acc.TransactionCount)
	})

	t.Run("negative opening deposit rejected", func(t *testing.T) {
		acc := newTestAccount(domain.Savings, "0", now)
		_, err := acc.RecordOpeningDeposit(decimal.RequireFromString("-1"), now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestAccount_AdvanceFeeCycle(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("less than a week does nothing", func(t *testing.T) {
		acc := newTestAccount(domain.Savings, "1000.00", base)
		txn, err := acc.AdvanceFeeCycle(base.Add(6 * 24 * time.Hour))
		require.NoError(t, err)
		assert.Nil(t, txn)
		assert.Equal(t, 0, acc.FeeCycleCounter)
		assert.True(t, acc.LastFeeAppliedAt.Equal(base))
	})

	t.Run("one week advances the counter without applying", func(t *testing.T) {
		acc := newTestAccount(domain.Savings, "1000.00", base)
		now := base.Add(7 * 24 * time.Hour)
		txn, err := acc.AdvanceFeeCycle(now)
		require.NoError(t, err)
		assert.Nil(t, txn)
		assert.Equal(t, 1, acc.FeeCycleCounter)
		assert.True(t, acc.LastFeeAppliedAt.Equal(base.Add(7*24*time.Hour)))
		assert.Equal(t, 0, acc.TransactionCount)
	})

	t.Run("repeated checks do not recount the same week", func(t *testing.T) {
		acc := newTestAccount(domain.Savings, "1000.00", base)
		now := base.Add(8 * 24 * time.Hour)
		_, err := acc.AdvanceFeeCycle(now)
		require.NoError(t, err)
		_, err = acc.AdvanceFeeCycle(now)
		require.NoError(t, err)
		assert.Equal(t, 1, acc.FeeCycleCounter)
	})

	t.Run("four weeks credit savings interest and reset", func(t *testing.T) {
		acc := newTestAccount(domain.Savings, "1000.00", base)
		now := base.Add(28 * 24 * time.Hour)
		txn, err := acc.AdvanceFeeCycle(now)
		require.NoError(t, err)
		require.NotNil(t, txn)

		// 1000.00 * 0.002916 = 2.916, rounded to centavos
		assert.Equal(t, domain.Interest, txn.Type)
		assert.True(t, txn.Amount.Equal(decimal.RequireFromString("2.92")))
		assert.True(t, acc.Balance.Equal(decimal.RequireFromString("1002.92")))
		assert.Equal(t, 0, acc.FeeCycleCounter)
		assert.True(t, acc.LastFeeAppliedAt.Equal(now))
		assert.Equal(t, 1, acc.TransactionCount)
	})

	t.Run("four weeks debit the checking fee and reset", func(t *testing.T) {
		acc := newTestAccount(domain.Checking, "1000.00", base)
		now := base.Add(28 * 24 * time.Hour)
		txn, err := acc.AdvanceFeeCycle(now)
		require.NoError(t, err)
		require.NotNil(t, txn)

		assert.Equal(t, domain.MonthlyFee, txn.Type)
		assert.True(t, txn.Amount.Equal(decimal.RequireFromString("10.00")))
		assert.True(t, acc.Balance.Equal(decimal.RequireFromString("990.00")))
		assert.Equal(t, 0, acc.FeeCycleCounter)
	})

	t.Run("very stale account applies at most once", func(t *testing.T) {
		acc := newTestAccount(domain.Checking, "1000.00", base)
		now := base.Add(90 * 24 * time.Hour)
		txn, err := acc.AdvanceFeeCycle(now)
		require.NoError(t, err)
		require.NotNil(t, txn)

		assert.True(t, acc.Balance.Equal(decimal.RequireFromString("990.00")))
		assert.Equal(t, 1, acc.TransactionCount)
		assert.True(t, acc.LastFeeAppliedAt.Equal(now))
	})

	t.Run("inactive account is rejected", func(t *testing.T) {
		acc := newTestAccount(domain.Savings, "1000.00", base)
		acc.Deactivate()
		_, err := acc.AdvanceFeeCycle(base.Add(28 * 24 * time.Hour))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestAccount_BalanceMatchesLastTransaction(t *testing.T) {
	now := time.Now()
	acc := newTestAccount(domain.Savings, "0", now)

	_, err := acc.RecordOpeningDeposit(decimal.RequireFromString("500.00"), now)
	require.NoError(t, err)
	_, err = acc.Deposit(decimal.RequireFromString("125.50"), now.Add(time.Minute))
	require.NoError(t, err)
	_, err = acc.Withdraw(decimal.RequireFromString("25.50"), now.Add(2*time.Minute))
	require.NoError(t, err)

	require.NotNil(t, acc.LastTransaction())
	assert.True(t, acc.Balance.Equal(acc.LastTransaction().BalanceAfter))
	assert.Equal(t, 3, acc.TransactionCount)
	assert.Len(t, acc.Transactions, 3)

	// newest first
	assert.Equal(t, domain.Withdrawal, acc.Transactions[0].Type)
	assert.Equal(t, domain.Deposit, acc.Transactions[2].Type)
}
