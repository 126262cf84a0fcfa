package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/itrustbank/itrust_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountType is the product category of a customer account.
type AccountType string

const (
	Savings  AccountType = "Savings"
	Checking AccountType = "Checking"
)

// Monthly conditions applied when a fee cycle completes: savings accounts
// earn interest, checking accounts pay a flat fee.
var (
	savingsMonthlyRate = decimal.RequireFromString("0.002916")
	checkingMonthlyFee = decimal.RequireFromString("10.00")
)

const (
	// feeCycleStep is one counter advance: a full week since the last
	// interest/fee application.
	feeCycleStep = 7 * 24 * time.Hour
	// feeCycleLength is the number of weekly steps that make up a month.
	feeCycleLength = 4
)

// Account is one customer's bank account: identity, profile, financial
// state, and its transaction history. The account exclusively owns its
// transactions; Transactions is kept newest-first, matching how history is
// loaded and displayed.
//
// Invariant: Balance always equals the BalanceAfter of the most recently
// appended transaction. Every balance mutation appends exactly one
// transaction.
type Account struct {
	CustomerID string `json:"customerID"` // "CUST..." token, immutable
	AccountID  string `json:"accountID"`  // "ACC..." token, immutable

	FirstName  string    `json:"firstName"`
	MiddleName string    `json:"middleName"`
	LastName   string    `json:"lastName"`
	BirthDate  time.Time `json:"birthDate"`

	Street       string `json:"street"`
	Barangay     string `json:"barangay"`
	Municipality string `json:"municipality"`
	ProvinceCity string `json:"provinceCity"`
	Zip          string `json:"zip"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Sex          string `json:"sex"`

	AccountType      AccountType     `json:"accountType"`
	Balance          decimal.Decimal `json:"balance"`
	IsActive         bool            `json:"isActive"`
	FeeCycleCounter  int             `json:"feeCycleCounter"` // 0..3, weekly advance
	TransactionCount int             `json:"transactionCount"`

	LastTransactionDate *time.Time `json:"lastTransactionDate,omitempty"`
	LastFeeAppliedAt    time.Time  `json:"lastFeeAppliedAt"`

	AuditFields

	Transactions []Transaction `json:"transactions,omitempty"` // newest first
}

// FullName joins the non-empty name components with single spaces.
func (a *Account) FullName() string {
	return joinNonEmpty(" ", a.FirstName, a.MiddleName, a.LastName)
}

// FullAddress joins the non-empty address components with ", ", with the
// postal code appended after a space.
func (a *Account) FullAddress() string {
	addr := joinNonEmpty(", ", a.Street, a.Barangay, a.Municipality, a.ProvinceCity)
	if a.Zip != "" {
		if addr != "" {
			addr += " "
		}
		addr += a.Zip
	}
	return addr
}

// AgeAt returns whole years elapsed between the birth date and the given
// day, truncated. The comparison is on month and day, so the birthday
// itself already counts the new year.
func (a *Account) AgeAt(today time.Time) int {
	age := today.Year() - a.BirthDate.Year()
	if today.Month() < a.BirthDate.Month() ||
		(today.Month() == a.BirthDate.Month() && today.Day() < a.BirthDate.Day()) {
		age--
	}
	return age
}

// Age is AgeAt evaluated now.
func (a *Account) Age() int {
	return a.AgeAt(time.Now())
}

// LastTransaction returns the newest transaction, or nil for an account
// with no history.
func (a *Account) LastTransaction() *Transaction {
	if len(a.Transactions) == 0 {
		return nil
	}
	return &a.Transactions[0]
}

// RecordOpeningDeposit sets the opening balance and appends the initial
// "Deposit" transaction. A zero opening deposit is allowed; a negative one
// is rejected.
func (a *Account) RecordOpeningDeposit(amount decimal.Decimal, now time.Time) (Transaction, error) {
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: initial deposit cannot be negative", apperrors.ErrValidation)
	}
	a.Balance = amount
	return a.appendTransaction(Deposit, amount, now), nil
}

// Deposit increases the balance and appends a "Deposit" transaction.
// There is no upper bound on the amount.
func (a *Account) Deposit(amount decimal.Decimal, now time.Time) (Transaction, error) {
	if err := a.requireActive(); err != nil {
		return Transaction{}, err
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}
	a.Balance = a.Balance.Add(amount)
	return a.appendTransaction(Deposit, amount, now), nil
}

// Withdraw decreases the balance and appends a "Withdrawal" transaction.
// A withdrawal exceeding the balance leaves the account unchanged and
// reports ErrInsufficientFunds.
func (a *Account) Withdraw(amount decimal.Decimal, now time.Time) (Transaction, error) {
	if err := a.requireActive(); err != nil {
		return Transaction{}, err
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}
	if amount.GreaterThan(a.Balance) {
		return Transaction{}, fmt.Errorf("%w: withdrawal of %s exceeds balance %s",
			apperrors.ErrInsufficientFunds, amount.StringFixed(2), a.Balance.StringFixed(2))
	}
	a.Balance = a.Balance.Sub(amount)
	return a.appendTransaction(Withdrawal, amount, now), nil
}

// AdvanceFeeCycle advances the fee-cycle counter once per full 7-day
// interval elapsed since LastFeeAppliedAt. When the counter reaches
// feeCycleLength the monthly conditions are applied, the counter resets to
// 0, and LastFeeAppliedAt moves to now, all in the same mutation. At most
// one monthly application happens per invocation, no matter how stale the
// account is.
//
// The model has no internal clock; callers invoke this on login or from a
// periodic sweep.
func (a *Account) AdvanceFeeCycle(now time.Time) (*Transaction, error) {
	if err := a.requireActive(); err != nil {
		return nil, err
	}
	steps := int(now.Sub(a.LastFeeAppliedAt) / feeCycleStep)
	for i := 0; i < steps; i++ {
		a.FeeCycleCounter++
		// Each counted step consumes its week, so a repeated check does
		// not advance the counter for the same elapsed interval twice.
		a.LastFeeAppliedAt = a.LastFeeAppliedAt.Add(feeCycleStep)
		if a.FeeCycleCounter >= feeCycleLength {
			txn := a.applyMonthlyConditions(now)
			a.FeeCycleCounter = 0
			a.LastFeeAppliedAt = now
			return &txn, nil
		}
	}
	return nil, nil
}

// applyMonthlyConditions credits interest to savings accounts and debits
// the flat fee from checking accounts. Interest is rounded to centavos.
func (a *Account) applyMonthlyConditions(now time.Time) Transaction {
	if a.AccountType == Savings {
		interest := a.Balance.Mul(savingsMonthlyRate).Round(2)
		a.Balance = a.Balance.Add(interest)
		return a.appendTransaction(Interest, interest, now)
	}
	a.Balance = a.Balance.Sub(checkingMonthlyFee)
	return a.appendTransaction(MonthlyFee, checkingMonthlyFee, now)
}

// Deactivate marks the account inactive. No side effects on balance or
// history.
func (a *Account) Deactivate() {
	a.IsActive = false
}

// Activate marks the account active again.
func (a *Account) Activate() {
	a.IsActive = true
}

func (a *Account) requireActive() error {
	if !a.IsActive {
		return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, a.AccountID)
	}
	return nil
}

// appendTransaction records the event carrying the already-mutated balance
// and bumps the transaction counters.
func (a *Account) appendTransaction(txType TransactionType, amount decimal.Decimal, now time.Time) Transaction {
	txn := NewTransaction(a.AccountID, txType, amount, a.Balance, now)
	a.Transactions = append([]Transaction{txn}, a.Transactions...)
	a.TransactionCount++
	occurred := now
	a.LastTransactionDate = &occurred
	return txn
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
