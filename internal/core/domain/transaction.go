package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a balance-affecting event.
type TransactionType string

const (
	Deposit    TransactionType = "Deposit"
	Withdrawal TransactionType = "Withdrawal"
	Interest   TransactionType = "Interest"
	MonthlyFee TransactionType = "Monthly Fee"
)

// Transaction is an immutable record of one balance-affecting event.
// Amount is always a positive magnitude; the type carries the direction.
// Created exactly once per financial event, persisted immediately, never
// mutated or deleted.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

// NewTransaction builds a transaction with a generated ID. Loading from
// storage keeps the stored ID instead of calling this.
func NewTransaction(accountID string, txType TransactionType, amount, balanceAfter decimal.Decimal, occurredAt time.Time) Transaction {
	return Transaction{
		TransactionID: NewTransactionID(),
		AccountID:     accountID,
		Type:          txType,
		Amount:        amount,
		BalanceAfter:  balanceAfter,
		OccurredAt:    occurredAt,
	}
}
