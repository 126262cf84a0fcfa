package dto

import (
	"time"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountRequest carries the amount for a deposit or withdrawal.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// TransactionResponse defines the data returned for one transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	Type          domain.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	BalanceAfter  decimal.Decimal        `json:"balanceAfter"`
	OccurredAt    time.Time              `json:"occurredAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		BalanceAfter:  txn.BalanceAfter,
		OccurredAt:    txn.OccurredAt,
	}
}

// ListTransactionsResponse wraps an account's history, newest first.
type ListTransactionsResponse struct {
	AccountID    string                `json:"accountID"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a history slice.
func ToListTransactionsResponse(accountID string, txns []domain.Transaction) ListTransactionsResponse {
	res := ListTransactionsResponse{
		AccountID:    accountID,
		Transactions: make([]TransactionResponse, len(txns)),
	}
	for i := range txns {
		res.Transactions[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// FeeCycleResponse reports the outcome of a fee-cycle check.
type FeeCycleResponse struct {
	AccountID       string               `json:"accountID"`
	Applied         bool                 `json:"applied"`
	FeeCycleCounter int                  `json:"feeCycleCounter"`
	Transaction     *TransactionResponse `json:"transaction,omitempty"`
}
