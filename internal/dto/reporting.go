package dto

import "github.com/shopspring/decimal"

// SummaryResponse carries the dashboard aggregates. The display fields are
// peso-formatted strings ready for presentation.
type SummaryResponse struct {
	TotalAccounts           int64           `json:"totalAccounts"`
	TotalDeposits           decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals        decimal.Decimal `json:"totalWithdrawals"`
	TotalTransactions       int64           `json:"totalTransactions"`
	TotalDepositsDisplay    string          `json:"totalDepositsDisplay"`
	TotalWithdrawalsDisplay string          `json:"totalWithdrawalsDisplay"`
}
