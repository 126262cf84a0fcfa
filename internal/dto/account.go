package dto

import (
	"time"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
// CustomerID may be supplied (e.g. a second account for an existing
// customer); when absent one is generated.
type CreateAccountRequest struct {
	CustomerID     *string            `json:"customerID"`
	FirstName      string             `json:"firstName" binding:"required"`
	MiddleName     string             `json:"middleName"`
	LastName       string             `json:"lastName" binding:"required"`
	BirthDate      string             `json:"birthDate" binding:"required,datetime=2006-01-02"`
	Street         string             `json:"street"`
	Barangay       string             `json:"barangay"`
	Municipality   string             `json:"municipality"`
	ProvinceCity   string             `json:"provinceCity"`
	Zip            string             `json:"zip"`
	Phone          string             `json:"phone" binding:"omitempty,phoneno"`
	Email          string             `json:"email" binding:"omitempty,email"`
	Sex            string             `json:"sex" binding:"omitempty,oneof=Male Female"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=Savings Checking"`
	InitialDeposit decimal.Decimal    `json:"initialDeposit"`
}

// UpdateAccountRequest defines the profile fields a teller may edit.
// Pointers distinguish "not provided" from zero-value updates.
type UpdateAccountRequest struct {
	FirstName    *string `json:"firstName"`
	MiddleName   *string `json:"middleName"`
	LastName     *string `json:"lastName"`
	Street       *string `json:"street"`
	Barangay     *string `json:"barangay"`
	Municipality *string `json:"municipality"`
	ProvinceCity *string `json:"provinceCity"`
	Zip          *string `json:"zip"`
	Phone        *string `json:"phone" binding:"omitempty,phoneno"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Sex          *string `json:"sex" binding:"omitempty,oneof=Male Female"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	CustomerID          string             `json:"customerID"`
	AccountID           string             `json:"accountID"`
	FirstName           string             `json:"firstName"`
	MiddleName          string             `json:"middleName"`
	LastName            string             `json:"lastName"`
	FullName            string             `json:"fullName"`
	BirthDate           string             `json:"birthDate"`
	Age                 int                `json:"age"`
	FullAddress         string             `json:"fullAddress"`
	Phone               string             `json:"phone"`
	Email               string             `json:"email"`
	Sex                 string             `json:"sex"`
	AccountType         domain.AccountType `json:"accountType"`
	Balance             decimal.Decimal    `json:"balance"`
	IsActive            bool               `json:"isActive"`
	FeeCycleCounter     int                `json:"feeCycleCounter"`
	TransactionCount    int                `json:"transactionCount"`
	LastTransactionDate *time.Time         `json:"lastTransactionDate,omitempty"`
	LastFeeAppliedAt    time.Time          `json:"lastFeeAppliedAt"`
	CreatedAt           time.Time          `json:"createdAt"`
	CreatedBy           string             `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		CustomerID:          acc.CustomerID,
		AccountID:           acc.AccountID,
		FirstName:           acc.FirstName,
		MiddleName:          acc.MiddleName,
		LastName:            acc.LastName,
		FullName:            acc.FullName(),
		BirthDate:           acc.BirthDate.Format("2006-01-02"),
		Age:                 acc.Age(),
		FullAddress:         acc.FullAddress(),
		Phone:               acc.Phone,
		Email:               acc.Email,
		Sex:                 acc.Sex,
		AccountType:         acc.AccountType,
		Balance:             acc.Balance,
		IsActive:            acc.IsActive,
		FeeCycleCounter:     acc.FeeCycleCounter,
		TransactionCount:    acc.TransactionCount,
		LastTransactionDate: acc.LastTransactionDate,
		LastFeeAppliedAt:    acc.LastFeeAppliedAt,
		CreatedAt:           acc.CreatedAt,
		CreatedBy:           acc.CreatedBy,
	}
}

// ToListAccountResponse converts a slice of accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// SearchAccountsParams carries the substring query.
type SearchAccountsParams struct {
	Query string `form:"q" binding:"required"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// DeleteAccountResponse reports whether the delete was carried out or
// downgraded to a deactivation because history exists.
type DeleteAccountResponse struct {
	AccountID   string `json:"accountID"`
	Deleted     bool   `json:"deleted"`
	Deactivated bool   `json:"deactivated"`
}
