package services

import (
	"context"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
	"github.com/itrustbank/itrust_backend/internal/dto"
)

// AccountSvc is the account management facade consumed by handlers.
type AccountSvc interface {
	// CreateAccount opens an account with its initial deposit, both
	// committed atomically.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, operatorID string) (*domain.Account, error)

	// GetAccountByIdentifier looks an account up by customer ID, account
	// ID, or email, and loads its transaction history.
	GetAccountByIdentifier(ctx context.Context, identifier string) (*domain.Account, error)

	// ListAccounts retrieves a paginated account list.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// SearchAccounts runs a case-insensitive substring search.
	SearchAccounts(ctx context.Context, query string) ([]domain.Account, error)

	// UpdateAccount edits profile fields.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, operatorID string) (*domain.Account, error)

	// DeactivateAccount marks the account inactive.
	DeactivateAccount(ctx context.Context, accountID string, operatorID string) error

	// ReactivateAccount marks the account active again.
	ReactivateAccount(ctx context.Context, accountID string, operatorID string) error

	// DeleteAccount removes the account, unless it has transaction
	// history, in which case it deactivates instead and returns true.
	DeleteAccount(ctx context.Context, accountID string, operatorID string) (deactivated bool, err error)
}
