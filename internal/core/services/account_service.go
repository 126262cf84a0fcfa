package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/itrustbank/itrust_backend/internal/apperrors"
	"github.com/itrustbank/itrust_backend/internal/core/domain"
	portsrepo "github.com/itrustbank/itrust_backend/internal/core/ports/repositories"
	portssvc "github.com/itrustbank/itrust_backend/internal/core/ports/services"
	"github.com/itrustbank/itrust_backend/internal/dto"
	"github.com/itrustbank/itrust_backend/internal/middleware"
)

// AccountService implements account lifecycle management. Repositories are
// the only source of truth; accounts are loaded per operation, never cached
// in parallel lists.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
	txnRepo     portsrepo.TransactionRepository
}

var _ portssvc.AccountSvc = (*AccountService)(nil)

func NewAccountService(accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo, txnRepo: txnRepo}
}

// CreateAccount opens a new account. The account row and its opening
// "Deposit" transaction commit in one database transaction.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, operatorID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid birth date %q", apperrors.ErrValidation, req.BirthDate)
	}

	customerID := domain.NewCustomerID()
	if req.CustomerID != nil && *req.CustomerID != "" {
		customerID = *req.CustomerID
	}

	now := time.Now()
	account := domain.Account{
		CustomerID:       customerID,
		AccountID:        domain.NewAccountID(),
		FirstName:        req.FirstName,
		MiddleName:       req.MiddleName,
		LastName:         req.LastName,
		BirthDate:        birthDate,
		Street:           req.Street,
		Barangay:         req.Barangay,
		Municipality:     req.Municipality,
		ProvinceCity:     req.ProvinceCity,
		Zip:              req.Zip,
		Phone:            req.Phone,
		Email:            req.Email,
		Sex:              req.Sex,
		AccountType:      req.AccountType,
		IsActive:         true,
		FeeCycleCounter:  0,
		LastFeeAppliedAt: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	opening, err := account.RecordOpeningDeposit(req.InitialDeposit, now)
	if err != nil {
		return nil, err
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	if err := s.accountRepo.SaveAccountInTx(ctx, tx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}
	if err := s.txnRepo.SaveTransactionInTx(ctx, tx, opening); err != nil {
		logger.Error("Failed to save opening deposit", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("customer_id", account.CustomerID))
	return &account, nil
}

// GetAccountByIdentifier looks up an account by customer ID, account ID, or
// email, and loads its transaction history (newest first).
func (s *AccountService) GetAccountByIdentifier(ctx context.Context, identifier string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByIdentifier(ctx, identifier)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account", slog.String("error", err.Error()), slog.String("identifier", identifier))
		}
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactions(ctx, account.AccountID)
	if err != nil {
		logger.Error("Failed to load transactions", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}
	account.Transactions = txns
	return account, nil
}

// ListAccounts retrieves a paginated account list.
func (s *AccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// SearchAccounts runs a case-insensitive substring search over IDs, name,
// and email.
func (s *AccountService) SearchAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.SearchAccounts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// UpdateAccount edits the profile fields present in the request.
func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, operatorID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	applyIfSet := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyIfSet(&account.FirstName, req.FirstName)
	applyIfSet(&account.MiddleName, req.MiddleName)
	applyIfSet(&account.LastName, req.LastName)
	applyIfSet(&account.Street, req.Street)
	applyIfSet(&account.Barangay, req.Barangay)
	applyIfSet(&account.Municipality, req.Municipality)
	applyIfSet(&account.ProvinceCity, req.ProvinceCity)
	applyIfSet(&account.Zip, req.Zip)
	applyIfSet(&account.Phone, req.Phone)
	applyIfSet(&account.Email, req.Email)
	applyIfSet(&account.Sex, req.Sex)

	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = operatorID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount marks an account inactive. No side effects on balance
// or history.
func (s *AccountService) DeactivateAccount(ctx context.Context, accountID string, operatorID string) error {
	return s.setActive(ctx, accountID, false, operatorID)
}

// ReactivateAccount marks an account active again.
func (s *AccountService) ReactivateAccount(ctx context.Context, accountID string, operatorID string) error {
	return s.setActive(ctx, accountID, true, operatorID)
}

func (s *AccountService) setActive(ctx context.Context, accountID string, active bool, operatorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.accountRepo.SetAccountActive(ctx, accountID, active, operatorID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to set account active flag", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}
	logger.Info("Account active flag set", slog.String("account_id", accountID), slog.Bool("active", active))
	return nil
}

// DeleteAccount removes an account that has no transaction history. When
// history exists the delete is refused and the account is deactivated
// instead; the returned flag reports that fallback. The history check and
// the delete run in one database transaction holding the account row lock,
// so a deposit committing concurrently cannot slip a transaction in between
// the check and the delete.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID string, operatorID string) (bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	// The locked read doubles as the existence check, so a miss reports
	// ErrNotFound, not a silent zero-row delete.
	if _, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID); err != nil {
		return false, err
	}

	hasHistory, err := s.txnRepo.HasTransactions(ctx, tx, accountID)
	if err != nil {
		return false, err
	}
	if hasHistory {
		if err := s.accountRepo.SetAccountActiveInTx(ctx, tx, accountID, false, operatorID, time.Now()); err != nil {
			return false, err
		}
		if err := s.accountRepo.Commit(ctx, tx); err != nil {
			return false, err
		}
		logger.Info("Delete refused for account with history, deactivated instead", slog.String("account_id", accountID))
		return true, nil
	}

	if err := s.accountRepo.DeleteAccountInTx(ctx, tx, accountID); err != nil {
		logger.Error("Failed to delete account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return false, err
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return false, err
	}
	logger.Info("Account deleted", slog.String("account_id", accountID))
	return false, nil
}
