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
	"github.com/itrustbank/itrust_backend/internal/utils"
)

// EmployeeService manages bank operators. Passwords only exist as bcrypt
// hashes past this boundary.
type EmployeeService struct {
	employeeRepo portsrepo.EmployeeRepository
	ids          utils.EmployeeIDProvider
	bcryptCost   int
}

var _ portssvc.EmployeeSvc = (*EmployeeService)(nil)

func NewEmployeeService(employeeRepo portsrepo.EmployeeRepository, ids utils.EmployeeIDProvider, bcryptCost int) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, ids: ids, bcryptCost: bcryptCost}
}

// CreateEmployee registers a new operator.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, operatorID string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashOperatorPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:   s.ids.NextEmployeeID(),
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save employee", slog.String("error", err.Error()), slog.String("username", req.Username))
		}
		return nil, err
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID), slog.String("role", string(employee.Role)))
	return &employee, nil
}

// Authenticate verifies operator credentials. Unknown usernames and wrong
// passwords both report ErrValidation so the caller cannot tell which one
// failed; an inactive operator with correct credentials reports
// ErrInactive.
func (s *EmployeeService) Authenticate(ctx context.Context, username string, password string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrValidation)
		}
		logger.Error("Failed to look up employee", slog.String("error", err.Error()))
		return nil, err
	}

	if !utils.VerifyOperatorPassword(password, employee.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrValidation)
	}
	if !employee.IsActive {
		return nil, fmt.Errorf("%w: contact the administrator", apperrors.ErrInactive)
	}

	logger.Info("Employee authenticated", slog.String("employee_id", employee.EmployeeID))
	return employee, nil
}

// ListEmployees retrieves all operators.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}

// SetEmployeeActive flips an operator's active flag. Operators cannot
// deactivate themselves.
func (s *EmployeeService) SetEmployeeActive(ctx context.Context, employeeID string, active bool, operatorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !active && employeeID == operatorID {
		return fmt.Errorf("%w: cannot deactivate your own account", apperrors.ErrValidation)
	}

	if err := s.employeeRepo.SetEmployeeActive(ctx, employeeID, active, operatorID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to set employee active flag", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		}
		return err
	}

	logger.Info("Employee active flag set", slog.String("employee_id", employeeID), slog.Bool("active", active))
	return nil
}
