package services

import (
	"context"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
	"github.com/itrustbank/itrust_backend/internal/dto"
)

// EmployeeSvc manages operators and verifies their credentials.
type EmployeeSvc interface {
	// CreateEmployee registers an operator with a bcrypt-hashed password.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, operatorID string) (*domain.Employee, error)

	// Authenticate verifies username and password. Inactive operators are
	// rejected even with correct credentials.
	Authenticate(ctx context.Context, username string, password string) (*domain.Employee, error)

	// ListEmployees retrieves all operators.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// SetEmployeeActive flips an operator's active flag.
	SetEmployeeActive(ctx context.Context, employeeID string, active bool, operatorID string) error
}
