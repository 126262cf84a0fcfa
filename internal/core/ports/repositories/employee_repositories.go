package repositories

import (
	"context"
	"time"

	"github.com/itrustbank/itrust_backend/internal/core/domain"
)

// EmployeeRepository persists bank operators.
type EmployeeRepository interface {
	// SaveEmployee persists a new employee. Reports ErrDuplicate when the
	// username is taken.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// FindEmployeeByID retrieves an employee by ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByUsername retrieves an employee by exact username.
	FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)

	// ListEmployees retrieves all employees.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// SetEmployeeActive flips the active flag.
	SetEmployeeActive(ctx context.Context, employeeID string, active bool, userID string, now time.Time) error
}
