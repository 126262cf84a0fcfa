package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/itrustbank/itrust_backend/internal/apperrors"
	"github.com/itrustbank/itrust_backend/internal/core/domain"
	portsrepo "github.com/itrustbank/itrust_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

const employeeColumns = `
	employee_id, username, password_hash, name, role, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxEmployeeRepository struct {
	BaseRepository
}

var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var emp domain.Employee
	err := row.Scan(
		&emp.EmployeeID,
		&emp.Username,
		&emp.PasswordHash,
		&emp.Name,
		&emp.Role,
		&emp.IsActive,
		&emp.CreatedAt,
		&emp.CreatedBy,
		&emp.LastUpdatedAt,
		&emp.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// SaveEmployee inserts a new operator. A username collision reports
// ErrDuplicate.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (
			employee_id, username, password_hash, name, role, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.Username,
		employee.PasswordHash,
		employee.Name,
		employee.Role,
		employee.IsActive,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("username %s: %w", employee.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save employee %s: %w", employee.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an operator by employee ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	emp, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	return emp, nil
}

// FindEmployeeByUsername retrieves an operator by login name.
func (r *PgxEmployeeRepository) FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE username = $1;`
	emp, err := scanEmployee(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("username %s: %w", username, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find employee by username: %w", err)
	}
	return emp, nil
}

// ListEmployees retrieves all operators.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at, employee_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("employee rows error: %w", err)
	}
	return employees, nil
}

// SetEmployeeActive flips the active flag.
func (r *PgxEmployeeRepository) SetEmployeeActive(ctx context.Context, employeeID string, active bool, userID string, now time.Time) error {
	query := `
		UPDATE employees
		SET is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, employeeID, active, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set employee %s active flag: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}
