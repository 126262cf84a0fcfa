package pgsql

import (
	portsrepo "github.com/itrustbank/itrust_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryProvider bundles all PostgreSQL repositories behind their
// ports.
type RepositoryProvider struct {
	AccountRepo     portsrepo.AccountRepository
	TransactionRepo portsrepo.TransactionRepository
	EmployeeRepo    portsrepo.EmployeeRepository
	ReportingRepo   portsrepo.ReportingRepository
}

// NewRepositoryProvider wires every repository to the shared connection
// pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *RepositoryProvider {
	return &RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		EmployeeRepo:    newPgxEmployeeRepository(pool),
		ReportingRepo:   newPgxReportingRepository(pool),
	}
}
