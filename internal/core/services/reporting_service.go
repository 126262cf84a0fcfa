package services

import (
	"context"
	"fmt"

	portsrepo "github.com/itrustbank/itrust_backend/internal/core/ports/repositories"
	portssvc "github.com/itrustbank/itrust_backend/internal/core/ports/services"
	"github.com/itrustbank/itrust_backend/internal/dto"
	"github.com/itrustbank/itrust_backend/internal/utils"
)

// ReportingService serves the manager dashboard aggregates.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

var _ portssvc.ReportingSvc = (*ReportingService)(nil)

func NewReportingService(reportingRepo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

// Summary gathers the dashboard totals.
func (s *ReportingService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	accounts, err := s.reportingRepo.TotalAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	deposits, err := s.reportingRepo.TotalDeposits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum deposits: %w", err)
	}
	withdrawals, err := s.reportingRepo.TotalWithdrawals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum withdrawals: %w", err)
	}
	transactions, err := s.reportingRepo.TotalTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	return &dto.SummaryResponse{
		TotalAccounts:           accounts,
		TotalDeposits:           deposits,
		TotalWithdrawals:        withdrawals,
		TotalTransactions:       transactions,
		TotalDepositsDisplay:    utils.FormatPeso(deposits),
		TotalWithdrawalsDisplay: utils.FormatPeso(withdrawals),
	}, nil
}
