package services

import (
	"context"

	"github.com/itrustbank/itrust_backend/internal/dto"
)

// ReportingSvc serves the manager dashboard aggregates.
type ReportingSvc interface {
	// Summary gathers the account and transaction totals.
	Summary(ctx context.Context) (*dto.SummaryResponse, error)
}
