package services_test

import (
	"context"
	"testing"

	"github.com/itrustbank/itrust_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  *services.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestSummary() {
	ctx := context.Background()
	suite.mockRepo.On("TotalAccounts", ctx).Return(int64(12), nil)
	suite.mockRepo.On("TotalDeposits", ctx).Return(decimal.RequireFromString("150000.50"), nil)
	suite.mockRepo.On("TotalWithdrawals", ctx).Return(decimal.RequireFromString("42000.00"), nil)
	suite.mockRepo.On("TotalTransactions", ctx).Return(int64(340), nil)

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(12), summary.TotalAccounts)
	suite.Equal(int64(340), summary.TotalTransactions)
	suite.Equal("₱150,000.50", summary.TotalDepositsDisplay)
	suite.Equal("₱42,000.00", summary.TotalWithdrawalsDisplay)
}

func (suite *ReportingServiceTestSuite) TestSummary_PropagatesErrors() {
	ctx := context.Background()
	suite.mockRepo.On("TotalAccounts", ctx).Return(int64(0), context.DeadlineExceeded)

	_, err := suite.service.Summary(ctx)

	suite.Error(err)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
