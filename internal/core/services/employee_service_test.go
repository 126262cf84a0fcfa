package services_test

import (
	"context"
	"testing"

	"github.com/itrustbank/itrust_backend/internal/apperrors"
	"github.com/itrustbank/itrust_backend/internal/core/domain"
	"github.com/itrustbank/itrust_backend/internal/core/services"
	"github.com/itrustbank/itrust_backend/internal/dto"
	"github.com/itrustbank/itrust_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  *services.EmployeeService
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	ids, err := utils.NewEmployeeIDProvider(1)
	suite.Require().NoError(err)
	suite.service = services.NewEmployeeService(suite.mockRepo, ids, bcrypt.MinCost)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Username: "tellerjuan",
		Password: "s3cret-pass",
		Name:     "Juan Reyes",
		Role:     domain.RoleTeller,
	}

	suite.mockRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).Return(nil)

	employee, err := suite.service.CreateEmployee(ctx, req, "EMPADMIN")

	suite.Require().NoError(err)
	suite.Contains(employee.EmployeeID, "EMP")
	suite.Equal(domain.RoleTeller, employee.Role)
	suite.True(employee.IsActive)
	suite.NotEqual("s3cret-pass", employee.PasswordHash)
	suite.True(utils.VerifyOperatorPassword("s3cret-pass", employee.PasswordHash))
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Username: "tellerjuan",
		Password: "s3cret-pass",
		Name:     "Juan Reyes",
		Role:     domain.RoleTeller,
	}

	suite.mockRepo.On("SaveEmployee", ctx, mock.AnythingOfType("domain.Employee")).Return(apperrors.ErrDuplicate)

	_, err := suite.service.CreateEmployee(ctx, req, "EMPADMIN")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *EmployeeServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashOperatorPassword("s3cret-pass", bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.Employee{
		EmployeeID:   "EMP1",
		Username:     "tellerjuan",
		PasswordHash: hash,
		Role:         domain.RoleTeller,
		IsActive:     true,
	}

	suite.mockRepo.On("FindEmployeeByUsername", ctx, "tellerjuan").Return(stored, nil)

	employee, err := suite.service.Authenticate(ctx, "tellerjuan", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal("EMP1", employee.EmployeeID)
}

func (suite *EmployeeServiceTestSuite) TestAuthenticate_UnknownUsernameAndWrongPasswordLookAlike() {
	ctx := context.Background()
	hash, err := utils.HashOperatorPassword("s3cret-pass", bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.Employee{
		EmployeeID:   "EMP1",
		Username:     "tellerjuan",
		PasswordHash: hash,
		IsActive:     true,
	}

	suite.mockRepo.On("FindEmployeeByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound)
	suite.mockRepo.On("FindEmployeeByUsername", ctx, "tellerjuan").Return(stored, nil)

	_, errUnknown := suite.service.Authenticate(ctx, "ghost", "whatever")
	_, errWrongPass := suite.service.Authenticate(ctx, "tellerjuan", "wrong-pass")

	suite.ErrorIs(errUnknown, apperrors.ErrValidation)
	suite.ErrorIs(errWrongPass, apperrors.ErrValidation)
	suite.Equal(errUnknown.Error(), errWrongPass.Error())
}

func (suite *EmployeeServiceTestSuite) TestAuthenticate_InactiveOperator() {
	ctx := context.Background()
	hash, err := utils.HashOperatorPassword("s3cret-pass", bcrypt.MinCost)
	suite.Require().NoError(err)
	stored := &domain.Employee{
		EmployeeID:   "EMP1",
		Username:     "tellerjuan",
		PasswordHash: hash,
		IsActive:     false,
	}

	suite.mockRepo.On("FindEmployeeByUsername", ctx, "tellerjuan").Return(stored, nil)

	_, err = suite.service.Authenticate(ctx, "tellerjuan", "s3cret-pass")

	suite.ErrorIs(err, apperrors.ErrInactive)
}

func (suite *EmployeeServiceTestSuite) TestSetEmployeeActive_RejectsSelfDeactivation() {
	ctx := context.Background()

	err := suite.service.SetEmployeeActive(ctx, "EMP1", false, "EMP1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetEmployeeActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestSetEmployeeActive_SelfReactivationAllowedByOthers() {
	ctx := context.Background()
	suite.mockRepo.On("SetEmployeeActive", ctx, "EMP2", false, "EMP1", mock.AnythingOfType("time.Time")).Return(nil)

	err := suite.service.SetEmployeeActive(ctx, "EMP2", false, "EMP1")

	suite.NoError(err)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
