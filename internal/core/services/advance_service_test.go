package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	portssvc "github.com/projworks/advance_ledger_app/internal/core/ports/services"
	"github.com/projworks/advance_ledger_app/internal/core/services"
	"github.com/projworks/advance_ledger_app/internal/dto"
)

// --- Mock AdvanceRepository ---
type MockAdvanceRepository struct {
	mock.Mock
}

func (m *MockAdvanceRepository) ListAdvances(ctx context.Context, population domain.Population) ([]domain.AdvanceRecord, error) {
	args := m.Called(ctx, population)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdvanceRecord), args.Error(1)
}

func (m *MockAdvanceRepository) FindAdvanceByID(ctx context.Context, population domain.Population, advanceID string) (*domain.AdvanceRecord, error) {
	args := m.Called(ctx, population, advanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvanceRecord), args.Error(1)
}

func (m *MockAdvanceRepository) SaveAdvance(ctx context.Context, record domain.AdvanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAdvanceRepository) UpdateAdvance(ctx context.Context, record domain.AdvanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAdvanceRepository) DeleteAdvance(ctx context.Context, population domain.Population, advanceID string) error {
	args := m.Called(ctx, population, advanceID)
	return args.Error(0)
}

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// --- Test Suite ---
type AdvanceServiceTestSuite struct {
	suite.Suite
	mockAdvanceRepo *MockAdvanceRepository
	mockProjectRepo *MockProjectRepository
	service         portssvc.AdvanceSvcFacade
}

func (suite *AdvanceServiceTestSuite) SetupTest() {
	suite.mockAdvanceRepo = new(MockAdvanceRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.service = services.NewAdvanceService(suite.mockAdvanceRepo, suite.mockProjectRepo)
}

func testAdvance(advanceID string, amount string, settlements ...domain.Settlement) domain.AdvanceRecord {
	return domain.AdvanceRecord{
		AdvanceID:     advanceID,
		Population:    domain.Debtor,
		CustomerName:  "Acme Pvt Ltd",
		AdvanceDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		AdvanceAmount: decimal.RequireFromString(amount),
		Settlements:   settlements,
	}
}

// --- Test Cases ---

func (suite *AdvanceServiceTestSuite) TestListAdvances_EnrichesProjectFields() {
	ctx := context.Background()
	projectID := uuid.NewString()
	rec := testAdvance(uuid.NewString(), "1000")
	rec.ProjectID = &projectID

	suite.mockAdvanceRepo.On("ListAdvances", ctx, domain.Debtor).Return([]domain.AdvanceRecord{rec}, nil).Once()
	suite.mockProjectRepo.On("ListProjects", ctx).Return([]domain.Project{{
		ProjectID:    projectID,
		ProjectNo:    "P-042",
		ProjectName:  "Conveyor Line",
		CustomerName: "Acme Pvt Ltd",
	}}, nil).Once()

	responses, err := suite.service.ListAdvances(ctx, domain.Debtor)

	suite.Require().NoError(err)
	suite.Require().Len(responses, 1)
	suite.Equal("P-042", responses[0].ProjectNo)
	suite.Equal("Conveyor Line", responses[0].ProjectName)
	suite.True(responses[0].RemainingAmount.Equal(decimal.RequireFromString("1000")))
	suite.False(responses[0].Settled)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestListAdvances_MissingProjectLinkLeftEmpty() {
	ctx := context.Background()
	danglingID := uuid.NewString()
	rec := testAdvance(uuid.NewString(), "500")
	rec.ProjectID = &danglingID

	suite.mockAdvanceRepo.On("ListAdvances", ctx, domain.Debtor).Return([]domain.AdvanceRecord{rec}, nil).Once()
	suite.mockProjectRepo.On("ListProjects", ctx).Return([]domain.Project{}, nil).Once()

	responses, err := suite.service.ListAdvances(ctx, domain.Debtor)

	suite.Require().NoError(err)
	suite.Require().Len(responses, 1)
	suite.Empty(responses[0].ProjectNo)
	suite.Empty(responses[0].ProjectName)
}

func (suite *AdvanceServiceTestSuite) TestListAdvances_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockAdvanceRepo.On("ListAdvances", ctx, domain.Creditor).Return(nil, expectedErr).Once()

	responses, err := suite.service.ListAdvances(ctx, domain.Creditor)

	suite.Require().Error(err)
	suite.Nil(responses)
	suite.ErrorIs(err, expectedErr)
}

func (suite *AdvanceServiceTestSuite) TestCreateAdvance_Success() {
	ctx := context.Background()
	req := dto.CreateAdvanceRequest{
		CustomerName:  "Acme Pvt Ltd",
		AdvanceDate:   "2024-03-15",
		AdvanceAmount: decimal.RequireFromString("2500.50"),
		PaymentTerms:  "30 days",
	}

	suite.mockAdvanceRepo.On("SaveAdvance", ctx, mock.MatchedBy(func(rec domain.AdvanceRecord) bool {
		return rec.AdvanceID != "" &&
			rec.Population == domain.Debtor &&
			rec.CustomerName == req.CustomerName &&
			rec.AdvanceAmount.Equal(req.AdvanceAmount) &&
			len(rec.Settlements) == 0
	})).Return(nil).Once()

	resp, err := suite.service.CreateAdvance(ctx, domain.Debtor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("2024-03-15", resp.AdvanceDate)
	suite.True(resp.RemainingAmount.Equal(req.AdvanceAmount))
	suite.False(resp.Settled)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestCreateAdvance_BlankCustomerName() {
	ctx := context.Background()
	req := dto.CreateAdvanceRequest{
		CustomerName:  "   ",
		AdvanceDate:   "2024-03-15",
		AdvanceAmount: decimal.RequireFromString("100"),
	}

	resp, err := suite.service.CreateAdvance(ctx, domain.Debtor, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAdvanceRepo.AssertNotCalled(suite.T(), "SaveAdvance", mock.Anything, mock.Anything)
}

func (suite *AdvanceServiceTestSuite) TestCreateAdvance_BadDate() {
	ctx := context.Background()
	req := dto.CreateAdvanceRequest{
		CustomerName:  "Acme Pvt Ltd",
		AdvanceDate:   "15-03-2024",
		AdvanceAmount: decimal.RequireFromString("100"),
	}

	resp, err := suite.service.CreateAdvance(ctx, domain.Debtor, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AdvanceServiceTestSuite) TestCreateAdvance_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateAdvanceRequest{
		CustomerName:  "Acme Pvt Ltd",
		AdvanceDate:   "2024-03-15",
		AdvanceAmount: decimal.Zero,
	}

	resp, err := suite.service.CreateAdvance(ctx, domain.Debtor, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AdvanceServiceTestSuite) TestUpdateAdvance_PreservesSettlements() {
	ctx := context.Background()
	advanceID := uuid.NewString()
	existing := testAdvance(advanceID, "1000", domain.Settlement{
		SettlementID:  uuid.NewString(),
		InvoiceNumber: "INV-1",
		SettledAmount: decimal.RequireFromString("400"),
	})
	req := dto.UpdateAdvanceRequest{
		CustomerName:  "Renamed Customer",
		AdvanceDate:   "2024-04-01",
		AdvanceAmount: decimal.RequireFromString("1200"),
	}

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, domain.Debtor, advanceID).Return(&existing, nil).Once()
	suite.mockAdvanceRepo.On("UpdateAdvance", ctx, mock.MatchedBy(func(rec domain.AdvanceRecord) bool {
		return rec.AdvanceID == advanceID &&
			rec.CustomerName == "Renamed Customer" &&
			rec.AdvanceAmount.Equal(decimal.RequireFromString("1200")) &&
			len(rec.Settlements) == 1
	})).Return(nil).Once()

	resp, err := suite.service.UpdateAdvance(ctx, domain.Debtor, advanceID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.RemainingAmount.Equal(decimal.RequireFromString("800")))
	suite.Equal("INV-1", resp.LastInvoiceNumber)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestUpdateAdvance_NotFound() {
	ctx := context.Background()
	advanceID := uuid.NewString()
	req := dto.UpdateAdvanceRequest{
		CustomerName:  "Acme Pvt Ltd",
		AdvanceDate:   "2024-03-15",
		AdvanceAmount: decimal.RequireFromString("100"),
	}

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, domain.Debtor, advanceID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.UpdateAdvance(ctx, domain.Debtor, advanceID, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AdvanceServiceTestSuite) TestDeleteAdvance_Success() {
	ctx := context.Background()
	advanceID := uuid.NewString()

	suite.mockAdvanceRepo.On("DeleteAdvance", ctx, domain.Creditor, advanceID).Return(nil).Once()

	err := suite.service.DeleteAdvance(ctx, domain.Creditor, advanceID)

	suite.Require().NoError(err)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestSettleAdvance_AppendsSettlement() {
	ctx := context.Background()
	advanceID := uuid.NewString()
	existing := testAdvance(advanceID, "1000")
	req := dto.SettleRequest{
		InvoiceNumber: "INV-77",
		SettledAmount: decimal.RequireFromString("250"),
	}

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, domain.Debtor, advanceID).Return(&existing, nil).Once()
	suite.mockAdvanceRepo.On("UpdateAdvance", ctx, mock.MatchedBy(func(rec domain.AdvanceRecord) bool {
		return len(rec.Settlements) == 1 &&
			rec.Settlements[0].InvoiceNumber == "INV-77" &&
			rec.Settlements[0].SettledAmount.Equal(req.SettledAmount) &&
			rec.Settlements[0].SettlementID != ""
	})).Return(nil).Once()

	err := suite.service.SettleAdvance(ctx, domain.Debtor, advanceID, req)

	suite.Require().NoError(err)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestSettleAdvance_OverRemainingRejected() {
	ctx := context.Background()
	advanceID := uuid.NewString()
	existing := testAdvance(advanceID, "1000", domain.Settlement{
		SettlementID:  uuid.NewString(),
		InvoiceNumber: "INV-1",
		SettledAmount: decimal.RequireFromString("900"),
	})
	req := dto.SettleRequest{
		InvoiceNumber: "INV-2",
		SettledAmount: decimal.RequireFromString("100.01"),
	}

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, domain.Debtor, advanceID).Return(&existing, nil).Once()

	err := suite.service.SettleAdvance(ctx, domain.Debtor, advanceID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrIntegrity)
	suite.mockAdvanceRepo.AssertNotCalled(suite.T(), "UpdateAdvance", mock.Anything, mock.Anything)
}

func (suite *AdvanceServiceTestSuite) TestSettleAdvance_AdvanceNotFound() {
	ctx := context.Background()
	advanceID := uuid.NewString()
	req := dto.SettleRequest{
		InvoiceNumber: "INV-1",
		SettledAmount: decimal.RequireFromString("50"),
	}

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, domain.Debtor, advanceID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.SettleAdvance(ctx, domain.Debtor, advanceID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AdvanceServiceTestSuite) TestUnsettleAdvance_RemovesSettlement() {
	ctx := context.Background()
	advanceID := uuid.NewString()
	settlementID := uuid.NewString()
	existing := testAdvance(advanceID, "1000", domain.Settlement{
		SettlementID:  settlementID,
		InvoiceNumber: "INV-1",
		SettledAmount: decimal.RequireFromString("400"),
	})

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, domain.Debtor, advanceID).Return(&existing, nil).Once()
	suite.mockAdvanceRepo.On("UpdateAdvance", ctx, mock.MatchedBy(func(rec domain.AdvanceRecord) bool {
		return len(rec.Settlements) == 0
	})).Return(nil).Once()

	err := suite.service.UnsettleAdvance(ctx, domain.Debtor, advanceID, settlementID)

	suite.Require().NoError(err)
	suite.mockAdvanceRepo.AssertExpectations(suite.T())
}

func (suite *AdvanceServiceTestSuite) TestUnsettleAdvance_SettlementMissing() {
	ctx := context.Background()
	advanceID := uuid.NewString()
	existing := testAdvance(advanceID, "1000", domain.Settlement{
		SettlementID:  uuid.NewString(),
		InvoiceNumber: "INV-1",
		SettledAmount: decimal.RequireFromString("400"),
	})

	suite.mockAdvanceRepo.On("FindAdvanceByID", ctx, domain.Debtor, advanceID).Return(&existing, nil).Once()

	err := suite.service.UnsettleAdvance(ctx, domain.Debtor, advanceID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAdvanceRepo.AssertNotCalled(suite.T(), "UpdateAdvance", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestAdvanceService(t *testing.T) {
	suite.Run(t, new(AdvanceServiceTestSuite))
}
