package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/projworks/advance_ledger_app/internal/apperrors"
	"github.com/projworks/advance_ledger_app/internal/core/domain"
	portssvc "github.com/projworks/advance_ledger_app/internal/core/ports/services"
	"github.com/projworks/advance_ledger_app/internal/dto"
	"github.com/projworks/advance_ledger_app/internal/handlers"
	"github.com/projworks/advance_ledger_app/internal/middleware"
)

// --- Mock AdvanceService ---
type MockAdvanceService struct {
	mock.Mock
}

func (m *MockAdvanceService) ListAdvances(ctx context.Context, population domain.Population) ([]dto.AdvanceResponse, error) {
	args := m.Called(ctx, population)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AdvanceResponse), args.Error(1)
}
func (m *MockAdvanceService) CreateAdvance(ctx context.Context, population domain.Population, req dto.CreateAdvanceRequest) (*dto.AdvanceResponse, error) {
	args := m.Called(ctx, population, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AdvanceResponse), args.Error(1)
}
func (m *MockAdvanceService) UpdateAdvance(ctx context.Context, population domain.Population, advanceID string, req dto.UpdateAdvanceRequest) (*dto.AdvanceResponse, error) {
	args := m.Called(ctx, population, advanceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AdvanceResponse), args.Error(1)
}
func (m *MockAdvanceService) DeleteAdvance(ctx context.Context, population domain.Population, advanceID string) error {
	args := m.Called(ctx, population, advanceID)
	return args.Error(0)
}
func (m *MockAdvanceService) SettleAdvance(ctx context.Context, population domain.Population, advanceID string, req dto.SettleRequest) error {
	args := m.Called(ctx, population, advanceID, req)
	return args.Error(0)
}
func (m *MockAdvanceService) UnsettleAdvance(ctx context.Context, population domain.Population, advanceID string, settlementID string) error {
	args := m.Called(ctx, population, advanceID, settlementID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AdvanceSvcFacade = (*MockAdvanceService)(nil)

// --- Test Suite ---
type AdvanceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAdvanceService
	jwtSecret   string
}

func (suite *AdvanceHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "advance-ledger-test",
		Subject:   "advances",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AdvanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockAdvanceService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAdvanceRoutes(v1, suite.mockService)
}

func (suite *AdvanceHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AdvanceHandlerTestSuite) TestListDebtors_Success() {
	expected := []dto.AdvanceResponse{{
		AdvanceID:       uuid.NewString(),
		CustomerName:    "Acme Pvt Ltd",
		AdvanceDate:     "2024-03-15",
		AdvanceAmount:   decimal.RequireFromString("1000"),
		RemainingAmount: decimal.RequireFromString("600"),
	}}
	suite.mockService.On("ListAdvances", mock.Anything, domain.Debtor).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/debtors", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAdvancesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Advances, 1)
	suite.Equal(expected[0].AdvanceID, resp.Advances[0].AdvanceID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AdvanceHandlerTestSuite) TestListCreditors_RoutesToCreditorPopulation() {
	suite.mockService.On("ListAdvances", mock.Anything, domain.Creditor).Return([]dto.AdvanceResponse{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/creditors", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AdvanceHandlerTestSuite) TestListAdvances_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/debtors", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListAdvances", mock.Anything, mock.Anything)
}

func (suite *AdvanceHandlerTestSuite) TestCreateDebtor_Success() {
	req := dto.CreateAdvanceRequest{
		CustomerName:  "Acme Pvt Ltd",
		AdvanceDate:   "2024-03-15",
		AdvanceAmount: decimal.RequireFromString("1000"),
	}
	created := &dto.AdvanceResponse{
		AdvanceID:       uuid.NewString(),
		CustomerName:    req.CustomerName,
		AdvanceDate:     req.AdvanceDate,
		AdvanceAmount:   req.AdvanceAmount,
		RemainingAmount: req.AdvanceAmount,
	}
	suite.mockService.On("CreateAdvance", mock.Anything, domain.Debtor, mock.MatchedBy(func(r dto.CreateAdvanceRequest) bool {
		return r.CustomerName == req.CustomerName && r.AdvanceAmount.Equal(req.AdvanceAmount)
	})).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/debtors", req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AdvanceHandlerTestSuite) TestCreateDebtor_BadDateRejectedAtBinding() {
	req := dto.CreateAdvanceRequest{
		CustomerName:  "Acme Pvt Ltd",
		AdvanceDate:   "not-a-date",
		AdvanceAmount: decimal.RequireFromString("1000"),
	}

	w := suite.doRequest(http.MethodPost, "/api/v1/debtors", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateAdvance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AdvanceHandlerTestSuite) TestSettleAdvance_IntegrityViolation() {
	advanceID := uuid.NewString()
	req := dto.SettleRequest{
		InvoiceNumber: "INV-1",
		SettledAmount: decimal.RequireFromString("5000"),
	}
	suite.mockService.On("SettleAdvance", mock.Anything, domain.Debtor, advanceID, mock.Anything).
		Return(apperrors.ErrIntegrity).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/debtors/"+advanceID+"/settlements", req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AdvanceHandlerTestSuite) TestSettleAdvance_Success() {
	advanceID := uuid.NewString()
	req := dto.SettleRequest{
		InvoiceNumber: "INV-1",
		SettledAmount: decimal.RequireFromString("250"),
	}
	suite.mockService.On("SettleAdvance", mock.Anything, domain.Creditor, advanceID, mock.MatchedBy(func(r dto.SettleRequest) bool {
		return r.InvoiceNumber == "INV-1" && r.SettledAmount.Equal(req.SettledAmount)
	})).Return(nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/creditors/"+advanceID+"/settlements", req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AdvanceHandlerTestSuite) TestUnsettleAdvance_NotFound() {
	advanceID := uuid.NewString()
	settlementID := uuid.NewString()
	suite.mockService.On("UnsettleAdvance", mock.Anything, domain.Debtor, advanceID, settlementID).
		Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/debtors/"+advanceID+"/settlements/"+settlementID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AdvanceHandlerTestSuite) TestDeleteAdvance_Success() {
	advanceID := uuid.NewString()
	suite.mockService.On("DeleteAdvance", mock.Anything, domain.Debtor, advanceID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/debtors/"+advanceID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestAdvanceHandler(t *testing.T) {
	suite.Run(t, new(AdvanceHandlerTestSuite))
}
