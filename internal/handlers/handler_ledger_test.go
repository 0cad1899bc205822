package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/core/projections"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/handlers"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
	"github.com/shopspring/decimal"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	mockSvc *MockBookkeepingService
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockSvc = new(MockBookkeepingService)
	handlers.RegisterRoutes(suite.router, &config.Config{}, suite.mockSvc)
}

func (suite *LedgerHandlerTestSuite) postJSON(url string, payload any) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerHandlerTestSuite) TestCreateLedger_Success() {
	suite.mockSvc.On("CreateLedger", mock.Anything, domain.LedgerID("main")).Return(nil).Once()

	w := suite.postJSON("/api/v1/ledgers", dto.CreateLedgerRequest{LedgerID: "main"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateLedger_DuplicateConflict() {
	suite.mockSvc.On("CreateLedger", mock.Anything, domain.LedgerID("main")).
		Return(apperrors.ErrLedgerExists).Once()

	w := suite.postJSON("/api/v1/ledgers", dto.CreateLedgerRequest{LedgerID: "main"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

// Malformed ids never reach the service: the ledgerid binding rule rejects
// them during JSON binding.
func (suite *LedgerHandlerTestSuite) TestCreateLedger_InvalidIDRejectedByBinding() {
	for _, bad := range []string{"", "-starts-with-dash", "has space", "ütf8"} {
		w := suite.postJSON("/api/v1/ledgers", dto.CreateLedgerRequest{LedgerID: bad})
		suite.Equal(http.StatusBadRequest, w.Code, "ledger id %q", bad)
	}
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateLedger")
}

func (suite *LedgerHandlerTestSuite) TestListLedgers() {
	suite.mockSvc.On("Ledgers", mock.Anything).
		Return([]domain.LedgerID{"main", "side"}).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledgers", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListLedgersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal([]string{"main", "side"}, responseBody.Ledgers)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestRecordTransaction_Success() {
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	expectedLegs := []domain.Leg{
		{AccountID: 101, Amount: domain.Balance{Type: domain.Credit, Amount: 50}},
		{AccountID: 501, Amount: domain.Balance{Type: domain.Debit, Amount: 50}},
	}
	suite.mockSvc.On("RecordTransaction", mock.Anything, domain.LedgerID("main"), "Groceries", expectedLegs, date).
		Return(domain.TransactionID(7), nil).Once()

	w := suite.postJSON("/api/v1/ledgers/main/transactions", dto.RecordTransactionRequest{
		Description: "Groceries",
		Date:        date,
		Legs: []dto.TransactionLeg{
			{AccountID: 101, Type: "CREDIT", Amount: 50},
			{AccountID: 501, Type: "DEBIT", Amount: 50},
		},
	})

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.RecordTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(uint32(7), responseBody.TransactionID)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestRecordTransaction_UnbalancedRejected() {
	suite.mockSvc.On("RecordTransaction", mock.Anything, domain.LedgerID("main"), mock.Anything, mock.Anything, mock.Anything).
		Return(domain.TransactionID(0), apperrors.ErrUnbalancedTransaction).Once()

	w := suite.postJSON("/api/v1/ledgers/main/transactions", dto.RecordTransactionRequest{
		Description: "Off by ten",
		Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Legs: []dto.TransactionLeg{
			{AccountID: 101, Type: "CREDIT", Amount: 50},
			{AccountID: 501, Type: "DEBIT", Amount: 60},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestRecordTransaction_UnknownEntryTypeRejectedByBinding() {
	w := suite.postJSON("/api/v1/ledgers/main/transactions", dto.RecordTransactionRequest{
		Description: "Bad leg type",
		Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		Legs: []dto.TransactionLeg{
			{AccountID: 101, Type: "WIRE", Amount: 50},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "RecordTransaction")
}

func (suite *LedgerHandlerTestSuite) TestTrialBalance_Success() {
	suite.mockSvc.On("TrialBalance", mock.Anything, domain.LedgerID("main")).
		Return([]projections.TrialBalanceRow{
			{AccountID: 101, Name: "Bank", Category: domain.Asset, IsOpen: true, Balance: decimal.NewFromInt(-50)},
			{AccountID: 501, Name: "Groceries", Category: domain.Expenses, IsOpen: true, Balance: decimal.NewFromInt(50)},
		}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledgers/main/trial-balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.TrialBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal("main", responseBody.LedgerID)
	suite.Require().Len(responseBody.Rows, 2)
	suite.Equal("-50", responseBody.Rows[0].Balance)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestTrialBalance_UnknownLedgerNotFound() {
	suite.mockSvc.On("TrialBalance", mock.Anything, domain.LedgerID("ghost")).
		Return(nil, apperrors.ErrLedgerNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledgers/ghost/trial-balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
