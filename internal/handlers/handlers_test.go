package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/dto"
	"github.com/SscSPs/erp_accounting_core/internal/handlers"
	"github.com/SscSPs/erp_accounting_core/internal/middleware"
	"github.com/SscSPs/erp_accounting_core/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockAccountService   *MockAccountService
	mockJournalService   *MockJournalService
	mockNumberingService *MockNumberingService
	mockVatService       *MockVatService
	mockExportService    *MockExportService
	orgID                string
	actorID              string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.orgID = uuid.NewString()
	suite.actorID = uuid.NewString()

	suite.mockAccountService = new(MockAccountService)
	suite.mockJournalService = new(MockJournalService)
	suite.mockNumberingService = new(MockNumberingService)
	suite.mockVatService = new(MockVatService)
	suite.mockExportService = new(MockExportService)

	cfg := &config.Config{
		IsProduction:       true,
		RateLimit:          limiter.Rate{Period: time.Minute, Limit: 1000},
		CORSAllowedOrigins: []string{"*"},
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Account:   suite.mockAccountService,
		Journal:   suite.mockJournalService,
		Numbering: suite.mockNumberingService,
		Vat:       suite.mockVatService,
		Export:    suite.mockExportService,
	})
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set(middleware.OrganizationHeader, suite.orgID)
	req.Header.Set(middleware.ActorHeader, suite.actorID)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func postedEntry(id string) *domain.PostedEntry {
	return &domain.PostedEntry{Entry: domain.JournalEntry{EntryID: id, Status: domain.Posted}}
}

func entryBody(debit, credit string) gin.H {
	return gin.H{
		"entryDate":   "2024-03-15",
		"description": "Office supplies",
		"lines": []gin.H{
			{"accountID": "acc-602", "debit": debit, "credit": "0"},
			{"accountID": "acc-501", "debit": "0", "credit": credit},
		},
	}
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestTenantHeadersRequired() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusBadRequest, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	req.Header.Set(middleware.OrganizationHeader, "not-a-uuid")
	req.Header.Set(middleware.ActorHeader, suite.actorID)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListAccounts_Success() {
	suite.mockAccountService.On("ListAccounts", mock.Anything, suite.orgID).Return([]domain.Account{
		{AccountID: "a1", Code: "501", Name: "Каса", AccountType: domain.Asset},
		{AccountID: "a2", Code: "702", Name: "Приходи от продажби", AccountType: domain.Income},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("1000", w.Header().Get("X-RateLimit-Limit"))
	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Accounts, 2)
	suite.Equal("501", resp.Accounts[0].Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccount", mock.Anything, suite.orgID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestPostEntry_Success() {
	suite.mockJournalService.On("Post", mock.Anything, suite.orgID, suite.actorID,
		mock.MatchedBy(func(in domain.PostEntryInput) bool {
			return in.EntryDate.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) &&
				len(in.Lines) == 2 &&
				in.Lines[0].Debit.Equal(decimal.RequireFromString("100.50")) &&
				in.Lines[1].Credit.Equal(decimal.RequireFromString("100.50"))
		}),
	).Return(postedEntry("e-1"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", entryBody("100.50", "100.50"))

	suite.Equal(http.StatusCreated, w.Code)
	var resp domain.PostedEntry
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("e-1", resp.Entry.EntryID)
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPostEntry_NegativeAmountRejected() {
	w := suite.do(http.MethodPost, "/api/v1/journal-entries", entryBody("-5", "-5"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostEntry_SingleLineRejected() {
	body := entryBody("10", "10")
	body["lines"] = body["lines"].([]gin.H)[:1]

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPostEntry_Unbalanced() {
	suite.mockJournalService.On("Post", mock.Anything, suite.orgID, suite.actorID, mock.Anything).
		Return(nil, &apperrors.UnbalancedEntryError{TotalDebit: decimal.NewFromInt(100), TotalCredit: decimal.NewFromInt(90)}).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", entryBody("100", "90"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "imbalance 10.00")
}

func (suite *HandlerTestSuite) TestPostEntry_InternalErrorHidden() {
	suite.mockJournalService.On("Post", mock.Anything, suite.orgID, suite.actorID, mock.Anything).
		Return(nil, apperrors.NewAppError(500, "failed to insert entry", io.ErrUnexpectedEOF)).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", entryBody("1", "1"))

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "unexpected EOF")
}

func (suite *HandlerTestSuite) TestUpdateAndDeleteEntry_AlreadyPosted() {
	suite.mockJournalService.On("Update", mock.Anything, suite.orgID, suite.actorID, "e-1").
		Return(&apperrors.AlreadyPostedError{EntryID: "e-1"}).Once()
	suite.mockJournalService.On("Delete", mock.Anything, suite.orgID, suite.actorID, "e-1").
		Return(&apperrors.AlreadyPostedError{EntryID: "e-1"}).Once()

	suite.Equal(http.StatusConflict, suite.do(http.MethodPut, "/api/v1/journal-entries/e-1", nil).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodDelete, "/api/v1/journal-entries/e-1", nil).Code)
}

func (suite *HandlerTestSuite) TestReverseEntry() {
	suite.mockJournalService.On("Reverse", mock.Anything, suite.orgID, suite.actorID, "e-1").Return(postedEntry("e-2"), nil).Once()
	suite.mockJournalService.On("Reverse", mock.Anything, suite.orgID, suite.actorID, "e-3").Return(nil, apperrors.ErrConflict).Once()

	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/v1/journal-entries/e-1/reverse", nil).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/api/v1/journal-entries/e-3/reverse", nil).Code)
}

func (suite *HandlerTestSuite) TestListEntries_PassesFilter() {
	token := "next-page"
	suite.mockJournalService.On("ListEntries", mock.Anything, suite.orgID,
		mock.MatchedBy(func(f domain.JournalEntryFilter) bool {
			return f.Limit == 10 && f.From != nil && f.From.Format(time.DateOnly) == "2024-01-01" && f.AccountID == "acc-501"
		}),
	).Return([]domain.JournalEntry{{EntryID: "e-1"}}, &token, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal-entries?limit=10&from=2024-01-01&accountID=acc-501", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(token, *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListEntries_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/journal-entries?from=15.03.2024", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPostPayment_MissingDefaultAccount() {
	suite.mockJournalService.On("PostForPayment", mock.Anything, suite.orgID, suite.actorID, "pay-1").
		Return(nil, &apperrors.ConfigurationError{OrganizationID: suite.orgID, Slot: string(domain.SlotCash)}).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments/post", gin.H{"id": "pay-1"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestNextNumber() {
	suite.mockNumberingService.On("GetNextNumber", mock.Anything, suite.orgID, domain.DocSalesInvoice).Return("ИН0000000001", nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/document-numbers/sales_invoice/next", nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DocumentNumberResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ИН0000000001", resp.Number)
}

func (suite *HandlerTestSuite) TestNextNumber_InvalidDocType() {
	w := suite.do(http.MethodPost, "/api/v1/document-numbers/Sales-Invoice/next", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockNumberingService.AssertNotCalled(suite.T(), "GetNextNumber", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestResetSequence() {
	suite.mockNumberingService.On("ResetSequence", mock.Anything, suite.orgID, domain.DocCreditNote, int64(500)).Return(nil).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodPut, "/api/v1/document-numbers/credit_note", gin.H{"nextNumber": 500}).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, "/api/v1/document-numbers/credit_note", gin.H{"nextNumber": 0}).Code)
	suite.mockNumberingService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestComputeVatReturn_PeriodNotReady() {
	period := domain.Period{Year: 2024, Month: 3}
	suite.mockVatService.On("ComputeVatReturn", mock.Anything, suite.orgID, suite.actorID, period).
		Return(nil, &apperrors.PeriodNotReadyError{Year: 2024, Month: 3, Pending: []apperrors.NotPostedError{{DocumentKind: "sale", DocumentID: "d-1", Number: "0000000007"}}}).Once()

	w := suite.do(http.MethodPost, "/api/v1/vat/returns/2024/3/compute", nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "0000000007")
}

func (suite *HandlerTestSuite) TestGetVatReturn_InvalidMonth() {
	w := suite.do(http.MethodGet, "/api/v1/vat/returns/2024/13", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRecordSale() {
	suite.mockVatService.On("RecordSale", mock.Anything, suite.orgID, suite.actorID,
		mock.MatchedBy(func(doc domain.SalesDocument) bool {
			return doc.Number == "0000000001" && doc.Status == domain.DocumentFinalized && doc.TaxEventDate == nil
		}),
	).Return(&domain.VatSalesRegister{VatRegisterRow: domain.VatRegisterRow{VatClassification: domain.VatClassification{VatOperationCode: domain.VatOpStandard}}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/vat/sales", gin.H{
		"documentID":   "doc-1",
		"number":       "0000000001",
		"documentDate": "2024-03-10",
		"counterparty": gin.H{"name": "Клиент ООД", "vatNumber": "BG123456789"},
		"taxableBase":  "100.00",
		"vatRate":      "20",
		"status":       "finalized",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockVatService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestExportNRASales() {
	period := domain.Period{Year: 2024, Month: 3}
	suite.mockExportService.On("WriteSalesRegister", mock.Anything, suite.orgID, period, mock.Anything).
		Run(func(args mock.Arguments) {
			_, _ = args.Get(3).(io.Writer).Write([]byte("ROW\r\n"))
		}).Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exports/nra/2024/3/sales", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.Contains(w.Header().Get("Content-Disposition"), "PRODAGBI.TXT"))
	suite.Equal("ROW\r\n", w.Body.String())
}

func (suite *HandlerTestSuite) TestExportNRA_UnknownFile() {
	w := suite.do(http.MethodGet, "/api/v1/exports/nra/2024/3/ledger", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestExportSAFT() {
	suite.mockExportService.On("WriteSAFT", mock.Anything, suite.orgID,
		mock.MatchedBy(func(r domain.SaftRequest) bool {
			return r.Variant == domain.SaftMonthly && r.Year == 2024 && r.Month == 3
		}), mock.Anything,
	).Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exports/saft/monthly?year=2024&month=3", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "saft_monthly.xml")

	w = suite.do(http.MethodGet, "/api/v1/exports/saft/weekly?year=2024", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
