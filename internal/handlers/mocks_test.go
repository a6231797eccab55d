package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvc = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccount(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) postedEntry(args mock.Arguments) (*domain.PostedEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedEntry), args.Error(1)
}

func (m *MockJournalService) GetEntry(ctx context.Context, organizationID, entryID string) (*domain.PostedEntry, error) {
	return m.postedEntry(m.Called(ctx, organizationID, entryID))
}

func (m *MockJournalService) ListEntries(ctx context.Context, organizationID string, filter domain.JournalEntryFilter) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, organizationID, filter)
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), token, args.Error(2)
}

func (m *MockJournalService) Post(ctx context.Context, organizationID, actorID string, input domain.PostEntryInput) (*domain.PostedEntry, error) {
	return m.postedEntry(m.Called(ctx, organizationID, actorID, input))
}

func (m *MockJournalService) Reverse(ctx context.Context, organizationID, actorID, entryID string) (*domain.PostedEntry, error) {
	return m.postedEntry(m.Called(ctx, organizationID, actorID, entryID))
}

func (m *MockJournalService) Update(ctx context.Context, organizationID, actorID, entryID string) error {
	return m.Called(ctx, organizationID, actorID, entryID).Error(0)
}

func (m *MockJournalService) Delete(ctx context.Context, organizationID, actorID, entryID string) error {
	return m.Called(ctx, organizationID, actorID, entryID).Error(0)
}

func (m *MockJournalService) PostRecipe(ctx context.Context, organizationID, actorID string, recipe portssvc.PostingRecipe) (*domain.PostedEntry, error) {
	return m.postedEntry(m.Called(ctx, organizationID, actorID, recipe))
}

func (m *MockJournalService) PostForPayment(ctx context.Context, organizationID, actorID, paymentID string) (*domain.PostedEntry, error) {
	return m.postedEntry(m.Called(ctx, organizationID, actorID, paymentID))
}

func (m *MockJournalService) PostForBankTransaction(ctx context.Context, organizationID, actorID, bankTransactionID string) (*domain.PostedEntry, error) {
	return m.postedEntry(m.Called(ctx, organizationID, actorID, bankTransactionID))
}

func (m *MockJournalService) PostForAssetTransaction(ctx context.Context, organizationID, actorID, assetTransactionID string) (*domain.PostedEntry, error) {
	return m.postedEntry(m.Called(ctx, organizationID, actorID, assetTransactionID))
}

// --- Mock NumberingService ---
type MockNumberingService struct {
	mock.Mock
}

var _ portssvc.NumberingSvc = (*MockNumberingService)(nil)

func (m *MockNumberingService) GetNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (string, error) {
	args := m.Called(ctx, organizationID, docType)
	return args.String(0), args.Error(1)
}

func (m *MockNumberingService) PeekNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (string, error) {
	args := m.Called(ctx, organizationID, docType)
	return args.String(0), args.Error(1)
}

func (m *MockNumberingService) ResetSequence(ctx context.Context, organizationID string, docType domain.DocumentType, newNumber int64) error {
	return m.Called(ctx, organizationID, docType, newNumber).Error(0)
}

func (m *MockNumberingService) ValidateDocumentNumber(docType domain.DocumentType, number string) bool {
	return m.Called(docType, number).Bool(0)
}

func (m *MockNumberingService) ExtractSequenceNumber(docType domain.DocumentType, number string) (int64, error) {
	args := m.Called(docType, number)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNumberingService) GenerateDocumentUID(docType, organizationID, number string) string {
	return m.Called(docType, organizationID, number).String(0)
}

func (m *MockNumberingService) ParseDocumentUID(uid string) (*domain.DocumentUIDParts, error) {
	args := m.Called(uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentUIDParts), args.Error(1)
}

// --- Mock VatService ---
type MockVatService struct {
	mock.Mock
}

var _ portssvc.VatSvcFacade = (*MockVatService)(nil)

func (m *MockVatService) RecordSale(ctx context.Context, organizationID, actorID string, doc domain.SalesDocument) (*domain.VatSalesRegister, error) {
	args := m.Called(ctx, organizationID, actorID, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatSalesRegister), args.Error(1)
}

func (m *MockVatService) RecordPurchase(ctx context.Context, organizationID, actorID string, doc domain.PurchaseDocument) (*domain.VatPurchaseRegister, error) {
	args := m.Called(ctx, organizationID, actorID, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatPurchaseRegister), args.Error(1)
}

func (m *MockVatService) ListSalesRegister(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatSalesRegister, error) {
	args := m.Called(ctx, organizationID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatSalesRegister), args.Error(1)
}

func (m *MockVatService) ListPurchaseRegister(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatPurchaseRegister, error) {
	args := m.Called(ctx, organizationID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatPurchaseRegister), args.Error(1)
}

func (m *MockVatService) vatReturn(args mock.Arguments) (*domain.VatReturn, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatReturn), args.Error(1)
}

func (m *MockVatService) ComputeVatReturn(ctx context.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error) {
	return m.vatReturn(m.Called(ctx, organizationID, actorID, period))
}

func (m *MockVatService) SubmitVatReturn(ctx context.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error) {
	return m.vatReturn(m.Called(ctx, organizationID, actorID, period))
}

func (m *MockVatService) AcceptVatReturn(ctx context.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error) {
	return m.vatReturn(m.Called(ctx, organizationID, actorID, period))
}

func (m *MockVatService) GetVatReturn(ctx context.Context, organizationID string, period domain.Period) (*domain.VatReturn, error) {
	return m.vatReturn(m.Called(ctx, organizationID, period))
}

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

var _ portssvc.ExportSvc = (*MockExportService)(nil)

func (m *MockExportService) WriteSalesRegister(ctx context.Context, organizationID string, period domain.Period, w io.Writer) error {
	return m.Called(ctx, organizationID, period, w).Error(0)
}

func (m *MockExportService) WritePurchaseRegister(ctx context.Context, organizationID string, period domain.Period, w io.Writer) error {
	return m.Called(ctx, organizationID, period, w).Error(0)
}

func (m *MockExportService) WriteDeclaration(ctx context.Context, organizationID string, period domain.Period, w io.Writer) error {
	return m.Called(ctx, organizationID, period, w).Error(0)
}

func (m *MockExportService) WriteSAFT(ctx context.Context, organizationID string, req domain.SaftRequest, w io.Writer) error {
	return m.Called(ctx, organizationID, req, w).Error(0)
}
