package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionManager ---

// MockTxManager runs fn directly and counts how often a transaction was opened.
type MockTxManager struct {
	Calls int
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

// --- Mock OrganizationRepository ---
type MockOrganizationRepository struct {
	mock.Mock
}

var _ portsrepo.OrganizationRepositoryFacade = (*MockOrganizationRepository)(nil)

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, organizationID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountBalances(ctx context.Context, organizationID string, from, to time.Time) ([]domain.AccountPeriodBalance, error) {
	args := m.Called(ctx, organizationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountPeriodBalance), args.Error(1)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

// Ensure MockJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByReference(ctx context.Context, organizationID, reference string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, organizationID string, filter domain.JournalEntryFilter) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) ListEntriesInPeriod(ctx context.Context, organizationID string, from, to time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, organizationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryLine), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.EntryLine, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.EntryLine), args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.EntryLine, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, entry, lines, balanceChanges)
	return args.Error(0)
}

func (m *MockJournalRepository) MarkEntryReversed(ctx context.Context, entryID, reversingEntryID, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, entryID, reversingEntryID, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock ContraagentRepository ---
type MockContraagentRepository struct {
	mock.Mock
}

var _ portsrepo.ContraagentRepositoryFacade = (*MockContraagentRepository)(nil)

func (m *MockContraagentRepository) FindContraagentByID(ctx context.Context, organizationID, contraagentID string) (*domain.Contraagent, error) {
	args := m.Called(ctx, organizationID, contraagentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contraagent), args.Error(1)
}

func (m *MockContraagentRepository) ListContraagents(ctx context.Context, organizationID string, filter domain.ContraagentFilter) ([]domain.Contraagent, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contraagent), args.Error(1)
}

func (m *MockContraagentRepository) OpeningBalanceTotals(ctx context.Context, organizationID string) (*domain.OpeningBalanceTotals, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningBalanceTotals), args.Error(1)
}

func (m *MockContraagentRepository) LockContraagent(ctx context.Context, organizationID, contraagentID string) (*domain.Contraagent, error) {
	args := m.Called(ctx, organizationID, contraagentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contraagent), args.Error(1)
}

func (m *MockContraagentRepository) UpdateOpeningBalance(ctx context.Context, contraagent domain.Contraagent) error {
	args := m.Called(ctx, contraagent)
	return args.Error(0)
}

// --- Mock PostingSourceRepository ---
type MockSourceRepository struct {
	mock.Mock
}

var _ portsrepo.PostingSourceRepositoryFacade = (*MockSourceRepository)(nil)

func (m *MockSourceRepository) FindPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, organizationID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockSourceRepository) ListPaymentsInPeriod(ctx context.Context, organizationID string, from, to time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, organizationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockSourceRepository) LinkPaymentEntry(ctx context.Context, organizationID, paymentID, entryID string) error {
	args := m.Called(ctx, organizationID, paymentID, entryID)
	return args.Error(0)
}

func (m *MockSourceRepository) FindBankTransactionByID(ctx context.Context, organizationID, bankTransactionID string) (*domain.BankTransaction, error) {
	args := m.Called(ctx, organizationID, bankTransactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankTransaction), args.Error(1)
}

func (m *MockSourceRepository) LinkBankTransactionEntry(ctx context.Context, organizationID, bankTransactionID, entryID string) error {
	args := m.Called(ctx, organizationID, bankTransactionID, entryID)
	return args.Error(0)
}

func (m *MockSourceRepository) ListAssets(ctx context.Context, organizationID string) ([]domain.FixedAsset, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

func (m *MockSourceRepository) FindAssetTransactionByID(ctx context.Context, organizationID, assetTransactionID string) (*domain.AssetTransaction, error) {
	args := m.Called(ctx, organizationID, assetTransactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetTransaction), args.Error(1)
}

func (m *MockSourceRepository) ListAssetTransactionsInPeriod(ctx context.Context, organizationID string, from, to time.Time) ([]domain.AssetTransaction, error) {
	args := m.Called(ctx, organizationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetTransaction), args.Error(1)
}

func (m *MockSourceRepository) LinkAssetTransactionEntry(ctx context.Context, organizationID, assetTransactionID, entryID string) error {
	args := m.Called(ctx, organizationID, assetTransactionID, entryID)
	return args.Error(0)
}

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) LockNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (int64, error) {
	args := m.Called(ctx, organizationID, docType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSequenceRepository) PeekNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (int64, error) {
	args := m.Called(ctx, organizationID, docType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSequenceRepository) SetNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType, next int64) error {
	args := m.Called(ctx, organizationID, docType, next)
	return args.Error(0)
}

// --- Mock VatRepository ---
type MockVatRepository struct {
	mock.Mock
}

var _ portsrepo.VatRepositoryFacade = (*MockVatRepository)(nil)

func (m *MockVatRepository) SaveSalesRow(ctx context.Context, row domain.VatSalesRegister) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockVatRepository) SavePurchaseRow(ctx context.Context, row domain.VatPurchaseRegister) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockVatRepository) ListSalesRows(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatSalesRegister, error) {
	args := m.Called(ctx, organizationID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatSalesRegister), args.Error(1)
}

func (m *MockVatRepository) ListPurchaseRows(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatPurchaseRegister, error) {
	args := m.Called(ctx, organizationID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatPurchaseRegister), args.Error(1)
}

func (m *MockVatRepository) ListPendingDocuments(ctx context.Context, organizationID string, period domain.Period) ([]domain.PendingDocument, error) {
	args := m.Called(ctx, organizationID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingDocument), args.Error(1)
}

func (m *MockVatRepository) FindVatReturn(ctx context.Context, organizationID string, period domain.Period) (*domain.VatReturn, error) {
	args := m.Called(ctx, organizationID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatReturn), args.Error(1)
}

func (m *MockVatRepository) LockVatReturn(ctx context.Context, organizationID string, period domain.Period) (*domain.VatReturn, error) {
	args := m.Called(ctx, organizationID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatReturn), args.Error(1)
}

func (m *MockVatRepository) UpsertVatReturn(ctx context.Context, ret domain.VatReturn) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

func (m *MockVatRepository) UpdateVatReturnStatus(ctx context.Context, vatReturnID string, status domain.VatReturnStatus, submissionDate *time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, vatReturnID, status, submissionDate, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock MasterDataRepository ---
type MockMasterDataRepository struct {
	mock.Mock
}

var _ portsrepo.MasterDataReader = (*MockMasterDataRepository)(nil)

func (m *MockMasterDataRepository) ListProducts(ctx context.Context, organizationID string) ([]domain.Product, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockMasterDataRepository) ListStockLevels(ctx context.Context, organizationID string, at time.Time) ([]domain.StockLevel, error) {
	args := m.Called(ctx, organizationID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockLevel), args.Error(1)
}

func (m *MockMasterDataRepository) ListStockMovements(ctx context.Context, organizationID string, from, to time.Time) ([]domain.StockMovement, error) {
	args := m.Called(ctx, organizationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

// --- Mock JournalService (as used by OpeningBalanceService) ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) GetEntry(ctx context.Context, organizationID, entryID string) (*domain.PostedEntry, error) {
	args := m.Called(ctx, organizationID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, organizationID string, filter domain.JournalEntryFilter) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), nil, args.Error(2)
}

func (m *MockJournalService) Post(ctx context.Context, organizationID, actorID string, input domain.PostEntryInput) (*domain.PostedEntry, error) {
	args := m.Called(ctx, organizationID, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedEntry), args.Error(1)
}

func (m *MockJournalService) Reverse(ctx context.Context, organizationID, actorID, entryID string) (*domain.PostedEntry, error) {
	args := m.Called(ctx, organizationID, actorID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedEntry), args.Error(1)
}

func (m *MockJournalService) Update(ctx context.Context, organizationID, actorID, entryID string) error {
	args := m.Called(ctx, organizationID, actorID, entryID)
	return args.Error(0)
}

func (m *MockJournalService) Delete(ctx context.Context, organizationID, actorID, entryID string) error {
	args := m.Called(ctx, organizationID, actorID, entryID)
	return args.Error(0)
}

func (m *MockJournalService) PostRecipe(ctx context.Context, organizationID, actorID string, recipe portssvc.PostingRecipe) (*domain.PostedEntry, error) {
	args := m.Called(ctx, organizationID, actorID, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedEntry), args.Error(1)
}

func (m *MockJournalService) PostForPayment(ctx context.Context, organizationID, actorID, paymentID string) (*domain.PostedEntry, error) {
	args := m.Called(ctx, organizationID, actorID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedEntry), args.Error(1)
}

func (m *MockJournalService) PostForBankTransaction(ctx context.Context, organizationID, actorID, bankTransactionID string) (*domain.PostedEntry, error) {
	args := m.Called(ctx, organizationID, actorID, bankTransactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedEntry), args.Error(1)
}

func (m *MockJournalService) PostForAssetTransaction(ctx context.Context, organizationID, actorID, assetTransactionID string) (*domain.PostedEntry, error) {
	args := m.Called(ctx, organizationID, actorID, assetTransactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostedEntry), args.Error(1)
}

// --- Static resolver ---

// staticResolver resolves slots from a fixed map.
type staticResolver map[domain.AccountSlot]string

var _ portssvc.AccountResolverSvc = staticResolver(nil)

func (r staticResolver) Resolve(ctx context.Context, org domain.Organization, slot domain.AccountSlot) (string, error) {
	if id, ok := org.DefaultAccount(slot); ok {
		return id, nil
	}
	if id, ok := r[slot]; ok {
		return id, nil
	}
	return "", errConfiguration(org.OrganizationID, slot)
}

func (r staticResolver) ResolveAll(ctx context.Context, org domain.Organization, slots ...domain.AccountSlot) (map[domain.AccountSlot]string, error) {
	out := make(map[domain.AccountSlot]string, len(slots))
	for _, s := range slots {
		id, err := r.Resolve(ctx, org, s)
		if err != nil {
			return nil, err
		}
		out[s] = id
	}
	return out, nil
}

func errConfiguration(organizationID string, slot domain.AccountSlot) error {
	return &apperrors.ConfigurationError{OrganizationID: organizationID, Slot: string(slot)}
}
