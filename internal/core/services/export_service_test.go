package services_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/core/services"
	"github.com/SscSPs/erp_accounting_core/internal/export/nra"
	"github.com/SscSPs/erp_accounting_core/internal/export/saft"
)

type ExportServiceTestSuite struct {
	suite.Suite
	mockOrgRepo         *MockOrganizationRepository
	mockAccountRepo     *MockAccountRepository
	mockJournalRepo     *MockJournalRepository
	mockContraagentRepo *MockContraagentRepository
	mockSourceRepo      *MockSourceRepository
	mockVatRepo         *MockVatRepository
	mockMasterDataRepo  *MockMasterDataRepository
	service             portssvc.ExportSvc
	org                 *domain.Organization
	period              domain.Period
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockContraagentRepo = new(MockContraagentRepository)
	suite.mockSourceRepo = new(MockSourceRepository)
	suite.mockVatRepo = new(MockVatRepository)
	suite.mockMasterDataRepo = new(MockMasterDataRepository)
	suite.org = &domain.Organization{
		OrganizationID:          "org-1",
		Name:                    "Тест ЕООД",
		VatNumber:               "BG123456789",
		RegistrationNumber:      "123456789",
		LegalRepresentativeName: "Иван Иванов",
		IsActive:                true,
	}
	suite.period = domain.Period{Year: 2024, Month: 3}

	repos := portsrepo.RepositoryProvider{
		TxManager:        &MockTxManager{},
		OrganizationRepo: suite.mockOrgRepo,
		AccountRepo:      suite.mockAccountRepo,
		JournalRepo:      suite.mockJournalRepo,
		ContraagentRepo:  suite.mockContraagentRepo,
		SourceRepo:       suite.mockSourceRepo,
		VatRepo:          suite.mockVatRepo,
		MasterDataRepo:   suite.mockMasterDataRepo,
	}
	suite.service = services.NewExportService(repos, saft.Software{CompanyName: "Acme", ID: "erp", Version: "1.0"},
		services.WithClock(func() time.Time { return time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC) }))
}

func (suite *ExportServiceTestSuite) salesRows() []domain.VatSalesRegister {
	return []domain.VatSalesRegister{{VatRegisterRow: domain.VatRegisterRow{
		DocumentID:     "d-1",
		DocumentType:   "01",
		DocumentNumber: "INV-001",
		DocumentDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		TaxEventDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		PeriodYear:     2024,
		PeriodMonth:    3,
		Counterparty:   domain.Counterparty{Name: "Клиент", VatNumber: "BG111"},
		TaxableBase:    dec("1234.56"),
		VatRate:        dec("20"),
		VatAmount:      dec("246.91"),
		TotalAmount:    dec("1481.47"),
	}}}
}

func (suite *ExportServiceTestSuite) TestWriteSalesRegister() {
	ctx := context.Background()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, "org-1").Return(suite.org, nil).Once()
	suite.mockVatRepo.On("ListSalesRows", ctx, "org-1", suite.period).Return(suite.salesRows(), nil).Once()

	var buf bytes.Buffer
	err := suite.service.WriteSalesRegister(ctx, "org-1", suite.period, &buf)

	suite.Require().NoError(err)
	line := strings.TrimSuffix(buf.String(), "\r\n")
	suite.Len(line, nra.RegisterLineLength)
	suite.True(strings.HasSuffix(line, "        1234.56         246.91"))
	suite.mockVatRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestWritePurchaseRegister_UnknownOrganization() {
	ctx := context.Background()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, "org-x").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.WritePurchaseRegister(ctx, "org-x", suite.period, &bytes.Buffer{})

	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.mockVatRepo.AssertNotCalled(suite.T(), "ListPurchaseRows", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExportServiceTestSuite) TestWriteDeclaration() {
	ctx := context.Background()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, "org-1").Return(suite.org, nil).Once()
	suite.mockVatRepo.On("ListSalesRows", ctx, "org-1", suite.period).Return(suite.salesRows(), nil).Once()
	suite.mockVatRepo.On("ListPurchaseRows", ctx, "org-1", suite.period).Return([]domain.VatPurchaseRegister{}, nil).Once()

	var buf bytes.Buffer
	err := suite.service.WriteDeclaration(ctx, "org-1", suite.period, &buf)

	suite.Require().NoError(err)
	suite.Len(strings.TrimSuffix(buf.String(), "\r\n"), nra.DeclarationLineLength)
	suite.Contains(buf.String(), "202403")
}

func (suite *ExportServiceTestSuite) TestWriteDeclaration_InvalidPeriod() {
	err := suite.service.WriteDeclaration(context.Background(), "org-1", domain.Period{Year: 2024, Month: 13}, &bytes.Buffer{})

	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "FindOrganizationByID", mock.Anything, mock.Anything)
}

func (suite *ExportServiceTestSuite) TestWriteSAFT_Monthly() {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	customer := "c-1"
	supplier := "s-1"

	balances := []domain.AccountPeriodBalance{
		{Account: domain.Account{AccountID: "acc-411", Code: "411", Name: "Клиенти", AccountType: domain.Asset}, PeriodDebit: dec("120")},
		{Account: domain.Account{AccountID: "acc-401", Code: "401", Name: "Доставчици", AccountType: domain.Liability}, PeriodCredit: dec("60")},
		{Account: domain.Account{AccountID: "acc-702", Code: "702", Name: "Приходи", AccountType: domain.Income, StandardCode: "7020"}, PeriodCredit: dec("120")},
		{Account: domain.Account{AccountID: "acc-602", Code: "602", Name: "Разходи", AccountType: domain.Expense}, PeriodDebit: dec("60")},
	}
	contraagents := []domain.Contraagent{
		{ContraagentID: customer, Name: "Клиент", IsCustomer: true, RegistrationNumber: "111111111"},
		{ContraagentID: supplier, Name: "Доставчик", IsCustomer: true, IsSupplier: true, RegistrationNumber: "222222222"},
	}
	entries := []domain.JournalEntry{
		{EntryID: "e-1", EntryDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Status: domain.Posted},
		{EntryID: "e-2", EntryDate: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), Status: domain.Posted},
	}
	lines := map[string][]domain.EntryLine{
		"e-1": {
			{LineID: "l-1", AccountID: "acc-411", Debit: dec("120"), Credit: decimal.Zero, ContraagentID: &customer},
			{LineID: "l-2", AccountID: "acc-702", Debit: decimal.Zero, Credit: dec("120")},
		},
		"e-2": {
			{LineID: "l-3", AccountID: "acc-602", Debit: dec("60"), Credit: decimal.Zero},
			{LineID: "l-4", AccountID: "acc-401", Debit: decimal.Zero, Credit: dec("60"), ContraagentID: &supplier},
		},
	}

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, "org-1").Return(suite.org, nil).Once()
	suite.mockAccountRepo.On("ListAccountBalances", ctx, "org-1", from, to).Return(balances, nil).Once()
	suite.mockContraagentRepo.On("ListContraagents", ctx, "org-1", domain.ContraagentFilter{}).Return(contraagents, nil).Once()
	suite.mockMasterDataRepo.On("ListProducts", ctx, "org-1").Return([]domain.Product{}, nil).Once()
	suite.mockJournalRepo.On("ListEntriesInPeriod", ctx, "org-1", from, to).Return(entries, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryIDs", ctx, []string{"e-1", "e-2"}).Return(lines, nil).Once()
	suite.mockVatRepo.On("ListSalesRows", ctx, "org-1", suite.period).Return(suite.salesRows(), nil).Once()
	suite.mockVatRepo.On("ListPurchaseRows", ctx, "org-1", suite.period).Return([]domain.VatPurchaseRegister{}, nil).Once()
	suite.mockSourceRepo.On("ListPaymentsInPeriod", ctx, "org-1", from, to).Return([]domain.Payment{}, nil).Once()

	var buf bytes.Buffer
	err := suite.service.WriteSAFT(ctx, "org-1", domain.SaftRequest{Variant: domain.SaftMonthly, Year: 2024, Month: 3}, &buf)
	suite.Require().NoError(err)

	doc := etree.NewDocument()
	suite.Require().NoError(doc.ReadFromBytes(buf.Bytes()))
	suite.Equal("2024-04-02", doc.FindElement("//AuditFileDateCreated").Text())
	suite.Equal("2", doc.FindElement("//GeneralLedgerEntries/NumberOfEntries").Text())

	txLines := doc.FindElements("//Transaction/TransactionLine")
	suite.Require().Len(txLines, 4)
	suite.Equal("411", txLines[0].FindElement("AccountID").Text())
	suite.Equal("111111111", txLines[0].FindElement("CustomerID").Text())
	suite.Equal("7020", txLines[1].FindElement("TaxpayerAccountID").Text())
	suite.Equal("222222222", txLines[3].FindElement("SupplierID").Text())
	suite.Nil(txLines[3].FindElement("CustomerID"))

	suite.Len(doc.FindElements("//SalesInvoices/Invoice"), 1)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockSourceRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestWriteSAFT_Annual() {
	ctx := context.Background()
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, "org-1").Return(suite.org, nil).Once()
	suite.mockSourceRepo.On("ListAssets", ctx, "org-1").Return([]domain.FixedAsset{{AssetID: "a-1", Code: "DMA-1", Name: "Лаптоп", AcquisitionCost: dec("2400")}}, nil).Once()
	suite.mockSourceRepo.On("ListAssetTransactionsInPeriod", ctx, "org-1", from, to).Return([]domain.AssetTransaction{}, nil).Once()

	var buf bytes.Buffer
	err := suite.service.WriteSAFT(ctx, "org-1", domain.SaftRequest{Variant: domain.SaftAnnual, Year: 2023}, &buf)

	suite.Require().NoError(err)
	suite.Contains(buf.String(), "<nsSAFT:HeaderComment>A</nsSAFT:HeaderComment>")
	suite.Contains(buf.String(), "<nsSAFT:AssetID>DMA-1</nsSAFT:AssetID>")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ListEntriesInPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExportServiceTestSuite) TestWriteSAFT_OnDemandRange() {
	ctx := context.Background()
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, "org-1").Return(suite.org, nil).Once()
	suite.mockMasterDataRepo.On("ListProducts", ctx, "org-1").Return([]domain.Product{}, nil).Once()
	suite.mockMasterDataRepo.On("ListStockLevels", ctx, "org-1", to).Return([]domain.StockLevel{}, nil).Once()
	suite.mockMasterDataRepo.On("ListStockMovements", ctx, "org-1", from, to).Return([]domain.StockMovement{}, nil).Once()

	var buf bytes.Buffer
	err := suite.service.WriteSAFT(ctx, "org-1", domain.SaftRequest{Variant: domain.SaftOnDemand, From: &from, To: &to}, &buf)

	suite.Require().NoError(err)
	suite.Contains(buf.String(), "<nsSAFT:SelectionStartDate>2024-02-01</nsSAFT:SelectionStartDate>")
	suite.mockMasterDataRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestWriteSAFT_Validation() {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  domain.SaftRequest
	}{
		{"unknown variant", domain.SaftRequest{Variant: "weekly", Year: 2024}},
		{"monthly without month", domain.SaftRequest{Variant: domain.SaftMonthly, Year: 2024}},
		{"on demand without bounds", domain.SaftRequest{Variant: domain.SaftOnDemand}},
		{"reversed range", domain.SaftRequest{Variant: domain.SaftOnDemand, From: &from, To: &to}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := suite.service.WriteSAFT(ctx, "org-1", tt.req, &bytes.Buffer{})
			suite.True(errors.Is(err, apperrors.ErrValidation), err)
		})
	}
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "FindOrganizationByID", mock.Anything, mock.Anything)
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
