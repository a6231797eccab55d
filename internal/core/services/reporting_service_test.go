package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockOrgRepo     *MockOrganizationRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.ReportingService
	orgID           string
	from, to        time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewReportingService(suite.mockOrgRepo, suite.mockAccountRepo)
	suite.orgID = "org-1"
	suite.from = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockOrgRepo.On("FindOrganizationByID", mock.Anything, suite.orgID).
		Return(&domain.Organization{OrganizationID: suite.orgID, IsActive: true}, nil).Maybe()
}

func balance(id, code string, t domain.AccountType, opening, openDr, openCr, periodDr, periodCr string) domain.AccountPeriodBalance {
	return domain.AccountPeriodBalance{
		Account:       domain.Account{AccountID: id, Code: code, Name: code, AccountType: t, OpeningBalance: dec(opening)},
		OpeningDebit:  dec(openDr),
		OpeningCredit: dec(openCr),
		PeriodDebit:   dec(periodDr),
		PeriodCredit:  dec(periodCr),
	}
}

func (suite *ReportingServiceTestSuite) balances() []domain.AccountPeriodBalance {
	return []domain.AccountPeriodBalance{
		balance("a-501", "501", domain.Asset, "100", "50", "0", "240", "40"),
		balance("a-401", "401", domain.Liability, "0", "0", "30", "40", "0"),
		balance("a-101", "101", domain.Equity, "-120", "0", "0", "0", "0"),
		balance("a-702", "702", domain.Income, "0", "0", "0", "0", "200"),
		balance("a-602", "602", domain.Expense, "0", "0", "0", "0", "0"),
		balance("a-4532", "4532", domain.Liability, "0", "0", "0", "0", "40"),
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_SplitsNetsAndSkipsIdleAccounts() {
	ctx := context.Background()
	suite.mockAccountRepo.On("ListAccountBalances", mock.Anything, suite.orgID, suite.from, suite.to).Return(suite.balances(), nil).Once()

	rows, err := suite.service.TrialBalance(ctx, suite.orgID, suite.from, suite.to)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 5)

	cash := rows[0]
	suite.Equal("501", cash.Code)
	suite.True(cash.OpeningDebit.Equal(dec("150")))
	suite.True(cash.OpeningCredit.IsZero())
	suite.True(cash.ClosingDebit.Equal(dec("350")))

	supplier := rows[1]
	suite.True(supplier.OpeningCredit.Equal(dec("30")))
	suite.True(supplier.ClosingDebit.Equal(dec("10")))

	equity := rows[2]
	suite.True(equity.OpeningCredit.Equal(dec("120")))
	suite.True(equity.ClosingCredit.Equal(dec("120")))

	var closingDr, closingCr decimal.Decimal
	for _, r := range rows {
		closingDr = closingDr.Add(r.ClosingDebit)
		closingCr = closingCr.Add(r.ClosingCredit)
	}
	suite.True(closingDr.Equal(closingCr), "closing sides must balance: %s vs %s", closingDr, closingCr)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss() {
	ctx := context.Background()
	suite.mockAccountRepo.On("ListAccountBalances", mock.Anything, suite.orgID, suite.from, suite.to).Return(suite.balances(), nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, suite.orgID, suite.from, suite.to)
	suite.Require().NoError(err)
	suite.Len(report.Revenue, 1)
	suite.Empty(report.Expenses)
	suite.True(report.NetProfit.Equal(dec("200")))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	ctx := context.Background()
	suite.mockAccountRepo.On("ListAccountBalances", mock.Anything, suite.orgID, suite.to, suite.to).Return(suite.balances(), nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.orgID, suite.to)
	suite.Require().NoError(err)
	suite.True(report.TotalAssets.Equal(dec("350")))
	suite.True(report.TotalLiabilities.Equal(dec("30")))
	suite.True(report.TotalEquity.Equal(dec("120")))
	suite.Len(report.Liabilities, 2)
}

func (suite *ReportingServiceTestSuite) TestInvalidRange() {
	_, err := suite.service.TrialBalance(context.Background(), suite.orgID, suite.to, suite.from)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccountBalances", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestRepositoryFailure() {
	suite.mockAccountRepo.On("ListAccountBalances", mock.Anything, suite.orgID, suite.from, suite.to).Return(nil, errors.New("db down")).Once()

	_, err := suite.service.ProfitAndLoss(context.Background(), suite.orgID, suite.from, suite.to)
	suite.Error(err)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
