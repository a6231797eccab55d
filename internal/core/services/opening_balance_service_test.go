package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OpeningBalanceServiceTestSuite struct {
	suite.Suite
	txManager      *MockTxManager
	mockContraRepo *MockContraagentRepository
	mockJournal    *MockJournalService
	service        portssvc.OpeningBalanceSvc
	organizationID string
	actorID        string
	now            time.Time
	customer       domain.Contraagent
}

func (suite *OpeningBalanceServiceTestSuite) SetupTest() {
	suite.txManager = &MockTxManager{}
	suite.mockContraRepo = new(MockContraagentRepository)
	suite.mockJournal = new(MockJournalService)
	suite.organizationID = "org-1"
	suite.actorID = "actor-1"
	suite.now = time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
	suite.service = services.NewOpeningBalanceService(suite.txManager, suite.mockContraRepo, suite.mockJournal,
		services.WithClock(func() time.Time { return suite.now }))
	suite.customer = domain.Contraagent{
		ContraagentID:        "c-1",
		OrganizationID:       suite.organizationID,
		Name:                 "Клиент АД",
		IsCustomer:           true,
		OpeningDebitBalance:  decimal.Zero,
		OpeningCreditBalance: decimal.Zero,
	}
}

func postedEntry(id string) *domain.PostedEntry {
	return &domain.PostedEntry{Entry: domain.JournalEntry{EntryID: id, Status: domain.Posted}}
}

func (suite *OpeningBalanceServiceTestSuite) TestSet_PostsAndLinksEntry() {
	ctx := context.Background()
	c := suite.customer
	var recipe services.OpeningBalanceRecipe
	var stored domain.Contraagent

	suite.mockContraRepo.On("LockContraagent", mock.Anything, suite.organizationID, "c-1").Return(&c, nil).Once()
	suite.mockJournal.On("PostRecipe", mock.Anything, suite.organizationID, suite.actorID, mock.AnythingOfType("services.OpeningBalanceRecipe")).
		Run(func(args mock.Arguments) { recipe = args.Get(3).(services.OpeningBalanceRecipe) }).
		Return(postedEntry("e-1"), nil).Once()
	suite.mockContraRepo.On("UpdateOpeningBalance", mock.Anything, mock.AnythingOfType("domain.Contraagent")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(domain.Contraagent) }).
		Return(nil).Once()

	updated, entry, err := suite.service.SetOpeningBalance(ctx, suite.organizationID, suite.actorID, "c-1", dec("1500.00"), decimal.Zero, "")

	suite.Require().NoError(err)
	suite.Equal("e-1", entry.Entry.EntryID)
	suite.Equal("1500.00", updated.OpeningDebitBalance.StringFixed(2))
	suite.Require().NotNil(stored.OpeningBalanceEntryID)
	suite.Equal("e-1", *stored.OpeningBalanceEntryID)
	suite.Equal(suite.actorID, stored.LastUpdatedBy)
	suite.Equal(suite.now, recipe.EntryDate)
	suite.Equal("1500.00", recipe.Debit.StringFixed(2))
	suite.Equal(1, suite.txManager.Calls)
	suite.mockJournal.AssertNotCalled(suite.T(), "Reverse", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockContraRepo.AssertExpectations(suite.T())
}

func (suite *OpeningBalanceServiceTestSuite) TestSet_ReplacesPreviousEntry() {
	ctx := context.Background()
	c := suite.customer
	previous := "e-old"
	c.OpeningBalanceEntryID = &previous
	c.OpeningDebitBalance = dec("100.00")

	suite.mockContraRepo.On("LockContraagent", mock.Anything, suite.organizationID, "c-1").Return(&c, nil).Once()
	suite.mockJournal.On("Reverse", mock.Anything, suite.organizationID, suite.actorID, "e-old").Return(postedEntry("e-rev"), nil).Once()
	suite.mockJournal.On("PostRecipe", mock.Anything, suite.organizationID, suite.actorID, mock.Anything).Return(postedEntry("e-new"), nil).Once()
	suite.mockContraRepo.On("UpdateOpeningBalance", mock.Anything, mock.MatchedBy(func(got domain.Contraagent) bool {
		return got.OpeningBalanceEntryID != nil && *got.OpeningBalanceEntryID == "e-new" && got.OpeningCreditBalance.Equal(dec("40"))
	})).Return(nil).Once()

	_, entry, err := suite.service.SetOpeningBalance(ctx, suite.organizationID, suite.actorID, "c-1", decimal.Zero, dec("40.00"), "Corrected")

	suite.Require().NoError(err)
	suite.Equal("e-new", entry.Entry.EntryID)
	suite.mockJournal.AssertExpectations(suite.T())
	suite.mockContraRepo.AssertExpectations(suite.T())
}

func (suite *OpeningBalanceServiceTestSuite) TestSet_ToZeroOnlyReverses() {
	ctx := context.Background()
	c := suite.customer
	previous := "e-old"
	c.OpeningBalanceEntryID = &previous

	suite.mockContraRepo.On("LockContraagent", mock.Anything, suite.organizationID, "c-1").Return(&c, nil).Once()
	suite.mockJournal.On("Reverse", mock.Anything, suite.organizationID, suite.actorID, "e-old").Return(nil, apperrors.ErrConflict).Once()
	suite.mockContraRepo.On("UpdateOpeningBalance", mock.Anything, mock.MatchedBy(func(got domain.Contraagent) bool {
		return got.OpeningBalanceEntryID == nil
	})).Return(nil).Once()

	_, entry, err := suite.service.SetOpeningBalance(ctx, suite.organizationID, suite.actorID, "c-1", decimal.Zero, decimal.Zero, "")

	suite.Require().NoError(err)
	suite.Nil(entry)
	suite.mockJournal.AssertNotCalled(suite.T(), "PostRecipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestSet_InvalidCounterparty() {
	ctx := context.Background()
	c := suite.customer
	c.IsCustomer = false
	suite.mockContraRepo.On("LockContraagent", mock.Anything, suite.organizationID, "c-1").Return(&c, nil).Once()

	_, _, err := suite.service.SetOpeningBalance(ctx, suite.organizationID, suite.actorID, "c-1", dec("1"), decimal.Zero, "")

	suite.ErrorIs(err, apperrors.ErrInvalidCounterparty)
	suite.mockContraRepo.AssertNotCalled(suite.T(), "UpdateOpeningBalance", mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestSet_RejectsBadAmounts() {
	ctx := context.Background()
	_, _, err := suite.service.SetOpeningBalance(ctx, suite.organizationID, suite.actorID, "c-1", dec("-1"), decimal.Zero, "")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = suite.service.SetOpeningBalance(ctx, suite.organizationID, suite.actorID, "c-1", dec("1.005"), decimal.Zero, "")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(0, suite.txManager.Calls)
}

func (suite *OpeningBalanceServiceTestSuite) TestRemove_PostsMirror() {
	ctx := context.Background()
	c := suite.customer
	linked := "e-1"
	c.OpeningBalanceEntryID = &linked
	c.OpeningDebitBalance = dec("1500.00")
	var recipe services.OpeningBalanceRecipe

	suite.mockContraRepo.On("LockContraagent", mock.Anything, suite.organizationID, "c-1").Return(&c, nil).Once()
	suite.mockJournal.On("PostRecipe", mock.Anything, suite.organizationID, suite.actorID, mock.AnythingOfType("services.OpeningBalanceRecipe")).
		Run(func(args mock.Arguments) { recipe = args.Get(3).(services.OpeningBalanceRecipe) }).
		Return(postedEntry("e-2"), nil).Once()
	suite.mockContraRepo.On("UpdateOpeningBalance", mock.Anything, mock.AnythingOfType("domain.Contraagent")).Return(nil).Once()

	updated, entry, err := suite.service.RemoveOpeningBalance(ctx, suite.organizationID, suite.actorID, "c-1")

	suite.Require().NoError(err)
	suite.Equal("e-2", entry.Entry.EntryID)
	suite.True(recipe.Debit.IsZero())
	suite.Equal("1500.00", recipe.Credit.StringFixed(2))
	suite.Equal("Remove opening balance for Клиент АД", recipe.Header().Description)
	suite.True(updated.OpeningDebitBalance.IsZero())
	suite.Nil(updated.OpeningBalanceEntryID)
}

func (suite *OpeningBalanceServiceTestSuite) TestRemove_NothingSet() {
	ctx := context.Background()
	c := suite.customer
	suite.mockContraRepo.On("LockContraagent", mock.Anything, suite.organizationID, "c-1").Return(&c, nil).Once()

	updated, entry, err := suite.service.RemoveOpeningBalance(ctx, suite.organizationID, suite.actorID, "c-1")

	suite.Require().NoError(err)
	suite.Nil(entry)
	suite.Equal("c-1", updated.ContraagentID)
	suite.mockContraRepo.AssertNotCalled(suite.T(), "UpdateOpeningBalance", mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestListAndTotals() {
	ctx := context.Background()
	filter := domain.ContraagentFilter{CustomersOnly: true, WithBalance: true}
	suite.mockContraRepo.On("ListContraagents", mock.Anything, suite.organizationID, filter).Return([]domain.Contraagent{suite.customer}, nil).Once()
	suite.mockContraRepo.On("OpeningBalanceTotals", mock.Anything, suite.organizationID).Return(&domain.OpeningBalanceTotals{CustomerCount: 1}, nil).Once()

	list, err := suite.service.ListOpeningBalances(ctx, suite.organizationID, filter)
	suite.Require().NoError(err)
	suite.Len(list, 1)

	totals, err := suite.service.OpeningBalanceTotals(ctx, suite.organizationID)
	suite.Require().NoError(err)
	suite.Equal(1, totals.CustomerCount)

	_, err = suite.service.ListOpeningBalances(ctx, suite.organizationID, domain.ContraagentFilter{CustomersOnly: true, SuppliersOnly: true})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestOpeningBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OpeningBalanceServiceTestSuite))
}
