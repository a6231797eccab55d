package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/SscSPs/erp_accounting_core/internal/core/services"
	"github.com/SscSPs/erp_accounting_core/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recipeResolver = staticResolver{
	domain.SlotCash:                    "501",
	domain.SlotBank:                    "503",
	domain.SlotAccountsPayable:         "401",
	domain.SlotAccountsReceivable:      "411",
	domain.SlotExpense:                 "602",
	domain.SlotOpeningBalanceEquity:    "123",
	domain.SlotFixedAssets:             "205",
	domain.SlotDepreciationExpense:     "603",
	domain.SlotAccumulatedDepreciation: "241",
}

func assertBalanced(t *testing.T, lines []domain.LineInput) {
	t.Helper()
	require.NoError(t, accounting.CheckBalance(lines))
}

func TestPaymentRecipe_Lines(t *testing.T) {
	org := domain.Organization{OrganizationID: "org-1"}
	customer := "c-1"

	tests := []struct {
		name        string
		subject     domain.PaymentSubject
		method      domain.PaymentMethod
		wantDebit   string
		wantCredit  string
		contraOnIdx int
	}{
		{"supplier by bank", domain.PaymentSubjectSupplier, domain.PaymentMethodBank, "401", "503", 0},
		{"expense in cash", domain.PaymentSubjectExpense, domain.PaymentMethodCash, "602", "501", 0},
		{"customer by bank", domain.PaymentSubjectCustomer, domain.PaymentMethodBank, "503", "411", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := services.PaymentRecipe{Payment: domain.Payment{
				PaymentID: "p-1", Amount: dec("500.00"), SubjectType: tt.subject, Method: tt.method, ContraagentID: &customer,
			}}
			lines, err := r.Lines(context.Background(), org, recipeResolver)
			require.NoError(t, err)
			require.Len(t, lines, 2)
			assert.Equal(t, tt.wantDebit, lines[0].AccountID)
			assert.Equal(t, tt.wantCredit, lines[1].AccountID)
			assert.Equal(t, "c-1", *lines[tt.contraOnIdx].ContraagentID)
			assert.Nil(t, lines[1-tt.contraOnIdx].ContraagentID)
			assertBalanced(t, lines)
		})
	}
}

func TestPaymentRecipe_RejectsBadInput(t *testing.T) {
	org := domain.Organization{OrganizationID: "org-1"}
	bad := []domain.Payment{
		{PaymentID: "p", Amount: decimal.Zero, SubjectType: domain.PaymentSubjectSupplier, Method: domain.PaymentMethodBank},
		{PaymentID: "p", Amount: dec("1"), SubjectType: domain.PaymentSubjectSupplier, Method: "card"},
		{PaymentID: "p", Amount: dec("1"), SubjectType: "loan", Method: domain.PaymentMethodBank},
	}
	for _, p := range bad {
		_, err := services.PaymentRecipe{Payment: p}.Lines(context.Background(), org, recipeResolver)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestBankTransactionRecipe_CounterAccountOverride(t *testing.T) {
	counter := "709"
	r := services.BankTransactionRecipe{Transaction: domain.BankTransaction{
		TransactionID: "T1", Amount: dec("-75.10"), IsCredit: false, CounterAccountID: &counter, Description: "Bank fee",
	}}

	lines, err := r.Lines(context.Background(), domain.Organization{}, recipeResolver)

	require.NoError(t, err)
	assert.Equal(t, "709", lines[0].AccountID)
	assert.Equal(t, "75.10", lines[0].Debit.StringFixed(2))
	assert.Equal(t, "503", lines[1].AccountID)
	assert.Equal(t, "Bank fee", r.Header().Description)
	assertBalanced(t, lines)
}

func TestAssetTransactionRecipe_Slots(t *testing.T) {
	tests := []struct {
		typ        domain.AssetTransactionType
		amount     string
		wantDebit  string
		wantCredit string
	}{
		{domain.AssetAcquisition, "2400.00", "205", "401"},
		{domain.AssetDepreciation, "100.00", "603", "241"},
		{domain.AssetDisposal, "900.00", "241", "205"},
		{domain.AssetRevaluation, "300.00", "205", "123"},
		{domain.AssetRevaluation, "-300.00", "123", "205"},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ)+" "+tt.amount, func(t *testing.T) {
			r := services.AssetTransactionRecipe{Transaction: domain.AssetTransaction{
				AssetTransactionID: "a1", AssetCode: "FA-1", TransactionType: tt.typ, Amount: dec(tt.amount),
			}}
			lines, err := r.Lines(context.Background(), domain.Organization{}, recipeResolver)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebit, lines[0].AccountID)
			assert.Equal(t, tt.wantCredit, lines[1].AccountID)
			assert.True(t, lines[0].Debit.IsPositive())
			assertBalanced(t, lines)
		})
	}

	_, err := services.AssetTransactionRecipe{Transaction: domain.AssetTransaction{TransactionType: "impairment", Amount: dec("1")}}.
		Lines(context.Background(), domain.Organization{}, recipeResolver)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestOpeningBalanceRecipe_Lines(t *testing.T) {
	ctx := context.Background()
	customer := domain.Contraagent{ContraagentID: "0f8fad5b-d9cb-469f-a165-70867728950e", Name: "Клиент АД", IsCustomer: true, IsSupplier: true}
	supplier := domain.Contraagent{ContraagentID: "7c9e6679-7425-40de-944b-e07fc1f90ae7", Name: "Доставчик ООД", IsSupplier: true}

	r := services.OpeningBalanceRecipe{Contraagent: customer, Debit: dec("1500.00"), Credit: decimal.Zero, EntryDate: time.Now()}
	lines, err := r.Lines(ctx, domain.Organization{}, recipeResolver)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "411", lines[0].AccountID)
	assert.Equal(t, "Клиент АД - Opening Debit Balance", lines[0].Description)
	assert.Equal(t, customer.ContraagentID, *lines[0].ContraagentID)
	assert.Equal(t, "123", lines[1].AccountID)
	assert.Equal(t, "Opening balance for Клиент АД", r.Header().Description)
	assert.Equal(t, "OB-0F8FAD5B", r.Header().Reference)

	r = services.OpeningBalanceRecipe{Contraagent: supplier, Debit: dec("10.00"), Credit: dec("250.00")}
	lines, err = r.Lines(ctx, domain.Organization{}, recipeResolver)
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Equal(t, "401", lines[3].AccountID)
	assert.Equal(t, "250.00", lines[3].Credit.StringFixed(2))
	assert.Equal(t, "123", lines[2].AccountID)
	assertBalanced(t, lines)

	none := services.OpeningBalanceRecipe{Contraagent: domain.Contraagent{ContraagentID: "x"}, Debit: dec("1")}
	_, err = none.Lines(ctx, domain.Organization{}, recipeResolver)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCounterparty)

	negative := services.OpeningBalanceRecipe{Contraagent: supplier, Debit: dec("-1")}
	_, err = negative.Lines(ctx, domain.Organization{}, recipeResolver)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
