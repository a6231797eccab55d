package accounting

import (
	"errors"
	"testing"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateSignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		line        domain.EntryLine
		accountType domain.AccountType
		want        string
		wantErr     bool
	}{
		{"debit asset", domain.EntryLine{Debit: d("10"), Credit: d("0")}, domain.Asset, "10", false},
		{"credit asset", domain.EntryLine{Debit: d("0"), Credit: d("10")}, domain.Asset, "-10", false},
		{"debit liability", domain.EntryLine{Debit: d("10"), Credit: d("0")}, domain.Liability, "-10", false},
		{"credit income", domain.EntryLine{Debit: d("0"), Credit: d("7.5")}, domain.Income, "7.5", false},
		{"unknown type", domain.EntryLine{Debit: d("1")}, domain.AccountType("BOGUS"), "0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSignedAmount(tt.line, tt.accountType)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestBalanceChanges(t *testing.T) {
	accounts := map[string]domain.Account{
		"cash": {AccountID: "cash", AccountType: domain.Asset},
		"ap":   {AccountID: "ap", AccountType: domain.Liability},
	}
	lines := []domain.EntryLine{
		{AccountID: "ap", Debit: d("500.00"), Credit: decimal.Zero},
		{AccountID: "cash", Debit: decimal.Zero, Credit: d("500.00")},
	}

	changes, err := BalanceChanges(lines, accounts)
	require.NoError(t, err)
	assert.True(t, changes["ap"].Equal(d("-500")))
	assert.True(t, changes["cash"].Equal(d("-500")))

	_, err = BalanceChanges([]domain.EntryLine{{AccountID: "missing", Debit: d("1")}}, accounts)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCheckBalance(t *testing.T) {
	balanced := []domain.LineInput{
		domain.DebitLine("a", d("100.10"), ""),
		domain.CreditLine("b", d("60.05"), ""),
		domain.CreditLine("c", d("40.05"), ""),
	}
	assert.NoError(t, CheckBalance(balanced))

	unbalanced := []domain.LineInput{
		domain.DebitLine("a", d("100.00"), ""),
		domain.CreditLine("b", d("99.99"), ""),
	}
	err := CheckBalance(unbalanced)
	var ue *apperrors.UnbalancedEntryError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "0.01", ue.Imbalance().StringFixed(2))
}

func TestPrecisionHelpers(t *testing.T) {
	assert.True(t, HasMoneyPrecision(d("12.34")))
	assert.True(t, HasMoneyPrecision(d("12")))
	assert.False(t, HasMoneyPrecision(d("12.345")))
	assert.Equal(t, "12.35", Round(d("12.345")).StringFixed(2))
	assert.Equal(t, "-0.50", Format(d("-0.5")))
	assert.Equal(t, "1234.56", Format(d("1234.56")))
}

func TestNetByAccount(t *testing.T) {
	lines := []domain.EntryLine{
		{AccountID: "a", Debit: d("10"), Credit: decimal.Zero},
		{AccountID: "a", Debit: decimal.Zero, Credit: d("10")},
		{AccountID: "b", Debit: d("3"), Credit: decimal.Zero},
	}
	net := NetByAccount(lines)
	assert.True(t, net["a"].IsZero())
	assert.True(t, net["b"].Equal(d("3")))
}
