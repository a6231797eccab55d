package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsDebitNature reports whether the account grows on the debit side.
func (t AccountType) IsDebitNature() bool {
	return t == Asset || t == Expense
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account is a ledger account of one organization.
// Balance is only changed by the journal repository while posting an entry.
type Account struct {
	AccountID      string          `json:"accountID"`
	OrganizationID string          `json:"organizationID"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	StandardCode   string          `json:"standardCode"` // national chart code reported in SAF-T
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// TaxpayerCode is the SAF-T TaxpayerAccountID, falling back to the account code.
func (a Account) TaxpayerCode() string {
	if a.StandardCode != "" {
		return a.StandardCode
	}
	return a.Code
}

// AccountPeriodBalance carries the turnover of an account for a reporting period.
type AccountPeriodBalance struct {
	Account
	OpeningDebit  decimal.Decimal // sum of debits before the period
	OpeningCredit decimal.Decimal
	PeriodDebit   decimal.Decimal
	PeriodCredit  decimal.Decimal
}

// OpeningNet is the signed balance at the start of the period, debit positive.
func (b AccountPeriodBalance) OpeningNet() decimal.Decimal {
	return b.OpeningBalance.Add(b.OpeningDebit).Sub(b.OpeningCredit)
}

// ClosingNet is the signed balance at the end of the period, debit positive.
func (b AccountPeriodBalance) ClosingNet() decimal.Decimal {
	return b.OpeningNet().Add(b.PeriodDebit).Sub(b.PeriodCredit)
}
