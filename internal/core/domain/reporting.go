package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account of a turnover trial balance (оборотна ведомост).
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	Code          string          `json:"code"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	OpeningDebit  decimal.Decimal `json:"openingDebit"`
	OpeningCredit decimal.Decimal `json:"openingCredit"`
	PeriodDebit   decimal.Decimal `json:"periodDebit"`
	PeriodCredit  decimal.Decimal `json:"periodCredit"`
	ClosingDebit  decimal.Decimal `json:"closingDebit"`
	ClosingCredit decimal.Decimal `json:"closingCredit"`
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// PAndLReport represents a profit and loss report
type PAndLReport struct {
	Revenue   []AccountAmount `json:"revenue"`   // Net revenue accounts
	Expenses  []AccountAmount `json:"expenses"`  // Net expense accounts
	NetProfit decimal.Decimal `json:"netProfit"` // Total revenue minus total expenses
}

// BalanceSheetReport represents a balance sheet report
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}
