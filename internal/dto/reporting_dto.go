package dto

import (
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportRangeParams defines the date range query of period reports.
type ReportRangeParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// Range parses the bound dates.
func (p ReportRangeParams) Range() (time.Time, time.Time, error) {
	from, err := time.Parse(DateLayout, p.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(DateLayout, p.To)
	return from, to, err
}

// AsOfParams defines the query of point-in-time reports.
type AsOfParams struct {
	AsOf string `form:"asOf" binding:"required,datetime=2006-01-02"`
}

// TrialBalanceRowResponse is one account line of the turnover sheet.
type TrialBalanceRowResponse struct {
	AccountID     string          `json:"accountID"`
	Code          string          `json:"code"`
	AccountName   string          `json:"accountName"`
	AccountType   string          `json:"accountType"`
	OpeningDebit  decimal.Decimal `json:"openingDebit"`
	OpeningCredit decimal.Decimal `json:"openingCredit"`
	PeriodDebit   decimal.Decimal `json:"periodDebit"`
	PeriodCredit  decimal.Decimal `json:"periodCredit"`
	ClosingDebit  decimal.Decimal `json:"closingDebit"`
	ClosingCredit decimal.Decimal `json:"closingCredit"`
}

// TrialBalanceResponse carries the rows and the period and closing totals.
type TrialBalanceResponse struct {
	FromDate string                    `json:"fromDate"`
	ToDate   string                    `json:"toDate"`
	Rows     []TrialBalanceRowResponse `json:"rows"`
	Totals   struct {
		PeriodDebit   decimal.Decimal `json:"periodDebit"`
		PeriodCredit  decimal.Decimal `json:"periodCredit"`
		ClosingDebit  decimal.Decimal `json:"closingDebit"`
		ClosingCredit decimal.Decimal `json:"closingCredit"`
	} `json:"totals"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Revenue  []AccountAmountResponse `json:"revenue"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  decimal.Decimal `json:"totalRevenue"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetProfit     decimal.Decimal `json:"netProfit"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
		Balanced         bool            `json:"balanced"`
	} `json:"summary"`
}

// ToTrialBalanceResponse converts domain trial balance rows to a DTO response
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, from, to time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		FromDate: from.Format(DateLayout),
		ToDate:   to.Format(DateLayout),
		Rows:     make([]TrialBalanceRowResponse, len(rows)),
	}

	totals := &response.Totals
	totals.PeriodDebit, totals.PeriodCredit = decimal.Zero, decimal.Zero
	totals.ClosingDebit, totals.ClosingCredit = decimal.Zero, decimal.Zero

	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:     row.AccountID,
			Code:          row.Code,
			AccountName:   row.AccountName,
			AccountType:   string(row.AccountType),
			OpeningDebit:  row.OpeningDebit,
			OpeningCredit: row.OpeningCredit,
			PeriodDebit:   row.PeriodDebit,
			PeriodCredit:  row.PeriodCredit,
			ClosingDebit:  row.ClosingDebit,
			ClosingCredit: row.ClosingCredit,
		}

		totals.PeriodDebit = totals.PeriodDebit.Add(row.PeriodDebit)
		totals.PeriodCredit = totals.PeriodCredit.Add(row.PeriodCredit)
		totals.ClosingDebit = totals.ClosingDebit.Add(row.ClosingDebit)
		totals.ClosingCredit = totals.ClosingCredit.Add(row.ClosingCredit)
	}

	return response
}

// toAccountAmounts converts report lines and sums them.
func toAccountAmounts(lines []domain.AccountAmount) ([]AccountAmountResponse, decimal.Decimal) {
	out := make([]AccountAmountResponse, len(lines))
	total := decimal.Zero
	for i, l := range lines {
		out[i] = AccountAmountResponse{AccountID: l.AccountID, Code: l.Code, Name: l.Name, Amount: l.NetAmount}
		total = total.Add(l.NetAmount)
	}
	return out, total
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response
func ToProfitAndLossResponse(report *domain.PAndLReport, from, to time.Time) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		FromDate: from.Format(DateLayout),
		ToDate:   to.Format(DateLayout),
	}
	response.Revenue, response.Summary.TotalRevenue = toAccountAmounts(report.Revenue)
	response.Expenses, response.Summary.TotalExpenses = toAccountAmounts(report.Expenses)
	response.Summary.NetProfit = report.NetProfit
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO
// response. Balanced reports whether assets equal liabilities plus equity.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, asOf time.Time) BalanceSheetResponse {
	response := BalanceSheetResponse{AsOf: asOf.Format(DateLayout)}
	response.Assets, _ = toAccountAmounts(report.Assets)
	response.Liabilities, _ = toAccountAmounts(report.Liabilities)
	response.Equity, _ = toAccountAmounts(report.Equity)

	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.Balanced = report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity))
	return response
}
