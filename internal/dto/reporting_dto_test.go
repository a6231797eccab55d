package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestToTrialBalanceResponse_Totals(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	rows := []domain.TrialBalanceRow{
		{AccountID: "a1", Code: "501", AccountType: domain.Asset, PeriodDebit: d("200"), ClosingDebit: d("350")},
		{AccountID: "a2", Code: "702", AccountType: domain.Income, PeriodCredit: d("200"), ClosingCredit: d("350")},
	}

	resp := ToTrialBalanceResponse(rows, from, to)

	assert.Equal(t, "2024-03-01", resp.FromDate)
	assert.Equal(t, "2024-03-31", resp.ToDate)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "ASSET", resp.Rows[0].AccountType)
	assert.True(t, resp.Totals.PeriodDebit.Equal(resp.Totals.PeriodCredit))
	assert.True(t, resp.Totals.ClosingDebit.Equal(d("350")))
}

func TestToProfitAndLossResponse_Summary(t *testing.T) {
	report := &domain.PAndLReport{
		Revenue:   []domain.AccountAmount{{AccountID: "r1", Code: "702", NetAmount: d("500")}},
		Expenses:  []domain.AccountAmount{{AccountID: "e1", Code: "602", NetAmount: d("120")}, {AccountID: "e2", Code: "603", NetAmount: d("80")}},
		NetProfit: d("300"),
	}

	resp := ToProfitAndLossResponse(report, time.Now(), time.Now())

	assert.Equal(t, "702", resp.Revenue[0].Code)
	assert.True(t, resp.Summary.TotalRevenue.Equal(d("500")))
	assert.True(t, resp.Summary.TotalExpenses.Equal(d("200")))
	assert.True(t, resp.Summary.NetProfit.Equal(d("300")))
}

func TestToBalanceSheetResponse_Balanced(t *testing.T) {
	report := &domain.BalanceSheetReport{
		Assets:           []domain.AccountAmount{{AccountID: "a1", NetAmount: d("150")}},
		Liabilities:      []domain.AccountAmount{{AccountID: "l1", NetAmount: d("30")}},
		Equity:           []domain.AccountAmount{{AccountID: "q1", NetAmount: d("120")}},
		TotalAssets:      d("150"),
		TotalLiabilities: d("30"),
		TotalEquity:      d("120"),
	}
	asOf := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	resp := ToBalanceSheetResponse(report, asOf)
	assert.Equal(t, "2024-03-31", resp.AsOf)
	assert.True(t, resp.Summary.Balanced)
	assert.Empty(t, ToBalanceSheetResponse(&domain.BalanceSheetReport{}, asOf).Assets)

	report.TotalEquity = d("100")
	assert.False(t, ToBalanceSheetResponse(report, asOf).Summary.Balanced)
}

func TestReportRangeParams_Range(t *testing.T) {
	from, to, err := ReportRangeParams{From: "2024-01-01", To: "2024-12-31"}.Range()
	require.NoError(t, err)
	assert.Equal(t, time.January, from.Month())
	assert.Equal(t, 31, to.Day())

	_, _, err = ReportRangeParams{From: "2024-13-01", To: "2024-12-31"}.Range()
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 29, got.Day())

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}
