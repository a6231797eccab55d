package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	orgRepo     portsrepo.OrganizationReader
	balanceRepo portsrepo.AccountBalanceReader
}

// NewReportingService creates a new reporting service
func NewReportingService(orgRepo portsrepo.OrganizationReader, balanceRepo portsrepo.AccountBalanceReader, opts ...Option) portssvc.ReportingService {
	return &reportingService{
		BaseService: newBaseService(opts...),
		orgRepo:     orgRepo,
		balanceRepo: balanceRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) balances(ctx context.Context, organizationID string, from, to time.Time) ([]domain.AccountPeriodBalance, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	if _, err := s.orgRepo.FindOrganizationByID(ctx, organizationID); err != nil {
		return nil, err
	}
	balances, err := s.balanceRepo.ListAccountBalances(ctx, organizationID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account balances",
			slog.String("from", from.Format(time.DateOnly)),
			slog.String("to", to.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to retrieve account balances: %w", err)
	}
	return balances, nil
}

// splitNet puts a debit-positive net on its side.
func splitNet(net decimal.Decimal) (debit, credit decimal.Decimal) {
	if net.IsNegative() {
		return decimal.Zero, net.Neg()
	}
	return net, decimal.Zero
}

// TrialBalance generates a turnover trial balance for [from, to]. Accounts
// without any balance or movement are left out.
func (s *reportingService) TrialBalance(ctx context.Context, organizationID string, from, to time.Time) ([]domain.TrialBalanceRow, error) {
	balances, err := s.balances(ctx, organizationID, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TrialBalanceRow, 0, len(balances))
	for _, b := range balances {
		openingNet := b.OpeningNet()
		if openingNet.IsZero() && b.PeriodDebit.IsZero() && b.PeriodCredit.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			AccountID:    b.AccountID,
			Code:         b.Code,
			AccountName:  b.Name,
			AccountType:  b.AccountType,
			PeriodDebit:  b.PeriodDebit,
			PeriodCredit: b.PeriodCredit,
		}
		row.OpeningDebit, row.OpeningCredit = splitNet(openingNet)
		row.ClosingDebit, row.ClosingCredit = splitNet(b.ClosingNet())
		rows = append(rows, row)
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// ProfitAndLoss generates a profit and loss report from the period turnovers of income and expense accounts.
func (s *reportingService) ProfitAndLoss(ctx context.Context, organizationID string, from, to time.Time) (*domain.PAndLReport, error) {
	balances, err := s.balances(ctx, organizationID, from, to)
	if err != nil {
		return nil, err
	}

	report := &domain.PAndLReport{Revenue: []domain.AccountAmount{}, Expenses: []domain.AccountAmount{}, NetProfit: decimal.Zero}
	totalRevenue, totalExpenses := decimal.Zero, decimal.Zero
	for _, b := range balances {
		switch b.AccountType {
		case domain.Income:
			net := b.PeriodCredit.Sub(b.PeriodDebit)
			if net.IsZero() {
				continue
			}
			report.Revenue = append(report.Revenue, accountAmount(b.Account, net))
			totalRevenue = totalRevenue.Add(net)
		case domain.Expense:
			net := b.PeriodDebit.Sub(b.PeriodCredit)
			if net.IsZero() {
				continue
			}
			report.Expenses = append(report.Expenses, accountAmount(b.Account, net))
			totalExpenses = totalExpenses.Add(net)
		}
	}
	report.NetProfit = totalRevenue.Sub(totalExpenses)

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	return report, nil
}

// BalanceSheet generates a balance sheet report from closing balances as of a date.
func (s *reportingService) BalanceSheet(ctx context.Context, organizationID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	balances, err := s.balances(ctx, organizationID, asOf, asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, b := range balances {
		net := b.ClosingNet()
		if net.IsZero() {
			continue
		}
		switch b.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, accountAmount(b.Account, net))
			report.TotalAssets = report.TotalAssets.Add(net)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, accountAmount(b.Account, net.Neg()))
			report.TotalLiabilities = report.TotalLiabilities.Add(net.Neg())
		case domain.Equity:
			report.Equity = append(report.Equity, accountAmount(b.Account, net.Neg()))
			report.TotalEquity = report.TotalEquity.Add(net.Neg())
		}
	}

	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)),
		slog.Int("equity_accounts", len(report.Equity)))
	return report, nil
}

func accountAmount(a domain.Account, net decimal.Decimal) domain.AccountAmount {
	return domain.AccountAmount{AccountID: a.AccountID, Code: a.Code, Name: a.Name, NetAmount: net}
}
