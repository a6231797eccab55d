package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// ReportingService builds financial reports from posted turnovers.
type ReportingService interface {
	// TrialBalance returns opening, period and closing turnovers of every account with movement.
	TrialBalance(ctx context.Context, organizationID string, from, to time.Time) ([]domain.TrialBalanceRow, error)

	ProfitAndLoss(ctx context.Context, organizationID string, from, to time.Time) (*domain.PAndLReport, error)

	BalanceSheet(ctx context.Context, organizationID string, asOf time.Time) (*domain.BalanceSheetReport, error)
}
