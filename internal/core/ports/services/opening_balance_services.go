package services

import (
	"context"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpeningBalanceSvc posts counterparty opening balances against equity.
type OpeningBalanceSvc interface {
	// SetOpeningBalance replaces the opening balance of a contraagent. The
	// returned entry is nil when both amounts are zero.
	SetOpeningBalance(ctx context.Context, organizationID, actorID, contraagentID string, debit, credit decimal.Decimal, description string) (*domain.Contraagent, *domain.PostedEntry, error)

	// RemoveOpeningBalance zeroes the balance and posts the mirror entry; nil entry when nothing was set.
	RemoveOpeningBalance(ctx context.Context, organizationID, actorID, contraagentID string) (*domain.Contraagent, *domain.PostedEntry, error)

	ListOpeningBalances(ctx context.Context, organizationID string, filter domain.ContraagentFilter) ([]domain.Contraagent, error)
	OpeningBalanceTotals(ctx context.Context, organizationID string) (*domain.OpeningBalanceTotals, error)
}
