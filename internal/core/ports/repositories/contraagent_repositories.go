package repositories

import (
	"context"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// ContraagentReader defines read operations for counterparties
type ContraagentReader interface {
	FindContraagentByID(ctx context.Context, organizationID, contraagentID string) (*domain.Contraagent, error)

	// ListContraagents returns customers and suppliers ordered by name.
	ListContraagents(ctx context.Context, organizationID string, filter domain.ContraagentFilter) ([]domain.Contraagent, error)

	// OpeningBalanceTotals sums opening balances per role.
	OpeningBalanceTotals(ctx context.Context, organizationID string) (*domain.OpeningBalanceTotals, error)
}

// ContraagentWriter defines write operations for counterparties
type ContraagentWriter interface {
	// LockContraagent reads the row FOR UPDATE. Must run inside RunInTx.
	LockContraagent(ctx context.Context, organizationID, contraagentID string) (*domain.Contraagent, error)

	// UpdateOpeningBalance stores the opening balances and the linked entry.
	UpdateOpeningBalance(ctx context.Context, contraagent domain.Contraagent) error
}

// ContraagentRepositoryFacade combines all contraagent-related repository interfaces
type ContraagentRepositoryFacade interface {
	ContraagentReader
	ContraagentWriter
}
