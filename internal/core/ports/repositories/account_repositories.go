package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account of the organization.
	FindAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an active account by its chart code.
	FindAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts of the organization by their IDs.
	// Missing IDs are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts returns the whole chart ordered by code.
	ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error)
}

// AccountBalanceReader computes turnovers for statutory reports.
type AccountBalanceReader interface {
	// ListAccountBalances returns debit and credit totals of posted lines before
	// and within [from, to] for every account of the organization.
	ListAccountBalances(ctx context.Context, organizationID string, from, to time.Time) ([]domain.AccountPeriodBalance, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountBalanceReader
}
