package services

import (
	"context"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// AccountSvc exposes the chart of accounts of an organization.
type AccountSvc interface {
	GetAccount(ctx context.Context, organizationID, accountID string) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error)
}
