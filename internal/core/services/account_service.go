package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
)

// accountService is the read side of the chart of accounts.
type accountService struct {
	BaseService
	orgRepo     portsrepo.OrganizationReader
	accountRepo portsrepo.AccountReader
}

// NewAccountService creates a new AccountSvc.
func NewAccountService(orgRepo portsrepo.OrganizationReader, accountRepo portsrepo.AccountReader, opts ...Option) portssvc.AccountSvc {
	return &accountService{
		BaseService: newBaseService(opts...),
		orgRepo:     orgRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

func (s *accountService) GetAccount(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, organizationID, accountID)
	if err != nil {
		s.LogDebug(ctx, "Account lookup failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}
	return acc, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByCode(ctx, organizationID, code)
}

// ListAccounts returns the chart ordered by code. Unknown organizations fail with ErrNotFound.
func (s *accountService) ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error) {
	if _, err := s.orgRepo.FindOrganizationByID(ctx, organizationID); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("organization_id", organizationID))
		return nil, err
	}
	return accounts, nil
}
