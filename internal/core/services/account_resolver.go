package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
)

// fallbackAccountCodes are the conventional chart codes tried, in order, when
// an organization has not configured a slot.
var fallbackAccountCodes = map[domain.AccountSlot][]string{
	domain.SlotCash:                    {"501"},
	domain.SlotBank:                    {"503"},
	domain.SlotAccountsReceivable:      {"1210", "411"},
	domain.SlotAccountsPayable:         {"4010", "401"},
	domain.SlotVatSales:                {"4532"},
	domain.SlotVatPurchases:            {"4531"},
	domain.SlotRevenue:                 {"702"},
	domain.SlotExpense:                 {"602"},
	domain.SlotOpeningBalanceEquity:    {"3010", "123"},
	domain.SlotFixedAssets:             {"205"},
	domain.SlotDepreciationExpense:     {"603"},
	domain.SlotAccumulatedDepreciation: {"241"},
}

// accountResolver maps account slots to accounts. It never creates accounts.
type accountResolver struct {
	BaseService
	accountRepo portsrepo.AccountReader
}

// NewAccountResolver creates a new AccountResolverSvc.
func NewAccountResolver(accountRepo portsrepo.AccountReader, opts ...Option) portssvc.AccountResolverSvc {
	return &accountResolver{
		BaseService: newBaseService(opts...),
		accountRepo: accountRepo,
	}
}

var _ portssvc.AccountResolverSvc = (*accountResolver)(nil)

// Resolve returns the configured account of the slot, falling back to the
// conventional chart codes.
func (r *accountResolver) Resolve(ctx context.Context, org domain.Organization, slot domain.AccountSlot) (string, error) {
	if id, ok := org.DefaultAccount(slot); ok {
		return id, nil
	}

	for _, code := range fallbackAccountCodes[slot] {
		acc, err := r.accountRepo.FindAccountByCode(ctx, org.OrganizationID, code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			r.LogError(ctx, err, "Failed to look up fallback account",
				slog.String("organization_id", org.OrganizationID),
				slog.String("slot", string(slot)),
				slog.String("code", code))
			return "", err
		}
		r.LogDebug(ctx, "Resolved account slot by chart code",
			slog.String("slot", string(slot)),
			slog.String("code", code),
			slog.String("account_id", acc.AccountID))
		return acc.AccountID, nil
	}

	return "", &apperrors.ConfigurationError{OrganizationID: org.OrganizationID, Slot: string(slot)}
}

// ResolveAll resolves several slots at once.
func (r *accountResolver) ResolveAll(ctx context.Context, org domain.Organization, slots ...domain.AccountSlot) (map[domain.AccountSlot]string, error) {
	resolved := make(map[domain.AccountSlot]string, len(slots))
	for _, slot := range slots {
		if _, done := resolved[slot]; done {
			continue
		}
		id, err := r.Resolve(ctx, org, slot)
		if err != nil {
			return nil, err
		}
		resolved[slot] = id
	}
	return resolved, nil
}
