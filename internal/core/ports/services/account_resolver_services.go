package services

import (
	"context"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// AccountResolverSvc maps semantic slots to concrete accounts of an organization.
type AccountResolverSvc interface {
	// Resolve returns the account ID for the slot or an *apperrors.ConfigurationError.
	Resolve(ctx context.Context, org domain.Organization, slot domain.AccountSlot) (string, error)

	// ResolveAll resolves several slots, failing on the first unresolved one.
	ResolveAll(ctx context.Context, org domain.Organization, slots ...domain.AccountSlot) (map[domain.AccountSlot]string, error)
}
