package repositories

import (
	"context"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// OrganizationReader loads tenant settings.
type OrganizationReader interface {
	// FindOrganizationByID returns apperrors.ErrNotFound for unknown or inactive organizations.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}

// OrganizationRepositoryFacade combines all organization-related repository interfaces
type OrganizationRepositoryFacade interface {
	OrganizationReader
}
