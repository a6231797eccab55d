package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// VatRegisterRepository stores sales and purchase register rows.
type VatRegisterRepository interface {
	// SaveSalesRow returns apperrors.ErrDuplicate when the document is already registered.
	SaveSalesRow(ctx context.Context, row domain.VatSalesRegister) error

	// SavePurchaseRow returns apperrors.ErrDuplicate when the document is already registered.
	SavePurchaseRow(ctx context.Context, row domain.VatPurchaseRegister) error

	// ListSalesRows returns the rows of a period ordered by document date, then number.
	ListSalesRows(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatSalesRegister, error)

	// ListPurchaseRows returns the rows of a period ordered by document date, then number.
	ListPurchaseRows(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatPurchaseRegister, error)

	// ListPendingDocuments returns draft sales and purchase documents whose tax event date
	// (document date when unset) falls within the period.
	ListPendingDocuments(ctx context.Context, organizationID string, period domain.Period) ([]domain.PendingDocument, error)
}

// VatReturnRepository stores monthly VAT returns.
type VatReturnRepository interface {
	FindVatReturn(ctx context.Context, organizationID string, period domain.Period) (*domain.VatReturn, error)

	// LockVatReturn reads the return FOR UPDATE, apperrors.ErrNotFound when missing. Must run inside RunInTx.
	LockVatReturn(ctx context.Context, organizationID string, period domain.Period) (*domain.VatReturn, error)

	// UpsertVatReturn inserts or replaces the draft return of (organization, year, month).
	UpsertVatReturn(ctx context.Context, ret domain.VatReturn) error

	UpdateVatReturnStatus(ctx context.Context, vatReturnID string, status domain.VatReturnStatus, submissionDate *time.Time, updatedBy string, updatedAt time.Time) error
}

// VatRepositoryFacade combines all VAT-related repository interfaces
type VatRepositoryFacade interface {
	VatRegisterRepository
	VatReturnRepository
}
