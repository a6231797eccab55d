package services

import (
	"context"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// VatRegisterSvc records finalized documents into the VAT journals.
type VatRegisterSvc interface {
	RecordSale(ctx context.Context, organizationID, actorID string, doc domain.SalesDocument) (*domain.VatSalesRegister, error)
	RecordPurchase(ctx context.Context, organizationID, actorID string, doc domain.PurchaseDocument) (*domain.VatPurchaseRegister, error)
	ListSalesRegister(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatSalesRegister, error)
	ListPurchaseRegister(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatPurchaseRegister, error)
}

// VatReturnSvc computes and moves monthly returns through their lifecycle.
type VatReturnSvc interface {
	ComputeVatReturn(ctx context.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error)
	SubmitVatReturn(ctx context.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error)
	AcceptVatReturn(ctx context.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error)
	GetVatReturn(ctx context.Context, organizationID string, period domain.Period) (*domain.VatReturn, error)
}

// VatSvcFacade combines all VAT-related service interfaces
type VatSvcFacade interface {
	VatRegisterSvc
	VatReturnSvc
}
