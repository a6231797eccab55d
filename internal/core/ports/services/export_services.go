package services

import (
	"context"
	"io"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// ExportSvc writes statutory files for the tax authority.
type ExportSvc interface {
	WriteSalesRegister(ctx context.Context, organizationID string, period domain.Period, w io.Writer) error
	WritePurchaseRegister(ctx context.Context, organizationID string, period domain.Period, w io.Writer) error
	WriteDeclaration(ctx context.Context, organizationID string, period domain.Period, w io.Writer) error
	WriteSAFT(ctx context.Context, organizationID string, req domain.SaftRequest, w io.Writer) error
}
