package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// MasterDataReader exposes products and stock for SAF-T master files.
type MasterDataReader interface {
	ListProducts(ctx context.Context, organizationID string) ([]domain.Product, error)
	ListStockLevels(ctx context.Context, organizationID string, at time.Time) ([]domain.StockLevel, error)
	ListStockMovements(ctx context.Context, organizationID string, from, to time.Time) ([]domain.StockMovement, error)
}
