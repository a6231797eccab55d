package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMasterDataRepository struct {
	BaseRepository
}

func newPgxMasterDataRepository(pool *pgxpool.Pool) portsrepo.MasterDataReader {
	return &PgxMasterDataRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MasterDataReader = (*PgxMasterDataRepository)(nil)

func (r *PgxMasterDataRepository) ListProducts(ctx context.Context, organizationID string) ([]domain.Product, error) {
	query := `
		SELECT product_id, organization_id, code, name, commodity_code, is_service, unit_of_measure
		FROM products
		WHERE organization_id = $1
		ORDER BY code;
	`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var (
			p                  domain.Product
			commodityCode, uom sql.NullString
		)
		if err := rows.Scan(&p.ProductID, &p.OrganizationID, &p.Code, &p.Name, &commodityCode, &p.IsService, &uom); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		p.CommodityCode = commodityCode.String
		p.UnitOfMeasure = uom.String
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return out, nil
}

// ListStockLevels sums movements up to and including at per warehouse and
// product. The unit price is the one of the latest movement.
func (r *PgxMasterDataRepository) ListStockLevels(ctx context.Context, organizationID string, at time.Time) ([]domain.StockLevel, error) {
	query := `
		SELECT warehouse_id, product_code,
		       COALESCE(MAX(stock_account_id), ''),
		       SUM(quantity),
		       COALESCE(MAX(unit_of_measure), ''),
		       (ARRAY_AGG(unit_price ORDER BY movement_date DESC, movement_id DESC))[1]
		FROM stock_movements
		WHERE organization_id = $1 AND movement_date <= $2
		GROUP BY warehouse_id, product_code
		HAVING SUM(quantity) <> 0
		ORDER BY warehouse_id, product_code;
	`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID, at)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock levels: %w", err)
	}
	defer rows.Close()

	var out []domain.StockLevel
	for rows.Next() {
		var s domain.StockLevel
		if err := rows.Scan(&s.WarehouseID, &s.ProductCode, &s.StockAccountID, &s.Quantity, &s.UnitOfMeasure, &s.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan stock level row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock level rows: %w", err)
	}
	return out, nil
}

func (r *PgxMasterDataRepository) ListStockMovements(ctx context.Context, organizationID string, from, to time.Time) ([]domain.StockMovement, error) {
	query := `
		SELECT movement_id, movement_type, movement_date, COALESCE(document_ref, ''), warehouse_id,
		       product_code, quantity, COALESCE(unit_of_measure, ''), book_value
		FROM stock_movements
		WHERE organization_id = $1 AND movement_date BETWEEN $2 AND $3
		ORDER BY movement_date, movement_id;
	`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	defer rows.Close()

	var out []domain.StockMovement
	for rows.Next() {
		var m domain.StockMovement
		err := rows.Scan(&m.MovementID, &m.MovementType, &m.MovementDate, &m.DocumentRef, &m.WarehouseID,
			&m.ProductCode, &m.Quantity, &m.UnitOfMeasure, &m.BookValue)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock movement row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock movement rows: %w", err)
	}
	return out, nil
}
