package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	"github.com/SscSPs/erp_accounting_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contraagentColumns = `contraagent_id, organization_id, name, is_company, is_customer, is_supplier,
	registration_number, vat_number, street_name, building_number, building, city, postal_code, region, country,
	iban, self_billing_indicator, related_party,
	opening_debit_balance, opening_credit_balance, closing_debit_balance, closing_credit_balance,
	opening_balance_entry_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxContraagentRepository struct {
	BaseRepository
}

func newPgxContraagentRepository(pool *pgxpool.Pool) portsrepo.ContraagentRepositoryFacade {
	return &PgxContraagentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContraagentRepositoryFacade = (*PgxContraagentRepository)(nil)

func scanContraagent(row pgx.Row) (domain.Contraagent, error) {
	var (
		c                                                      domain.Contraagent
		registrationNumber, vatNumber, iban, entryID           sql.NullString
		street, buildingNumber, building, city, postal, region sql.NullString
		country                                                sql.NullString
	)
	err := row.Scan(
		&c.ContraagentID, &c.OrganizationID, &c.Name, &c.IsCompany, &c.IsCustomer, &c.IsSupplier,
		&registrationNumber, &vatNumber, &street, &buildingNumber, &building, &city, &postal, &region, &country,
		&iban, &c.SelfBillingIndicator, &c.RelatedParty,
		&c.OpeningDebitBalance, &c.OpeningCreditBalance, &c.ClosingDebitBalance, &c.ClosingCreditBalance,
		&entryID, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		return c, err
	}
	c.RegistrationNumber = registrationNumber.String
	c.VatNumber = vatNumber.String
	c.Address = domain.Address{
		StreetName:     street.String,
		BuildingNumber: buildingNumber.String,
		Building:       building.String,
		City:           city.String,
		PostalCode:     postal.String,
		Region:         region.String,
		Country:        country.String,
	}
	c.IBAN = iban.String
	c.OpeningBalanceEntryID = mapping.StringPtr(entryID)
	return c, nil
}

func (r *PgxContraagentRepository) FindContraagentByID(ctx context.Context, organizationID, contraagentID string) (*domain.Contraagent, error) {
	query := `SELECT ` + contraagentColumns + ` FROM contraagents WHERE organization_id = $1 AND contraagent_id = $2;`
	c, err := scanContraagent(r.querier(ctx).QueryRow(ctx, query, organizationID, contraagentID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find contraagent "+contraagentID)
	}
	return &c, nil
}

// LockContraagent reads the row FOR UPDATE.
func (r *PgxContraagentRepository) LockContraagent(ctx context.Context, organizationID, contraagentID string) (*domain.Contraagent, error) {
	query := `SELECT ` + contraagentColumns + ` FROM contraagents
		WHERE organization_id = $1 AND contraagent_id = $2
		FOR UPDATE;`
	c, err := scanContraagent(r.querier(ctx).QueryRow(ctx, query, organizationID, contraagentID))
	if err != nil {
		return nil, notFoundOr(err, "failed to lock contraagent "+contraagentID)
	}
	return &c, nil
}

// ListContraagents returns customers and suppliers ordered by name.
func (r *PgxContraagentRepository) ListContraagents(ctx context.Context, organizationID string, filter domain.ContraagentFilter) ([]domain.Contraagent, error) {
	conditions := []string{"organization_id = $1"}
	if filter.CustomersOnly {
		conditions = append(conditions, "is_customer = TRUE")
	}
	if filter.SuppliersOnly {
		conditions = append(conditions, "is_supplier = TRUE")
	}
	if filter.WithBalance {
		conditions = append(conditions, "(opening_debit_balance <> 0 OR opening_credit_balance <> 0)")
	}
	query := `SELECT ` + contraagentColumns + ` FROM contraagents
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY name, contraagent_id;`

	rows, err := r.querier(ctx).Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contraagents for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	var out []domain.Contraagent
	for rows.Next() {
		c, err := scanContraagent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contraagent row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contraagent rows: %w", err)
	}
	return out, nil
}

// OpeningBalanceTotals sums opening balances per role. Counts include only
// contraagents with a non-zero balance.
func (r *PgxContraagentRepository) OpeningBalanceTotals(ctx context.Context, organizationID string) (*domain.OpeningBalanceTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(opening_debit_balance) FILTER (WHERE is_customer), 0),
			COALESCE(SUM(opening_credit_balance) FILTER (WHERE is_customer), 0),
			COUNT(*) FILTER (WHERE is_customer AND (opening_debit_balance <> 0 OR opening_credit_balance <> 0)),
			COALESCE(SUM(opening_debit_balance) FILTER (WHERE is_supplier), 0),
			COALESCE(SUM(opening_credit_balance) FILTER (WHERE is_supplier), 0),
			COUNT(*) FILTER (WHERE is_supplier AND (opening_debit_balance <> 0 OR opening_credit_balance <> 0))
		FROM contraagents
		WHERE organization_id = $1;
	`
	var t domain.OpeningBalanceTotals
	err := r.querier(ctx).QueryRow(ctx, query, organizationID).Scan(
		&t.CustomerDebitTotal,
		&t.CustomerCreditTotal,
		&t.CustomerCount,
		&t.SupplierDebitTotal,
		&t.SupplierCreditTotal,
		&t.SupplierCount,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum opening balances", err)
	}
	return &t, nil
}

// UpdateOpeningBalance stores the opening balances and the linked entry.
func (r *PgxContraagentRepository) UpdateOpeningBalance(ctx context.Context, c domain.Contraagent) error {
	query := `
		UPDATE contraagents
		SET opening_debit_balance = $1, opening_credit_balance = $2, opening_balance_entry_id = $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $6 AND contraagent_id = $7;
	`
	tag, err := r.querier(ctx).Exec(ctx, query,
		c.OpeningDebitBalance,
		c.OpeningCreditBalance,
		mapping.NullStringPtr(c.OpeningBalanceEntryID),
		c.LastUpdatedAt,
		c.LastUpdatedBy,
		c.OrganizationID,
		c.ContraagentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update opening balance of contraagent %s: %w", c.ContraagentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
