package pgsql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// slotColumns maps every account slot to its organizations column.
var slotColumns = map[domain.AccountSlot]string{
	domain.SlotCash:                    "default_cash_account_id",
	domain.SlotBank:                    "default_bank_account_id",
	domain.SlotAccountsReceivable:      "default_receivable_account_id",
	domain.SlotAccountsPayable:         "default_payable_account_id",
	domain.SlotVatSales:                "default_vat_sales_account_id",
	domain.SlotVatPurchases:            "default_vat_purchases_account_id",
	domain.SlotRevenue:                 "default_revenue_account_id",
	domain.SlotExpense:                 "default_expense_account_id",
	domain.SlotOpeningBalanceEquity:    "default_opening_balance_equity_account_id",
	domain.SlotFixedAssets:             "default_fixed_asset_account_id",
	domain.SlotDepreciationExpense:     "default_depreciation_account_id",
	domain.SlotAccumulatedDepreciation: "default_accumulated_depreciation_account_id",
}

type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

// FindOrganizationByID loads an active organization with its default accounts.
func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	slotCols := make([]string, len(domain.AllAccountSlots))
	for i, slot := range domain.AllAccountSlots {
		slotCols[i] = slotColumns[slot]
	}
	query := `
		SELECT organization_id, name, slug, vat_number, registration_number,
		       street_name, building_number, building, city, postal_code, region, country,
		       legal_representative_name, legal_representative_id, phone, email, website, bank_iban,
		       currency_code, tax_accounting_basis, tax_authority,
		       is_active, created_at, created_by, last_updated_at, last_updated_by,
		       ` + strings.Join(slotCols, ", ") + `
		FROM organizations
		WHERE organization_id = $1 AND is_active = TRUE;
	`

	var (
		org                                                    domain.Organization
		vatNumber, registrationNumber                          sql.NullString
		street, buildingNumber, building, city, postal, region sql.NullString
		repName, repID, phone, email, website, iban, authority sql.NullString
	)
	slots := make([]sql.NullString, len(domain.AllAccountSlots))
	dest := []any{
		&org.OrganizationID, &org.Name, &org.Slug, &vatNumber, &registrationNumber,
		&street, &buildingNumber, &building, &city, &postal, &region, &org.Country,
		&repName, &repID, &phone, &email, &website, &iban,
		&org.CurrencyCode, &org.TaxAccountingBasis, &authority,
		&org.IsActive, &org.CreatedAt, &org.CreatedBy, &org.LastUpdatedAt, &org.LastUpdatedBy,
	}
	for i := range slots {
		dest = append(dest, &slots[i])
	}

	if err := r.querier(ctx).QueryRow(ctx, query, organizationID).Scan(dest...); err != nil {
		return nil, notFoundOr(err, "failed to find organization "+organizationID)
	}

	org.VatNumber = vatNumber.String
	org.RegistrationNumber = registrationNumber.String
	org.StreetName = street.String
	org.BuildingNumber = buildingNumber.String
	org.Building = building.String
	org.City = city.String
	org.PostalCode = postal.String
	org.Region = region.String
	org.LegalRepresentativeName = repName.String
	org.LegalRepresentativeID = repID.String
	org.Phone = phone.String
	org.Email = email.String
	org.Website = website.String
	org.BankIBAN = iban.String
	org.TaxAuthority = authority.String

	org.DefaultAccounts = make(map[domain.AccountSlot]string)
	for i, slot := range domain.AllAccountSlots {
		if slots[i].Valid && slots[i].String != "" {
			org.DefaultAccounts[slot] = slots[i].String
		}
	}
	return &org, nil
}
