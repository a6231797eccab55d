package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// VatRegisterRow holds the columns shared by vat_sales_register and
// vat_purchase_register. Counterparty columns are named recipient_* on the
// sales side and supplier_* on the purchase side.
type VatRegisterRow struct {
	RegisterID            string          `db:"register_id"`
	OrganizationID        string          `db:"organization_id"`
	PeriodYear            int             `db:"period_year"`
	PeriodMonth           int             `db:"period_month"`
	DocumentID            string          `db:"document_id"`
	DocumentType          string          `db:"document_type"`
	DocumentNumber        string          `db:"document_number"`
	DocumentDate          time.Time       `db:"document_date"`
	TaxEventDate          time.Time       `db:"tax_event_date"`
	ContraagentID         sql.NullString  `db:"contraagent_id"`
	CounterpartyName      string          `db:"counterparty_name"`
	CounterpartyVat       sql.NullString  `db:"counterparty_vat_number"`
	CounterpartyEIK       sql.NullString  `db:"counterparty_eik"`
	CounterpartyCountry   sql.NullString  `db:"counterparty_country"`
	CounterpartyCity      sql.NullString  `db:"counterparty_city"`
	TaxableBase           decimal.Decimal `db:"taxable_base"`
	VatRate               decimal.Decimal `db:"vat_rate"`
	VatAmount             decimal.Decimal `db:"vat_amount"`
	TotalAmount           decimal.Decimal `db:"total_amount"`
	VatOperationCode      string          `db:"vat_operation_code"`
	ColumnCode            sql.NullString  `db:"column_code"`
	ViesIndicator         sql.NullString  `db:"vies_indicator"`
	ReverseChargeSubcode  sql.NullString  `db:"reverse_charge_subcode"`
	IsTriangularOperation bool            `db:"is_triangular_operation"`
	IsArt21Service        bool            `db:"is_art21_service"`
	Operation             sql.NullString  `db:"operation"` // sales_operation / purchase_operation
	Notes                 sql.NullString  `db:"notes"`
	AuditFields
}

// VatPurchaseExtras are the purchase-only columns.
type VatPurchaseExtras struct {
	IsDeductible         bool            `db:"is_deductible"`
	DeductibleVatAmount  decimal.Decimal `db:"deductible_vat_amount"`
	DeductibleCreditType string          `db:"deductible_credit_type"`
}
