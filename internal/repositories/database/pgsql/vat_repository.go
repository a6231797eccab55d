package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	"github.com/SscSPs/erp_accounting_core/internal/models"
	"github.com/SscSPs/erp_accounting_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// registerColumns renders the shared register columns, aliasing the
// counterparty columns of the given side (recipient or supplier).
func registerColumns(side string) string {
	return `register_id, organization_id, period_year, period_month, document_id, document_type,
		document_number, document_date, tax_event_date, contraagent_id,
		` + side + `_name, ` + side + `_vat_number, ` + side + `_eik, ` + side + `_country, ` + side + `_city,
		taxable_base, vat_rate, vat_amount, total_amount, vat_operation_code, column_code, vies_indicator,
		reverse_charge_subcode, is_triangular_operation, is_art21_service, notes,
		created_at, created_by, last_updated_at, last_updated_by`
}

const vatReturnColumns = `vat_return_id, organization_id, period_year, period_month, status,
	sales_count, purchases_count, total_sales_taxable, total_sales_vat, total_purchases_taxable,
	total_purchases_vat, total_deductible_vat, vat_payable, vat_refundable, submission_date, due_date,
	notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxVatRepository struct {
	BaseRepository
}

func newPgxVatRepository(pool *pgxpool.Pool) portsrepo.VatRepositoryFacade {
	return &PgxVatRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VatRepositoryFacade = (*PgxVatRepository)(nil)

func registerArgs(m models.VatRegisterRow) []any {
	return []any{
		m.RegisterID, m.OrganizationID, m.PeriodYear, m.PeriodMonth, m.DocumentID, m.DocumentType,
		m.DocumentNumber, m.DocumentDate, m.TaxEventDate, m.ContraagentID,
		m.CounterpartyName, m.CounterpartyVat, m.CounterpartyEIK, m.CounterpartyCountry, m.CounterpartyCity,
		m.TaxableBase, m.VatRate, m.VatAmount, m.TotalAmount, m.VatOperationCode, m.ColumnCode, m.ViesIndicator,
		m.ReverseChargeSubcode, m.IsTriangularOperation, m.IsArt21Service, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func registerDest(m *models.VatRegisterRow) []any {
	return []any{
		&m.RegisterID, &m.OrganizationID, &m.PeriodYear, &m.PeriodMonth, &m.DocumentID, &m.DocumentType,
		&m.DocumentNumber, &m.DocumentDate, &m.TaxEventDate, &m.ContraagentID,
		&m.CounterpartyName, &m.CounterpartyVat, &m.CounterpartyEIK, &m.CounterpartyCountry, &m.CounterpartyCity,
		&m.TaxableBase, &m.VatRate, &m.VatAmount, &m.TotalAmount, &m.VatOperationCode, &m.ColumnCode, &m.ViesIndicator,
		&m.ReverseChargeSubcode, &m.IsTriangularOperation, &m.IsArt21Service, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
}

// SaveSalesRow returns apperrors.ErrDuplicate when the document is already registered.
func (r *PgxVatRepository) SaveSalesRow(ctx context.Context, row domain.VatSalesRegister) error {
	m := mapping.ToModelVatRegisterRow(row.VatRegisterRow, row.SalesOperation)
	query := `
		INSERT INTO vat_sales_register (` + registerColumns("recipient") + `, sales_operation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31);
	`
	args := append(registerArgs(m), m.Operation)
	if _, err := r.querier(ctx).Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sales document %s is already registered", apperrors.ErrDuplicate, m.DocumentID)
		}
		return fmt.Errorf("failed to save sales register row %s: %w", m.DocumentID, err)
	}
	return nil
}

// SavePurchaseRow returns apperrors.ErrDuplicate when the document is already registered.
func (r *PgxVatRepository) SavePurchaseRow(ctx context.Context, row domain.VatPurchaseRegister) error {
	m := mapping.ToModelVatRegisterRow(row.VatRegisterRow, row.PurchaseOperation)
	query := `
		INSERT INTO vat_purchase_register (` + registerColumns("supplier") + `, purchase_operation,
		            is_deductible, deductible_vat_amount, deductible_credit_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31,
		        $32, $33, $34);
	`
	args := append(registerArgs(m), m.Operation, row.IsDeductible, row.DeductibleVatAmount, string(row.DeductibleCreditType))
	if _, err := r.querier(ctx).Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: purchase document %s is already registered", apperrors.ErrDuplicate, m.DocumentID)
		}
		return fmt.Errorf("failed to save purchase register row %s: %w", m.DocumentID, err)
	}
	return nil
}

// ListSalesRows returns the rows of a period ordered by document date, then number.
func (r *PgxVatRepository) ListSalesRows(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatSalesRegister, error) {
	query := `SELECT ` + registerColumns("recipient") + `, sales_operation
		FROM vat_sales_register
		WHERE organization_id = $1 AND period_year = $2 AND period_month = $3
		ORDER BY document_date, document_number;`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID, period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales register %s: %w", period.Code(), err)
	}
	defer rows.Close()

	var out []domain.VatSalesRegister
	for rows.Next() {
		var m models.VatRegisterRow
		if err := rows.Scan(append(registerDest(&m), &m.Operation)...); err != nil {
			return nil, fmt.Errorf("failed to scan sales register row: %w", err)
		}
		base, operation := mapping.ToDomainVatRegisterRow(m)
		out = append(out, domain.VatSalesRegister{VatRegisterRow: base, SalesOperation: operation})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales register rows: %w", err)
	}
	return out, nil
}

// ListPurchaseRows returns the rows of a period ordered by document date, then number.
func (r *PgxVatRepository) ListPurchaseRows(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatPurchaseRegister, error) {
	query := `SELECT ` + registerColumns("supplier") + `, purchase_operation,
		       is_deductible, deductible_vat_amount, deductible_credit_type
		FROM vat_purchase_register
		WHERE organization_id = $1 AND period_year = $2 AND period_month = $3
		ORDER BY document_date, document_number;`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID, period.Year, period.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase register %s: %w", period.Code(), err)
	}
	defer rows.Close()

	var out []domain.VatPurchaseRegister
	for rows.Next() {
		var (
			m      models.VatRegisterRow
			extras models.VatPurchaseExtras
		)
		dest := append(registerDest(&m), &m.Operation, &extras.IsDeductible, &extras.DeductibleVatAmount, &extras.DeductibleCreditType)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan purchase register row: %w", err)
		}
		base, operation := mapping.ToDomainVatRegisterRow(m)
		out = append(out, domain.VatPurchaseRegister{
			VatRegisterRow:       base,
			PurchaseOperation:    operation,
			IsDeductible:         extras.IsDeductible,
			DeductibleVatAmount:  extras.DeductibleVatAmount,
			DeductibleCreditType: domain.DeductibleCreditType(extras.DeductibleCreditType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase register rows: %w", err)
	}
	return out, nil
}

// ListPendingDocuments returns draft sales and purchase documents whose tax
// event falls within the period. Drafts without a tax event date fall back
// to the document date.
func (r *PgxVatRepository) ListPendingDocuments(ctx context.Context, organizationID string, period domain.Period) ([]domain.PendingDocument, error) {
	query := `
		SELECT 'sale', document_id, COALESCE(document_number, ''), COALESCE(tax_event_date, document_date) AS event_date
		FROM sales_documents
		WHERE organization_id = $1 AND status = 'draft'
		  AND COALESCE(tax_event_date, document_date) BETWEEN $2 AND $3
		UNION ALL
		SELECT 'purchase', document_id, COALESCE(document_number, ''), COALESCE(tax_event_date, document_date)
		FROM purchase_documents
		WHERE organization_id = $1 AND status = 'draft'
		  AND COALESCE(tax_event_date, document_date) BETWEEN $2 AND $3
		ORDER BY 4, 2;
	`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID, period.Start(), period.End())
	if err != nil {
		return nil, fmt.Errorf("failed to list pending documents %s: %w", period.Code(), err)
	}
	defer rows.Close()

	var out []domain.PendingDocument
	for rows.Next() {
		var (
			p    domain.PendingDocument
			date time.Time
		)
		if err := rows.Scan(&p.DocumentKind, &p.DocumentID, &p.Number, &date); err != nil {
			return nil, fmt.Errorf("failed to scan pending document row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending document rows: %w", err)
	}
	return out, nil
}

func scanVatReturn(row pgx.Row) (*domain.VatReturn, error) {
	var (
		ret        domain.VatReturn
		submission sql.NullTime
		notes      sql.NullString
	)
	err := row.Scan(
		&ret.VatReturnID, &ret.OrganizationID, &ret.PeriodYear, &ret.PeriodMonth, &ret.Status,
		&ret.SalesCount, &ret.PurchasesCount, &ret.TotalSalesTaxable, &ret.TotalSalesVat, &ret.TotalPurchasesTaxable,
		&ret.TotalPurchasesVat, &ret.TotalDeductibleVat, &ret.VatPayable, &ret.VatRefundable, &submission, &ret.DueDate,
		&notes, &ret.CreatedAt, &ret.CreatedBy, &ret.LastUpdatedAt, &ret.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if submission.Valid {
		ret.SubmissionDate = &submission.Time
	}
	ret.Notes = notes.String
	return &ret, nil
}

func (r *PgxVatRepository) FindVatReturn(ctx context.Context, organizationID string, period domain.Period) (*domain.VatReturn, error) {
	query := `SELECT ` + vatReturnColumns + ` FROM vat_returns
		WHERE organization_id = $1 AND period_year = $2 AND period_month = $3;`
	ret, err := scanVatReturn(r.querier(ctx).QueryRow(ctx, query, organizationID, period.Year, period.Month))
	if err != nil {
		return nil, notFoundOr(err, "failed to find VAT return "+period.Code())
	}
	return ret, nil
}

// LockVatReturn reads the return FOR UPDATE.
func (r *PgxVatRepository) LockVatReturn(ctx context.Context, organizationID string, period domain.Period) (*domain.VatReturn, error) {
	query := `SELECT ` + vatReturnColumns + ` FROM vat_returns
		WHERE organization_id = $1 AND period_year = $2 AND period_month = $3
		FOR UPDATE;`
	ret, err := scanVatReturn(r.querier(ctx).QueryRow(ctx, query, organizationID, period.Year, period.Month))
	if err != nil {
		return nil, notFoundOr(err, "failed to lock VAT return "+period.Code())
	}
	return ret, nil
}

// UpsertVatReturn inserts or replaces the return of (organization, year, month).
func (r *PgxVatRepository) UpsertVatReturn(ctx context.Context, ret domain.VatReturn) error {
	query := `
		INSERT INTO vat_returns (` + vatReturnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (organization_id, period_year, period_month) DO UPDATE SET
			status = EXCLUDED.status,
			sales_count = EXCLUDED.sales_count,
			purchases_count = EXCLUDED.purchases_count,
			total_sales_taxable = EXCLUDED.total_sales_taxable,
			total_sales_vat = EXCLUDED.total_sales_vat,
			total_purchases_taxable = EXCLUDED.total_purchases_taxable,
			total_purchases_vat = EXCLUDED.total_purchases_vat,
			total_deductible_vat = EXCLUDED.total_deductible_vat,
			vat_payable = EXCLUDED.vat_payable,
			vat_refundable = EXCLUDED.vat_refundable,
			submission_date = EXCLUDED.submission_date,
			due_date = EXCLUDED.due_date,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	var submission sql.NullTime
	if ret.SubmissionDate != nil {
		submission = sql.NullTime{Time: *ret.SubmissionDate, Valid: true}
	}
	_, err := r.querier(ctx).Exec(ctx, query,
		ret.VatReturnID, ret.OrganizationID, ret.PeriodYear, ret.PeriodMonth, string(ret.Status),
		ret.SalesCount, ret.PurchasesCount, ret.TotalSalesTaxable, ret.TotalSalesVat, ret.TotalPurchasesTaxable,
		ret.TotalPurchasesVat, ret.TotalDeductibleVat, ret.VatPayable, ret.VatRefundable, submission, ret.DueDate,
		mapping.NullString(ret.Notes), ret.CreatedAt, ret.CreatedBy, ret.LastUpdatedAt, ret.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save VAT return %s: %w", ret.Period().Code(), err)
	}
	return nil
}

func (r *PgxVatRepository) UpdateVatReturnStatus(ctx context.Context, vatReturnID string, status domain.VatReturnStatus, submissionDate *time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE vat_returns
		SET status = $1, submission_date = $2, last_updated_at = $3, last_updated_by = $4
		WHERE vat_return_id = $5;
	`
	var submission sql.NullTime
	if submissionDate != nil {
		submission = sql.NullTime{Time: *submissionDate, Valid: true}
	}
	tag, err := r.querier(ctx).Exec(ctx, query, string(status), submission, updatedAt, updatedBy, vatReturnID)
	if err != nil {
		return fmt.Errorf("failed to update status of VAT return %s: %w", vatReturnID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
