package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	"github.com/SscSPs/erp_accounting_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const paymentColumns = `payment_id, organization_id, amount, payment_date, subject_type, method,
	contraagent_id, reference, status, journal_entry_id`

const bankTransactionColumns = `bank_transaction_id, organization_id, transaction_id, amount, booking_date, is_credit,
	counterparty_name, description, counter_account_id, contraagent_id, journal_entry_id`

const assetColumns = `asset_id, organization_id, code, name, account_code, acquisition_date, startup_date,
	acquisition_cost, acquisition_cost_begin_year, book_value_begin_year, book_value,
	useful_life_months, depreciation_method, depreciation_for_period, accumulated_depreciation,
	tax_category, supplier_name, supplier_id, supplier_city, supplier_country`

const assetTransactionColumns = `t.asset_transaction_id, t.organization_id, t.asset_id, a.code, t.transaction_type,
	t.transaction_date, t.amount, t.description, t.supplier_id, t.journal_entry_id`

// PgxPostingSourceRepository reads the documents the journal engine posts from.
type PgxPostingSourceRepository struct {
	BaseRepository
}

func newPgxPostingSourceRepository(pool *pgxpool.Pool) portsrepo.PostingSourceRepositoryFacade {
	return &PgxPostingSourceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PostingSourceRepositoryFacade = (*PgxPostingSourceRepository)(nil)

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var (
		p                                 domain.Payment
		contraagentID, reference, entryID sql.NullString
	)
	err := row.Scan(
		&p.PaymentID, &p.OrganizationID, &p.Amount, &p.PaymentDate, &p.SubjectType, &p.Method,
		&contraagentID, &reference, &p.Status, &entryID,
	)
	p.ContraagentID = mapping.StringPtr(contraagentID)
	p.Reference = reference.String
	p.JournalEntryID = mapping.StringPtr(entryID)
	return p, err
}

func (r *PgxPostingSourceRepository) FindPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE organization_id = $1 AND payment_id = $2;`
	p, err := scanPayment(r.querier(ctx).QueryRow(ctx, query, organizationID, paymentID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find payment "+paymentID)
	}
	return &p, nil
}

func (r *PgxPostingSourceRepository) ListPaymentsInPeriod(ctx context.Context, organizationID string, from, to time.Time) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE organization_id = $1 AND payment_date BETWEEN $2 AND $3
		ORDER BY payment_date, payment_id;`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return out, nil
}

// LinkPaymentEntry marks the payment posted by entryID.
func (r *PgxPostingSourceRepository) LinkPaymentEntry(ctx context.Context, organizationID, paymentID, entryID string) error {
	query := `UPDATE payments SET journal_entry_id = $1, status = 'posted' WHERE organization_id = $2 AND payment_id = $3;`
	return r.link(ctx, query, entryID, organizationID, paymentID)
}

func (r *PgxPostingSourceRepository) FindBankTransactionByID(ctx context.Context, organizationID, bankTransactionID string) (*domain.BankTransaction, error) {
	query := `SELECT ` + bankTransactionColumns + ` FROM bank_transactions
		WHERE organization_id = $1 AND bank_transaction_id = $2;`

	var (
		t                                        domain.BankTransaction
		transactionID, counterparty, description sql.NullString
		counterAccountID, contraagentID, entryID sql.NullString
	)
	err := r.querier(ctx).QueryRow(ctx, query, organizationID, bankTransactionID).Scan(
		&t.BankTransactionID, &t.OrganizationID, &transactionID, &t.Amount, &t.BookingDate, &t.IsCredit,
		&counterparty, &description, &counterAccountID, &contraagentID, &entryID,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find bank transaction "+bankTransactionID)
	}
	t.TransactionID = transactionID.String
	t.CounterpartyName = counterparty.String
	t.Description = description.String
	t.CounterAccountID = mapping.StringPtr(counterAccountID)
	t.ContraagentID = mapping.StringPtr(contraagentID)
	t.JournalEntryID = mapping.StringPtr(entryID)
	return &t, nil
}

func (r *PgxPostingSourceRepository) LinkBankTransactionEntry(ctx context.Context, organizationID, bankTransactionID, entryID string) error {
	query := `UPDATE bank_transactions SET journal_entry_id = $1 WHERE organization_id = $2 AND bank_transaction_id = $3;`
	return r.link(ctx, query, entryID, organizationID, bankTransactionID)
}

// ListAssets returns the fixed asset register ordered by code.
func (r *PgxPostingSourceRepository) ListAssets(ctx context.Context, organizationID string) ([]domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE organization_id = $1 ORDER BY code;`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var out []domain.FixedAsset
	for rows.Next() {
		var (
			a                                                  domain.FixedAsset
			accountCode, method, category                      sql.NullString
			supplierName, supplierID, supplierCity, supplierCC sql.NullString
			startup                                            sql.NullTime
			costBeginYear, bookBeginYear, bookValue            decimal.NullDecimal
		)
		err := rows.Scan(
			&a.AssetID, &a.OrganizationID, &a.Code, &a.Name, &accountCode, &a.AcquisitionDate, &startup,
			&a.AcquisitionCost, &costBeginYear, &bookBeginYear, &bookValue,
			&a.UsefulLifeMonths, &method, &a.DepreciationForPeriod, &a.AccumulatedDepreciation,
			&category, &supplierName, &supplierID, &supplierCity, &supplierCC,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		a.AccountCode = accountCode.String
		if startup.Valid {
			a.StartupDate = &startup.Time
		}
		a.AcquisitionCostBeginYear = mapping.DecimalPtr(costBeginYear)
		a.BookValueBeginYear = mapping.DecimalPtr(bookBeginYear)
		a.BookValue = mapping.DecimalPtr(bookValue)
		a.DepreciationMethod = method.String
		a.TaxCategory = category.String
		a.SupplierName = supplierName.String
		a.SupplierID = supplierID.String
		a.SupplierCity = supplierCity.String
		a.SupplierCountry = supplierCC.String
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}
	return out, nil
}

func scanAssetTransaction(row pgx.Row) (domain.AssetTransaction, error) {
	var (
		t                                domain.AssetTransaction
		description, supplierID, entryID sql.NullString
	)
	err := row.Scan(
		&t.AssetTransactionID, &t.OrganizationID, &t.AssetID, &t.AssetCode, &t.TransactionType,
		&t.TransactionDate, &t.Amount, &description, &supplierID, &entryID,
	)
	t.Description = description.String
	t.SupplierID = supplierID.String
	t.JournalEntryID = mapping.StringPtr(entryID)
	return t, err
}

func (r *PgxPostingSourceRepository) FindAssetTransactionByID(ctx context.Context, organizationID, assetTransactionID string) (*domain.AssetTransaction, error) {
	query := `SELECT ` + assetTransactionColumns + `
		FROM asset_transactions t JOIN assets a ON a.asset_id = t.asset_id
		WHERE t.organization_id = $1 AND t.asset_transaction_id = $2;`
	t, err := scanAssetTransaction(r.querier(ctx).QueryRow(ctx, query, organizationID, assetTransactionID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find asset transaction "+assetTransactionID)
	}
	return &t, nil
}

func (r *PgxPostingSourceRepository) ListAssetTransactionsInPeriod(ctx context.Context, organizationID string, from, to time.Time) ([]domain.AssetTransaction, error) {
	query := `SELECT ` + assetTransactionColumns + `
		FROM asset_transactions t JOIN assets a ON a.asset_id = t.asset_id
		WHERE t.organization_id = $1 AND t.transaction_date BETWEEN $2 AND $3
		ORDER BY t.transaction_date, t.asset_transaction_id;`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset transactions: %w", err)
	}
	defer rows.Close()

	var out []domain.AssetTransaction
	for rows.Next() {
		t, err := scanAssetTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset transaction row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset transaction rows: %w", err)
	}
	return out, nil
}

func (r *PgxPostingSourceRepository) LinkAssetTransactionEntry(ctx context.Context, organizationID, assetTransactionID, entryID string) error {
	query := `UPDATE asset_transactions SET journal_entry_id = $1 WHERE organization_id = $2 AND asset_transaction_id = $3;`
	return r.link(ctx, query, entryID, organizationID, assetTransactionID)
}

func (r *PgxPostingSourceRepository) link(ctx context.Context, query, entryID, organizationID, sourceID string) error {
	tag, err := r.querier(ctx).Exec(ctx, query, entryID, organizationID, sourceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to link "+sourceID+" to entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
