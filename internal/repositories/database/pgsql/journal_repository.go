package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	"github.com/SscSPs/erp_accounting_core/internal/models"
	"github.com/SscSPs/erp_accounting_core/internal/utils/mapping"
	"github.com/SscSPs/erp_accounting_core/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const entryColumns = `entry_id, organization_id, entry_date, description, currency_code, exchange_rate,
	reference, status, journal_type, transaction_type, original_entry_id, reversing_entry_id, amount,
	created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, line_no, account_id, debit, credit, description, contraagent_id,
	vat_rate, vat_amount, tax_base, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row, m *models.JournalEntry) error {
	return row.Scan(
		&m.EntryID,
		&m.OrganizationID,
		&m.EntryDate,
		&m.Description,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.Reference,
		&m.Status,
		&m.JournalType,
		&m.TransactionType,
		&m.OriginalEntryID,
		&m.ReversingEntryID,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

func scanLine(row pgx.Row, m *models.EntryLine) error {
	return row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.LineNo,
		&m.AccountID,
		&m.Debit,
		&m.Credit,
		&m.Description,
		&m.ContraagentID,
		&m.VatRate,
		&m.VatAmount,
		&m.TaxBase,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

// SaveEntry inserts the entry and its lines and applies the balance changes.
// Accounts are locked in ID order so concurrent postings cannot deadlock.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.EntryLine, balanceChanges map[string]decimal.Decimal) error {
	return r.runInTx(ctx, func(ctx context.Context) error {
		q := r.querier(ctx)

		accountIDs := make([]string, 0, len(balanceChanges))
		for id := range balanceChanges {
			accountIDs = append(accountIDs, id)
		}
		if err := r.lockAccounts(ctx, entry.OrganizationID, accountIDs); err != nil {
			return err
		}

		m := mapping.ToModelJournalEntry(entry)
		entryQuery := `
			INSERT INTO journal_entries (` + entryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
		`
		_, err := q.Exec(ctx, entryQuery,
			m.EntryID,
			m.OrganizationID,
			m.EntryDate,
			m.Description,
			m.CurrencyCode,
			m.ExchangeRate,
			m.Reference,
			m.Status,
			m.JournalType,
			m.TransactionType,
			m.OriginalEntryID,
			m.ReversingEntryID,
			m.Amount,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrDuplicate, m.EntryID)
			}
			return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
		}

		batch := &pgx.Batch{}
		lineQuery := `
			INSERT INTO entry_lines (` + lineColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
		`
		for _, l := range lines {
			ml := mapping.ToModelEntryLine(l)
			batch.Queue(lineQuery,
				ml.LineID,
				ml.EntryID,
				ml.LineNo,
				ml.AccountID,
				ml.Debit,
				ml.Credit,
				ml.Description,
				ml.ContraagentID,
				ml.VatRate,
				ml.VatAmount,
				ml.TaxBase,
				ml.CreatedAt,
				ml.CreatedBy,
				ml.LastUpdatedAt,
				ml.LastUpdatedBy,
			)
		}
		balanceQuery := `
			UPDATE accounts SET balance = balance + $1, last_updated_at = $2, last_updated_by = $3
			WHERE account_id = $4;
		`
		for _, id := range accountIDs {
			batch.Queue(balanceQuery, balanceChanges[id], entry.CreatedAt, entry.CreatedBy, id)
		}

		if err := q.SendBatch(ctx, batch).Close(); err != nil {
			return apperrors.NewAppError(500, "failed to save lines of journal entry "+m.EntryID, err)
		}
		return nil
	})
}

func (r *PgxJournalRepository) lockAccounts(ctx context.Context, organizationID string, accountIDs []string) error {
	if len(accountIDs) == 0 {
		return nil
	}
	query := `
		SELECT account_id FROM accounts
		WHERE organization_id = $1 AND account_id = ANY($2)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID, accountIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}
	if len(ids) != len(accountIDs) {
		return fmt.Errorf("%w: %d of %d accounts", apperrors.ErrNotFound, len(accountIDs)-len(ids), len(accountIDs))
	}
	return nil
}

// MarkEntryReversed flips the status of an entry and links it to its reversal.
func (r *PgxJournalRepository) MarkEntryReversed(ctx context.Context, entryID, reversingEntryID, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $1, reversing_entry_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $5 AND status = $6;
	`
	tag, err := r.querier(ctx).Exec(ctx, query, domain.Reversed, reversingEntryID, updatedAt, updatedBy, entryID, domain.Posted)
	if err != nil {
		return fmt.Errorf("failed to mark entry %s reversed: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s is no longer posted", apperrors.ErrConflict, entryID)
	}
	return nil
}

// FindEntryByID retrieves an entry of the organization.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE organization_id = $1 AND entry_id = $2;`

	var m models.JournalEntry
	if err := scanEntry(r.querier(ctx).QueryRow(ctx, query, organizationID, entryID), &m); err != nil {
		return nil, notFoundOr(err, "failed to find journal entry "+entryID)
	}
	e := mapping.ToDomainJournalEntry(m)
	return &e, nil
}

// FindEntryByReference returns the newest posted entry carrying the reference.
func (r *PgxJournalRepository) FindEntryByReference(ctx context.Context, organizationID, reference string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries
		WHERE organization_id = $1 AND reference = $2 AND status = $3
		ORDER BY created_at DESC
		LIMIT 1;`

	var m models.JournalEntry
	if err := scanEntry(r.querier(ctx).QueryRow(ctx, query, organizationID, reference, domain.Posted), &m); err != nil {
		return nil, notFoundOr(err, "failed to find journal entry by reference "+reference)
	}
	e := mapping.ToDomainJournalEntry(m)
	return &e, nil
}

// ListEntries retrieves a page of entries, newest first, and the token of the next page.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, organizationID string, filter domain.JournalEntryFilter) ([]domain.JournalEntry, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether there is a next page.
	fetchLimit := limit + 1

	conditions := []string{"organization_id = $1"}
	args := []any{organizationID}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.From != nil {
		conditions = append(conditions, "entry_date >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, "entry_date <= "+arg(*filter.To))
	}
	if filter.Reference != "" {
		conditions = append(conditions, "reference = "+arg(filter.Reference))
	}
	if filter.AccountID != "" {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM entry_lines l WHERE l.entry_id = journal_entries.entry_id AND l.account_id = "+arg(filter.AccountID)+")")
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		conditions = append(conditions, fmt.Sprintf("(entry_date, created_at, entry_id) < (%s, %s, %s)",
			arg(cursor.EntryDate), arg(cursor.CreatedAt), arg(cursor.EntryID)))
	}

	query := `SELECT ` + entryColumns + ` FROM journal_entries
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY entry_date DESC, created_at DESC, entry_id DESC
		LIMIT ` + arg(fetchLimit) + `;`

	entries, err := r.queryEntries(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, EntryID: last.EntryID})
		nextToken = &token
		entries = entries[:limit]
	}
	return entries, nextToken, nil
}

// ListEntriesInPeriod returns every entry dated within [from, to], oldest first.
// Reversed entries are included; their reversals offset them.
func (r *PgxJournalRepository) ListEntriesInPeriod(ctx context.Context, organizationID string, from, to time.Time) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries
		WHERE organization_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date, created_at, entry_id;`
	return r.queryEntries(ctx, query, organizationID, from, to)
}

func (r *PgxJournalRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := r.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	var ms []models.JournalEntry
	for rows.Next() {
		var m models.JournalEntry
		if err := scanEntry(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return mapping.ToDomainJournalEntrySlice(ms), nil
}

// FindLinesByEntryID retrieves the lines of one entry ordered by line number.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error) {
	byEntry, err := r.FindLinesByEntryIDs(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	return byEntry[entryID], nil
}

// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
func (r *PgxJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.EntryLine, error) {
	result := make(map[string][]domain.EntryLine, len(entryIDs))
	if len(entryIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + lineColumns + ` FROM entry_lines WHERE entry_id = ANY($1) ORDER BY entry_id, line_no;`
	rows, err := r.querier(ctx).Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.EntryLine
		if err := scanLine(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan entry line row: %w", err)
		}
		result[m.EntryID] = append(result[m.EntryID], mapping.ToDomainEntryLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry line rows: %w", err)
	}
	return result, nil
}
