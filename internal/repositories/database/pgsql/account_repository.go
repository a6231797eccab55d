package pgsql

import (
	"context"
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

const accountColumns = `account_id, organization_id, code, name, account_type, standard_code,
	opening_balance, balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row, m *models.Account, extra ...any) error {
	dest := []any{
		&m.AccountID,
		&m.OrganizationID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.StandardCode,
		&m.OpeningBalance,
		&m.Balance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	}
	return row.Scan(append(dest, extra...)...)
}

// FindAccountByID retrieves an account of the organization.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE organization_id = $1 AND account_id = $2;`

	var m models.Account
	if err := scanAccount(r.querier(ctx).QueryRow(ctx, query, organizationID, accountID), &m); err != nil {
		return nil, notFoundOr(err, "failed to find account "+accountID)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountByCode retrieves an active account by its chart code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE organization_id = $1 AND code = $2 AND is_active = TRUE;`

	var m models.Account
	if err := scanAccount(r.querier(ctx).QueryRow(ctx, query, organizationID, code), &m); err != nil {
		return nil, notFoundOr(err, "failed to find account by code "+code)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts of the organization by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	accounts := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return accounts, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE organization_id = $1 AND account_id = ANY($2);`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Account
		if err := scanAccount(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// ListAccounts returns the whole chart ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE organization_id = $1 ORDER BY code;`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	var ms []models.Account
	for rows.Next() {
		var m models.Account
		if err := scanAccount(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// ListAccountBalances aggregates line turnovers before and within [from, to].
// Entries dated after the range are left out of the join.
func (r *PgxAccountRepository) ListAccountBalances(ctx context.Context, organizationID string, from, to time.Time) ([]domain.AccountPeriodBalance, error) {
	query := `
		SELECT a.account_id, a.organization_id, a.code, a.name, a.account_type, a.standard_code,
		       a.opening_balance, a.balance, a.is_active, a.created_at, a.created_by, a.last_updated_at, a.last_updated_by,
		       COALESCE(SUM(l.debit) FILTER (WHERE e.entry_date < $2), 0),
		       COALESCE(SUM(l.credit) FILTER (WHERE e.entry_date < $2), 0),
		       COALESCE(SUM(l.debit) FILTER (WHERE e.entry_date >= $2), 0),
		       COALESCE(SUM(l.credit) FILTER (WHERE e.entry_date >= $2), 0)
		FROM accounts a
		LEFT JOIN entry_lines l ON l.account_id = a.account_id
		LEFT JOIN journal_entries e ON e.entry_id = l.entry_id AND e.entry_date <= $3
		WHERE a.organization_id = $1
		GROUP BY a.account_id
		ORDER BY a.code;
	`
	rows, err := r.querier(ctx).Query(ctx, query, organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query account balances: %w", err)
	}
	defer rows.Close()

	var balances []domain.AccountPeriodBalance
	for rows.Next() {
		var m models.Account
		var b domain.AccountPeriodBalance
		if err := scanAccount(rows, &m, &b.OpeningDebit, &b.OpeningCredit, &b.PeriodDebit, &b.PeriodCredit); err != nil {
			return nil, fmt.Errorf("failed to scan account balance row: %w", err)
		}
		b.Account = mapping.ToDomainAccount(m)
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account balance rows", err)
	}
	return balances, nil
}
