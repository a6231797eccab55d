package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// LockNextNumber creates the counter at 1 on first use and locks the row.
// Two callers creating the same counter both land on the single row.
func (r *PgxSequenceRepository) LockNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (int64, error) {
	q := r.querier(ctx)
	insert := `
		INSERT INTO document_sequences (organization_id, document_type, next_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (organization_id, document_type) DO NOTHING;
	`
	if _, err := q.Exec(ctx, insert, organizationID, string(docType)); err != nil {
		return 0, fmt.Errorf("failed to create sequence %s: %w", docType, err)
	}

	query := `
		SELECT next_number FROM document_sequences
		WHERE organization_id = $1 AND document_type = $2
		FOR UPDATE;
	`
	var next int64
	if err := q.QueryRow(ctx, query, organizationID, string(docType)).Scan(&next); err != nil {
		return 0, apperrors.NewAppError(500, "failed to lock sequence "+string(docType), err)
	}
	return next, nil
}

// PeekNextNumber returns the next number without locking; 1 if the counter does not exist.
func (r *PgxSequenceRepository) PeekNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (int64, error) {
	query := `SELECT next_number FROM document_sequences WHERE organization_id = $1 AND document_type = $2;`
	var next int64
	err := r.querier(ctx).QueryRow(ctx, query, organizationID, string(docType)).Scan(&next)
	if errors.Is(err, pgx.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read sequence %s: %w", docType, err)
	}
	return next, nil
}

// SetNextNumber overwrites the counter, creating it if needed.
func (r *PgxSequenceRepository) SetNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType, next int64) error {
	query := `
		INSERT INTO document_sequences (organization_id, document_type, next_number, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (organization_id, document_type)
		DO UPDATE SET next_number = EXCLUDED.next_number, updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.querier(ctx).Exec(ctx, query, organizationID, string(docType), next); err != nil {
		return fmt.Errorf("failed to set sequence %s: %w", docType, err)
	}
	return nil
}
