package repositories

import (
	"context"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// SequenceRepository stores per-organization document counters.
type SequenceRepository interface {
	// LockNextNumber creates the counter on first use (next number 1) and
	// returns its value with the row locked FOR UPDATE. Must run inside RunInTx.
	LockNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (int64, error)

	// PeekNextNumber returns the next number without locking; 1 if the counter does not exist.
	PeekNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (int64, error)

	// SetNextNumber overwrites the counter, creating it if needed.
	SetNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType, next int64) error
}
