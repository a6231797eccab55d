package services

import (
	"context"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// NumberingSvc issues gapless document numbers and document UIDs.
type NumberingSvc interface {
	GetNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (string, error)
	PeekNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (string, error)
	ResetSequence(ctx context.Context, organizationID string, docType domain.DocumentType, newNumber int64) error

	ValidateDocumentNumber(docType domain.DocumentType, number string) bool
	ExtractSequenceNumber(docType domain.DocumentType, number string) (int64, error)

	// GenerateDocumentUID builds a UID; number may be empty.
	GenerateDocumentUID(docType, organizationID, number string) string
	ParseDocumentUID(uid string) (*domain.DocumentUIDParts, error)
}
