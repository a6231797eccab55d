package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/utils"
)

const (
	uidTimestampLayout = "20060102150405"
	uidOrgPrefixLen    = 8
	uidRandomLen       = 8
)

type numberingService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	sequenceRepo portsrepo.SequenceRepository
}

// NewNumberingService creates a new NumberingSvc.
func NewNumberingService(txManager portsrepo.TransactionManager, sequenceRepo portsrepo.SequenceRepository, opts ...Option) portssvc.NumberingSvc {
	return &numberingService{
		BaseService:  newBaseService(opts...),
		txManager:    txManager,
		sequenceRepo: sequenceRepo,
	}
}

var _ portssvc.NumberingSvc = (*numberingService)(nil)

// FormatDocumentNumber renders prefix plus the zero-padded sequence.
func FormatDocumentNumber(docType domain.DocumentType, n int64) string {
	return fmt.Sprintf("%s%0*d", docType.Prefix(), domain.DocumentNumberDigits, n)
}

func validateDocType(docType domain.DocumentType) error {
	if strings.TrimSpace(string(docType)) == "" {
		return fmt.Errorf("%w: document type is required", apperrors.ErrValidation)
	}
	return nil
}

// GetNextNumber issues the next number of the sequence. The counter row stays
// locked until the surrounding transaction commits, so numbers are gapless.
func (s *numberingService) GetNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (string, error) {
	if err := validateDocType(docType); err != nil {
		return "", err
	}

	var issued int64
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.sequenceRepo.LockNextNumber(ctx, organizationID, docType)
		if err != nil {
			return err
		}
		if err := s.sequenceRepo.SetNextNumber(ctx, organizationID, docType, n+1); err != nil {
			return err
		}
		issued = n
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to issue document number", slog.String("document_type", string(docType)))
		return "", err
	}

	number := FormatDocumentNumber(docType, issued)
	s.LogDebug(ctx, "Document number issued", slog.String("document_type", string(docType)), slog.String("number", number))
	return number, nil
}

// PeekNextNumber previews the next number without consuming it.
func (s *numberingService) PeekNextNumber(ctx context.Context, organizationID string, docType domain.DocumentType) (string, error) {
	if err := validateDocType(docType); err != nil {
		return "", err
	}
	n, err := s.sequenceRepo.PeekNextNumber(ctx, organizationID, docType)
	if err != nil {
		return "", err
	}
	return FormatDocumentNumber(docType, n), nil
}

// ResetSequence overrides the counter. Already issued numbers are not checked.
func (s *numberingService) ResetSequence(ctx context.Context, organizationID string, docType domain.DocumentType, newNumber int64) error {
	if err := validateDocType(docType); err != nil {
		return err
	}
	if newNumber < 1 {
		return fmt.Errorf("%w: next number must be at least 1", apperrors.ErrValidation)
	}
	if err := s.sequenceRepo.SetNextNumber(ctx, organizationID, docType, newNumber); err != nil {
		return err
	}
	s.LogInfo(ctx, "Document sequence reset", slog.String("document_type", string(docType)), slog.Int64("next_number", newNumber))
	return nil
}

func (s *numberingService) ValidateDocumentNumber(docType domain.DocumentType, number string) bool {
	_, err := s.ExtractSequenceNumber(docType, number)
	return err == nil
}

func (s *numberingService) ExtractSequenceNumber(docType domain.DocumentType, number string) (int64, error) {
	digits, ok := strings.CutPrefix(number, docType.Prefix())
	if !ok || len(digits) != domain.DocumentNumberDigits {
		return 0, fmt.Errorf("%w: %q is not a %s number", apperrors.ErrValidation, number, docType)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a %s number", apperrors.ErrValidation, number, docType)
		}
	}
	return strconv.ParseInt(digits, 10, 64)
}

// GenerateDocumentUID builds {type}-{org[:8]}-{number}-{timestamp}, or
// {type}-{org[:8]}-{timestamp}-{random} when the document has no number yet.
func (s *numberingService) GenerateDocumentUID(docType, organizationID, number string) string {
	orgPrefix := organizationID
	if len(orgPrefix) > uidOrgPrefixLen {
		orgPrefix = orgPrefix[:uidOrgPrefixLen]
	}
	ts := s.Now().Format(uidTimestampLayout)

	if number != "" {
		return strings.Join([]string{docType, orgPrefix, number, ts}, "-")
	}

	suffix, err := utils.RandomHexSuffix(uidRandomLen)
	if err != nil {
		// crypto/rand failing is not recoverable here; fall back to the clock.
		suffix = fmt.Sprintf("%08X", s.Now().UnixNano()&0xFFFFFFFF)
	}
	return strings.Join([]string{docType, orgPrefix, ts, suffix}, "-")
}

// ParseDocumentUID splits a UID produced by GenerateDocumentUID. Parts that do
// not look like a timestamp are kept as text.
func (s *numberingService) ParseDocumentUID(uid string) (*domain.DocumentUIDParts, error) {
	parts := strings.Split(uid, "-")
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: %q is not a document uid", apperrors.ErrValidation, uid)
	}

	out := &domain.DocumentUIDParts{DocumentType: parts[0], OrgPrefix: parts[1]}
	rest := parts[2:]

	if ts, ok := parseUIDTimestamp(rest[0]); ok {
		out.Timestamp = &ts
		out.Random = strings.Join(rest[1:], "-")
		return out, nil
	}

	out.Number = rest[0]
	if len(rest) > 1 {
		if ts, ok := parseUIDTimestamp(rest[1]); ok {
			out.Timestamp = &ts
		}
		if len(rest) > 2 {
			out.Random = strings.Join(rest[2:], "-")
		}
	}
	return out, nil
}

func parseUIDTimestamp(s string) (time.Time, bool) {
	if len(s) != len(uidTimestampLayout) {
		return time.Time{}, false
	}
	ts, err := time.Parse(uidTimestampLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
