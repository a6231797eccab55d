package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/utils/accounting"
)

const (
	documentKindSale     = "sale"
	documentKindPurchase = "purchase"

	// vatReturnDueDay is the day of the following month a return is due.
	vatReturnDueDay = 14
)

// vatService keeps the VAT journals and computes monthly returns.
type vatService struct {
	BaseService
	txManager portsrepo.TransactionManager
	vatRepo   portsrepo.VatRepositoryFacade
}

// NewVatService creates a new VatSvcFacade.
func NewVatService(txManager portsrepo.TransactionManager, vatRepo portsrepo.VatRepositoryFacade, opts ...Option) portssvc.VatSvcFacade {
	return &vatService{
		BaseService: newBaseService(opts...),
		txManager:   txManager,
		vatRepo:     vatRepo,
	}
}

var _ portssvc.VatSvcFacade = (*vatService)(nil)

func validatePeriod(p domain.Period) error {
	if p.Year < 2000 || p.Year > 9999 || p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: invalid period %d-%d", apperrors.ErrValidation, p.Year, p.Month)
	}
	return nil
}

// VatReturnDueDate is the 14th of the month after the period.
func VatReturnDueDate(p domain.Period) time.Time {
	return p.Start().AddDate(0, 1, vatReturnDueDay-1)
}

func (s *vatService) newRegisterRow(organizationID, actorID, documentID, typeCode, number string, documentDate time.Time, taxEventDate *time.Time,
	cp domain.Counterparty, base, rate decimal.Decimal, notes string) (domain.VatRegisterRow, error) {
	if documentID == "" {
		return domain.VatRegisterRow{}, fmt.Errorf("%w: document id is required", apperrors.ErrValidation)
	}
	if documentDate.IsZero() {
		return domain.VatRegisterRow{}, fmt.Errorf("%w: document date is required", apperrors.ErrValidation)
	}
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return domain.VatRegisterRow{}, fmt.Errorf("%w: vat rate must be between 0 and 100", apperrors.ErrValidation)
	}
	if base.IsNegative() && !isCreditNote(typeCode) {
		return domain.VatRegisterRow{}, fmt.Errorf("%w: only credit notes may carry a negative base", apperrors.ErrValidation)
	}

	eventDate := documentDate
	if taxEventDate != nil && !taxEventDate.IsZero() {
		eventDate = *taxEventDate
	}
	period := domain.PeriodOf(eventDate)
	breakdown := ComputeVat(base, rate)
	cp.Country = strings.ToUpper(strings.TrimSpace(cp.Country))
	now := s.Now()

	return domain.VatRegisterRow{
		RegisterID:     uuid.NewString(),
		OrganizationID: organizationID,
		PeriodYear:     period.Year,
		PeriodMonth:    period.Month,
		DocumentID:     documentID,
		DocumentType:   typeCode,
		DocumentNumber: number,
		DocumentDate:   documentDate,
		TaxEventDate:   eventDate,
		Counterparty:   cp,
		TaxableBase:    breakdown.TaxableBase,
		VatRate:        rate,
		VatAmount:      breakdown.VatAmount,
		TotalAmount:    breakdown.Total,
		Notes:          notes,
		AuditFields:    domain.NewAuditFields(actorID, now),
	}, nil
}

// saveInOpenPeriod runs save with the period's return locked. A return that
// has left draft closes the journals of its period.
func (s *vatService) saveInOpenPeriod(ctx context.Context, organizationID string, period domain.Period, save func(ctx context.Context) error) error {
	return s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		ret, err := s.vatRepo.LockVatReturn(ctx, organizationID, period)
		switch {
		case err == nil:
			if ret.Status != domain.VatReturnDraft {
				return fmt.Errorf("%w: VAT return for %s is already %s", apperrors.ErrConflict, period.Code(), ret.Status)
			}
		case !errors.Is(err, apperrors.ErrNotFound):
			return err
		}
		return save(ctx)
	})
}

// RecordSale books a finalized outgoing document into the sales journal.
func (s *vatService) RecordSale(ctx context.Context, organizationID, actorID string, doc domain.SalesDocument) (*domain.VatSalesRegister, error) {
	if doc.Status != domain.DocumentFinalized {
		return nil, &apperrors.NotPostedError{DocumentKind: documentKindSale, DocumentID: doc.DocumentID, Number: doc.Number}
	}
	typeCode, err := resolveDocumentTypeCode(doc.TypeCode, doc.Kind)
	if err != nil {
		return nil, err
	}

	base, err := s.newRegisterRow(organizationID, actorID, doc.DocumentID, typeCode, doc.Number, doc.DocumentDate, doc.TaxEventDate,
		doc.Counterparty, doc.TaxableBase, doc.VatRate, doc.Notes)
	if err != nil {
		return nil, err
	}
	base.VatClassification = ClassifySale(doc)

	operation := doc.OperationLabel
	if operation == "" {
		if entry, ok := domain.VatOperationCodes.Lookup(base.VatOperationCode); ok {
			operation = entry.NameBG
		}
	}
	row := domain.VatSalesRegister{VatRegisterRow: base, SalesOperation: operation}

	err = s.saveInOpenPeriod(ctx, organizationID, row.Period(), func(ctx context.Context) error {
		return s.vatRepo.SaveSalesRow(ctx, row)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to save sales register row", slog.String("document_id", doc.DocumentID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Sale registered",
		slog.String("document_id", doc.DocumentID),
		slog.String("column", row.ColumnCode),
		slog.String("operation", row.VatOperationCode))
	return &row, nil
}

// RecordPurchase books a finalized incoming document into the purchase journal.
func (s *vatService) RecordPurchase(ctx context.Context, organizationID, actorID string, doc domain.PurchaseDocument) (*domain.VatPurchaseRegister, error) {
	if doc.Status != domain.DocumentFinalized {
		return nil, &apperrors.NotPostedError{DocumentKind: documentKindPurchase, DocumentID: doc.DocumentID, Number: doc.Number}
	}
	typeCode, err := resolveDocumentTypeCode(doc.TypeCode, doc.Kind)
	if err != nil {
		return nil, err
	}

	creditType := doc.CreditType
	if creditType == "" {
		creditType = domain.CreditFull
	}
	if !creditType.Valid() {
		return nil, fmt.Errorf("%w: unknown deductible credit type %q", apperrors.ErrValidation, creditType)
	}

	base, err := s.newRegisterRow(organizationID, actorID, doc.DocumentID, typeCode, doc.Number, doc.DocumentDate, doc.TaxEventDate,
		doc.Counterparty, doc.TaxableBase, doc.VatRate, doc.Notes)
	if err != nil {
		return nil, err
	}
	deductible, err := DeductibleVat(base.VatAmount, creditType, doc.DeductibleFraction)
	if err != nil {
		return nil, err
	}
	base.VatClassification = ClassifyPurchase(doc, creditType)

	operation := doc.OperationLabel
	if operation == "" {
		if entry, ok := domain.VatOperationCodes.Lookup(base.VatOperationCode); ok {
			operation = entry.NameBG
		}
	}
	row := domain.VatPurchaseRegister{
		VatRegisterRow:       base,
		PurchaseOperation:    operation,
		IsDeductible:         creditType == domain.CreditFull || creditType == domain.CreditPartial,
		DeductibleVatAmount:  deductible,
		DeductibleCreditType: creditType,
	}

	err = s.saveInOpenPeriod(ctx, organizationID, row.Period(), func(ctx context.Context) error {
		return s.vatRepo.SavePurchaseRow(ctx, row)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to save purchase register row", slog.String("document_id", doc.DocumentID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Purchase registered",
		slog.String("document_id", doc.DocumentID),
		slog.String("column", row.ColumnCode),
		slog.String("deductible", accounting.Format(deductible)))
	return &row, nil
}

func (s *vatService) ListSalesRegister(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatSalesRegister, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	return s.vatRepo.ListSalesRows(ctx, organizationID, period)
}

func (s *vatService) ListPurchaseRegister(ctx context.Context, organizationID string, period domain.Period) ([]domain.VatPurchaseRegister, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	return s.vatRepo.ListPurchaseRows(ctx, organizationID, period)
}

// ComputeVatReturn sums the journals of the period into the draft return.
// Drafts left in the period block the computation.
func (s *vatService) ComputeVatReturn(ctx context.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	pending, err := s.vatRepo.ListPendingDocuments(ctx, organizationID, period)
	if err != nil {
		return nil, err
	}
	if len(pending) > 0 {
		notReady := &apperrors.PeriodNotReadyError{Year: period.Year, Month: period.Month}
		for _, p := range pending {
			notReady.Pending = append(notReady.Pending, apperrors.NotPostedError{DocumentKind: p.DocumentKind, DocumentID: p.DocumentID, Number: p.Number})
		}
		s.LogInfo(ctx, "VAT return blocked by unposted documents", slog.String("period", period.Code()), slog.Int("pending", len(pending)))
		return nil, notReady
	}

	var result *domain.VatReturn
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		now := s.Now()
		ret := domain.VatReturn{
			VatReturnID:    uuid.NewString(),
			OrganizationID: organizationID,
			PeriodYear:     period.Year,
			PeriodMonth:    period.Month,
			AuditFields:    domain.AuditFields{CreatedAt: now, CreatedBy: actorID},
		}

		existing, err := s.vatRepo.LockVatReturn(ctx, organizationID, period)
		switch {
		case err == nil:
			if existing.Status != domain.VatReturnDraft {
				return fmt.Errorf("%w: return for %s is already %s", apperrors.ErrConflict, period.Code(), existing.Status)
			}
			ret.VatReturnID = existing.VatReturnID
			ret.CreatedAt = existing.CreatedAt
			ret.CreatedBy = existing.CreatedBy
			ret.Notes = existing.Notes
		case errors.Is(err, apperrors.ErrNotFound):
			// first computation of the period
		default:
			return err
		}

		sales, err := s.vatRepo.ListSalesRows(ctx, organizationID, period)
		if err != nil {
			return err
		}
		purchases, err := s.vatRepo.ListPurchaseRows(ctx, organizationID, period)
		if err != nil {
			return err
		}

		ret.TotalSalesTaxable, ret.TotalSalesVat = decimal.Zero, decimal.Zero
		ret.TotalPurchasesTaxable, ret.TotalPurchasesVat, ret.TotalDeductibleVat = decimal.Zero, decimal.Zero, decimal.Zero
		for _, r := range sales {
			ret.TotalSalesTaxable = ret.TotalSalesTaxable.Add(r.TaxableBase)
			ret.TotalSalesVat = ret.TotalSalesVat.Add(r.VatAmount)
		}
		for _, r := range purchases {
			ret.TotalPurchasesTaxable = ret.TotalPurchasesTaxable.Add(r.TaxableBase)
			ret.TotalPurchasesVat = ret.TotalPurchasesVat.Add(r.VatAmount)
			ret.TotalDeductibleVat = ret.TotalDeductibleVat.Add(r.DeductibleVatAmount)
		}
		ret.SalesCount = len(sales)
		ret.PurchasesCount = len(purchases)

		diff := ret.TotalSalesVat.Sub(ret.TotalDeductibleVat)
		ret.VatPayable, ret.VatRefundable = decimal.Zero, decimal.Zero
		if diff.IsPositive() {
			ret.VatPayable = diff
		} else {
			ret.VatRefundable = diff.Neg()
		}

		ret.Status = domain.VatReturnDraft
		ret.DueDate = VatReturnDueDate(period)
		ret.Touch(actorID, now)

		if err := s.vatRepo.UpsertVatReturn(ctx, ret); err != nil {
			return err
		}
		result = &ret
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "VAT return computed",
		slog.String("period", period.Code()),
		slog.String("payable", accounting.Format(result.VatPayable)),
		slog.String("refundable", accounting.Format(result.VatRefundable)))
	return result, nil
}

func (s *vatService) SubmitVatReturn(ctx context.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error) {
	return s.transition(ctx, organizationID, actorID, period, domain.VatReturnSubmitted)
}

func (s *vatService) AcceptVatReturn(ctx context.Context, organizationID, actorID string, period domain.Period) (*domain.VatReturn, error) {
	return s.transition(ctx, organizationID, actorID, period, domain.VatReturnAccepted)
}

func (s *vatService) transition(ctx context.Context, organizationID, actorID string, period domain.Period, next domain.VatReturnStatus) (*domain.VatReturn, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	var result *domain.VatReturn
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		ret, err := s.vatRepo.LockVatReturn(ctx, organizationID, period)
		if err != nil {
			return err
		}
		if !ret.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: cannot move return for %s from %s to %s", apperrors.ErrConflict, period.Code(), ret.Status, next)
		}

		now := s.Now()
		if next == domain.VatReturnSubmitted {
			ret.SubmissionDate = &now
		}
		if err := s.vatRepo.UpdateVatReturnStatus(ctx, ret.VatReturnID, next, ret.SubmissionDate, actorID, now); err != nil {
			return err
		}
		ret.Status = next
		ret.Touch(actorID, now)
		result = ret
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "VAT return status changed", slog.String("period", period.Code()), slog.String("status", string(next)))
	return result, nil
}

func (s *vatService) GetVatReturn(ctx context.Context, organizationID string, period domain.Period) (*domain.VatReturn, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	return s.vatRepo.FindVatReturn(ctx, organizationID, period)
}
