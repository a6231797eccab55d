package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/utils/accounting"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	transactionTypeNormal   = "N"
	transactionTypeReversal = "R"
)

// journalService is the only writer of journal entries.
type journalService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	orgRepo     portsrepo.OrganizationReader
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalRepositoryFacade
	sourceRepo  portsrepo.PostingSourceRepositoryFacade
	resolver    portssvc.AccountResolverSvc
}

// NewJournalService creates a new JournalService.
func NewJournalService(
	txManager portsrepo.TransactionManager,
	orgRepo portsrepo.OrganizationReader,
	accountRepo portsrepo.AccountReader,
	journalRepo portsrepo.JournalRepositoryFacade,
	sourceRepo portsrepo.PostingSourceRepositoryFacade,
	resolver portssvc.AccountResolverSvc,
	opts ...Option,
) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService: newBaseService(opts...),
		txManager:   txManager,
		orgRepo:     orgRepo,
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		sourceRepo:  sourceRepo,
		resolver:    resolver,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateLines checks every line on its own. Amounts must be non-negative with
// at most two decimals and exactly one side must be non-zero.
func validateLines(lines []domain.LineInput) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: entry must have at least one line", apperrors.ErrValidation)
	}
	for i, l := range lines {
		if l.AccountID == "" {
			return fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, i+1)
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i+1)
		}
		if !accounting.HasMoneyPrecision(l.Debit) || !accounting.HasMoneyPrecision(l.Credit) {
			return fmt.Errorf("%w: line %d has more than %d decimal places", apperrors.ErrValidation, i+1, accounting.MoneyPlaces)
		}
		if l.Debit.IsZero() && l.Credit.IsZero() {
			return fmt.Errorf("%w: line %d has neither debit nor credit", apperrors.ErrValidation, i+1)
		}
		if !l.Debit.IsZero() && !l.Credit.IsZero() {
			return fmt.Errorf("%w: line %d has both debit and credit", apperrors.ErrValidation, i+1)
		}
		if utf8.RuneCountInString(l.Description) > domain.MaxLineDescription {
			return fmt.Errorf("%w: line %d description exceeds %d characters", apperrors.ErrValidation, i+1, domain.MaxLineDescription)
		}
	}
	return nil
}

func lineAmount(l domain.LineInput) decimal.Decimal {
	return l.Debit.Add(l.Credit)
}

// convertLines moves the amounts into the posting currency. The balance is
// checked on the unrounded converted amounts; the difference left by rounding
// each line lands on the largest line.
func convertLines(lines []domain.LineInput, rate decimal.Decimal) ([]domain.LineInput, error) {
	if rate.Equal(decimal.NewFromInt(1)) {
		return lines, accounting.CheckBalance(lines)
	}

	exact := make([]domain.LineInput, len(lines))
	for i, l := range lines {
		exact[i] = l
		exact[i].Debit = l.Debit.Mul(rate)
		exact[i].Credit = l.Credit.Mul(rate)
	}
	if err := accounting.CheckBalance(exact); err != nil {
		return nil, err
	}

	out := make([]domain.LineInput, len(exact))
	largest := 0
	for i, l := range exact {
		out[i] = l
		out[i].Debit = accounting.Round(l.Debit)
		out[i].Credit = accounting.Round(l.Credit)
		if lineAmount(out[i]).GreaterThan(lineAmount(out[largest])) {
			largest = i
		}
	}

	debit, credit := accounting.Totals(out)
	if diff := debit.Sub(credit); !diff.IsZero() {
		if out[largest].Debit.IsPositive() {
			out[largest].Debit = out[largest].Debit.Sub(diff)
		} else {
			out[largest].Credit = out[largest].Credit.Add(diff)
		}
	}
	return out, nil
}

// Post validates, balances and persists an entry.
func (s *journalService) Post(ctx context.Context, organizationID, actorID string, input domain.PostEntryInput) (*domain.PostedEntry, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return s.post(ctx, *org, actorID, input)
}

func (s *journalService) post(ctx context.Context, org domain.Organization, actorID string, input domain.PostEntryInput) (*domain.PostedEntry, error) {
	logger := s.GetLogger(ctx).With(slog.String("organization_id", org.OrganizationID))

	if input.EntryDate.IsZero() {
		return nil, fmt.Errorf("%w: entry date is required", apperrors.ErrValidation)
	}
	if err := validateLines(input.Lines); err != nil {
		return nil, err
	}

	rate := input.ExchangeRate
	if rate.IsZero() {
		rate = decimal.NewFromInt(1)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	currency := strings.ToUpper(strings.TrimSpace(input.CurrencyCode))
	if currency == "" {
		currency = org.BaseCurrency()
	}

	lines, err := convertLines(input.Lines, rate)
	if err != nil {
		logger.Warn("Rejected unbalanced entry", slog.String("reference", input.Reference), slog.String("error", err.Error()))
		return nil, err
	}

	accountIDs := make([]string, 0, len(lines))
	for _, l := range lines {
		accountIDs = append(accountIDs, l.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, org.OrganizationID, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for entry")
		return nil, err
	}
	for _, id := range accountIDs {
		acc, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("%w: account %s does not belong to organization %s", apperrors.ErrValidation, id, org.OrganizationID)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s (%s) is inactive", apperrors.ErrValidation, acc.Code, id)
		}
	}

	now := s.Now()
	audit := domain.NewAuditFields(actorID, now)

	journalType := input.JournalType
	if journalType == "" {
		journalType = domain.DefaultJournalType
	}
	transactionType := input.TransactionType
	if transactionType == "" {
		transactionType = transactionTypeNormal
	}

	totalDebit, _ := accounting.Totals(lines)
	entry := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		OrganizationID:  org.OrganizationID,
		EntryDate:       input.EntryDate,
		Description:     input.Description,
		CurrencyCode:    currency,
		ExchangeRate:    rate,
		Reference:       input.Reference,
		Status:          domain.Posted,
		JournalType:     journalType,
		TransactionType: transactionType,
		Amount:          accounting.Round(totalDebit),
		AuditFields:     audit,
	}

	entryLines := make([]domain.EntryLine, len(lines))
	for i, l := range lines {
		entryLines[i] = domain.EntryLine{
			LineID:        uuid.NewString(),
			EntryID:       entry.EntryID,
			LineNo:        i + 1,
			AccountID:     l.AccountID,
			Debit:         l.Debit,
			Credit:        l.Credit,
			Description:   l.Description,
			ContraagentID: l.ContraagentID,
			VatRate:       l.VatRate,
			VatAmount:     l.VatAmount,
			TaxBase:       l.TaxBase,
			AuditFields:   audit,
		}
	}

	return s.save(ctx, entry, entryLines, accounts)
}

func (s *journalService) save(ctx context.Context, entry domain.JournalEntry, lines []domain.EntryLine, accounts map[string]domain.Account) (*domain.PostedEntry, error) {
	balanceChanges, err := accounting.BalanceChanges(lines, accounts)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("reference", entry.Reference),
		slog.String("amount", entry.Amount.StringFixed(2)),
		slog.Int("lines", len(lines)))
	return &domain.PostedEntry{Entry: entry, Lines: lines}, nil
}

// Reverse posts a mirror entry dated now and marks the original as reversed.
// The original keeps its amounts.
func (s *journalService) Reverse(ctx context.Context, organizationID, actorID, entryID string) (*domain.PostedEntry, error) {
	var result *domain.PostedEntry
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		original, err := s.journalRepo.FindEntryByID(ctx, organizationID, entryID)
		if err != nil {
			return err
		}
		if original.Status == domain.Reversed {
			return fmt.Errorf("%w: entry %s is already reversed", apperrors.ErrConflict, entryID)
		}
		if original.IsReversal() {
			return fmt.Errorf("%w: entry %s is itself a reversal", apperrors.ErrConflict, entryID)
		}

		originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
		if err != nil {
			return err
		}
		if len(originalLines) == 0 {
			return fmt.Errorf("%w: entry %s has no lines", apperrors.ErrConflict, entryID)
		}

		accountIDs := make([]string, 0, len(originalLines))
		for _, l := range originalLines {
			accountIDs = append(accountIDs, l.AccountID)
		}
		accounts, err := s.accountRepo.FindAccountsByIDs(ctx, organizationID, accountIDs)
		if err != nil {
			return err
		}

		now := s.Now()
		audit := domain.NewAuditFields(actorID, now)
		originalID := original.EntryID

		description := "Reversal of " + original.Description
		if original.Description == "" {
			description = "Reversal of entry " + original.EntryID
		}

		reversal := domain.JournalEntry{
			EntryID:         uuid.NewString(),
			OrganizationID:  organizationID,
			EntryDate:       now,
			Description:     truncateRunes(description, domain.MaxLineDescription),
			CurrencyCode:    original.CurrencyCode,
			ExchangeRate:    original.ExchangeRate,
			Reference:       ReversalReference(original.EntryID),
			Status:          domain.Posted,
			JournalType:     original.JournalType,
			TransactionType: transactionTypeReversal,
			OriginalEntryID: &originalID,
			Amount:          original.Amount,
			AuditFields:     audit,
		}

		lines := make([]domain.EntryLine, len(originalLines))
		for i, l := range originalLines {
			swapped := l.Swapped()
			swapped.LineID = uuid.NewString()
			swapped.EntryID = reversal.EntryID
			swapped.LineNo = i + 1
			swapped.AuditFields = audit
			lines[i] = swapped
		}

		posted, err := s.save(ctx, reversal, lines, accounts)
		if err != nil {
			return err
		}
		if err := s.journalRepo.MarkEntryReversed(ctx, original.EntryID, reversal.EntryID, actorID, now); err != nil {
			return err
		}
		result = posted
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to reverse journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return result, nil
}

// ReversalReference is the reference carried by the reversal of an entry.
func ReversalReference(entryID string) string {
	return "REV:" + entryID
}

// Update rejects any change to an existing entry.
func (s *journalService) Update(ctx context.Context, organizationID, actorID, entryID string) error {
	return s.rejectMutation(ctx, organizationID, entryID)
}

// Delete rejects removal of an existing entry.
func (s *journalService) Delete(ctx context.Context, organizationID, actorID, entryID string) error {
	return s.rejectMutation(ctx, organizationID, entryID)
}

func (s *journalService) rejectMutation(ctx context.Context, organizationID, entryID string) error {
	if _, err := s.journalRepo.FindEntryByID(ctx, organizationID, entryID); err != nil {
		return err
	}
	return &apperrors.AlreadyPostedError{EntryID: entryID}
}

// GetEntry retrieves an entry with its lines.
func (s *journalService) GetEntry(ctx context.Context, organizationID, entryID string) (*domain.PostedEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, organizationID, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return &domain.PostedEntry{Entry: *entry, Lines: lines}, nil
}

// ListEntries retrieves a page of entries.
func (s *journalService) ListEntries(ctx context.Context, organizationID string, filter domain.JournalEntryFilter) ([]domain.JournalEntry, *string, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	return s.journalRepo.ListEntries(ctx, organizationID, filter)
}

// PostRecipe posts the lines a recipe produces through the regular Post path.
func (s *journalService) PostRecipe(ctx context.Context, organizationID, actorID string, recipe portssvc.PostingRecipe) (*domain.PostedEntry, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return s.postRecipe(ctx, *org, actorID, recipe)
}

func (s *journalService) postRecipe(ctx context.Context, org domain.Organization, actorID string, recipe portssvc.PostingRecipe) (*domain.PostedEntry, error) {
	lines, err := recipe.Lines(ctx, org, s.resolver)
	if err != nil {
		return nil, err
	}
	header := recipe.Header()
	return s.post(ctx, org, actorID, domain.PostEntryInput{
		EntryDate:   header.EntryDate,
		Description: header.Description,
		Reference:   header.Reference,
		Lines:       lines,
	})
}

// ensureNotPosted guards against a second posting of the same source document.
func (s *journalService) ensureNotPosted(ctx context.Context, organizationID string, linked *string, reference string) error {
	if linked != nil && *linked != "" {
		return fmt.Errorf("%w: already posted as entry %s", apperrors.ErrDuplicate, *linked)
	}
	existing, err := s.journalRepo.FindEntryByReference(ctx, organizationID, reference)
	switch {
	case err == nil:
		return fmt.Errorf("%w: entry %s already carries reference %s", apperrors.ErrDuplicate, existing.EntryID, reference)
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		return err
	}
}

// PostForPayment posts a payment and links it to its entry.
func (s *journalService) PostForPayment(ctx context.Context, organizationID, actorID, paymentID string) (*domain.PostedEntry, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	var result *domain.PostedEntry
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		payment, err := s.sourceRepo.FindPaymentByID(ctx, organizationID, paymentID)
		if err != nil {
			return err
		}
		if err := s.ensureNotPosted(ctx, organizationID, payment.JournalEntryID, PaymentReference(payment.PaymentID)); err != nil {
			return err
		}
		posted, err := s.postRecipe(ctx, *org, actorID, PaymentRecipe{Payment: *payment})
		if err != nil {
			return err
		}
		if err := s.sourceRepo.LinkPaymentEntry(ctx, organizationID, paymentID, posted.Entry.EntryID); err != nil {
			return err
		}
		result = posted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PostForBankTransaction posts an imported bank line and links it to its entry.
func (s *journalService) PostForBankTransaction(ctx context.Context, organizationID, actorID, bankTransactionID string) (*domain.PostedEntry, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	var result *domain.PostedEntry
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		bt, err := s.sourceRepo.FindBankTransactionByID(ctx, organizationID, bankTransactionID)
		if err != nil {
			return err
		}
		if err := s.ensureNotPosted(ctx, organizationID, bt.JournalEntryID, BankTransactionReference(bt.TransactionID)); err != nil {
			return err
		}
		posted, err := s.postRecipe(ctx, *org, actorID, BankTransactionRecipe{Transaction: *bt})
		if err != nil {
			return err
		}
		if err := s.sourceRepo.LinkBankTransactionEntry(ctx, organizationID, bankTransactionID, posted.Entry.EntryID); err != nil {
			return err
		}
		result = posted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PostForAssetTransaction posts a fixed asset movement and links it to its entry.
func (s *journalService) PostForAssetTransaction(ctx context.Context, organizationID, actorID, assetTransactionID string) (*domain.PostedEntry, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	var result *domain.PostedEntry
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		at, err := s.sourceRepo.FindAssetTransactionByID(ctx, organizationID, assetTransactionID)
		if err != nil {
			return err
		}
		if err := s.ensureNotPosted(ctx, organizationID, at.JournalEntryID, AssetTransactionReference(at.AssetTransactionID)); err != nil {
			return err
		}
		posted, err := s.postRecipe(ctx, *org, actorID, AssetTransactionRecipe{Transaction: *at})
		if err != nil {
			return err
		}
		if err := s.sourceRepo.LinkAssetTransactionEntry(ctx, organizationID, assetTransactionID, posted.Entry.EntryID); err != nil {
			return err
		}
		result = posted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
