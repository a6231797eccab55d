package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_accounting_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting_core/internal/utils/accounting"
)

type openingBalanceService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	contraagentRepo portsrepo.ContraagentRepositoryFacade
	journal         portssvc.JournalSvcFacade
}

// NewOpeningBalanceService creates a new OpeningBalanceSvc.
func NewOpeningBalanceService(
	txManager portsrepo.TransactionManager,
	contraagentRepo portsrepo.ContraagentRepositoryFacade,
	journal portssvc.JournalSvcFacade,
	opts ...Option,
) portssvc.OpeningBalanceSvc {
	return &openingBalanceService{
		BaseService:     newBaseService(opts...),
		txManager:       txManager,
		contraagentRepo: contraagentRepo,
		journal:         journal,
	}
}

var _ portssvc.OpeningBalanceSvc = (*openingBalanceService)(nil)

func validateOpeningAmounts(debit, credit decimal.Decimal) error {
	if debit.IsNegative() || credit.IsNegative() {
		return fmt.Errorf("%w: opening balances must not be negative", apperrors.ErrValidation)
	}
	if !accounting.HasMoneyPrecision(debit) || !accounting.HasMoneyPrecision(credit) {
		return fmt.Errorf("%w: opening balances allow at most %d decimal places", apperrors.ErrValidation, accounting.MoneyPlaces)
	}
	return nil
}

// SetOpeningBalance replaces the opening balance of a contraagent. A previous
// opening entry is reversed first so the ledger only carries the new amounts.
func (s *openingBalanceService) SetOpeningBalance(ctx context.Context, organizationID, actorID, contraagentID string, debit, credit decimal.Decimal, description string) (*domain.Contraagent, *domain.PostedEntry, error) {
	if err := validateOpeningAmounts(debit, credit); err != nil {
		return nil, nil, err
	}

	var (
		updated *domain.Contraagent
		posted  *domain.PostedEntry
	)
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.contraagentRepo.LockContraagent(ctx, organizationID, contraagentID)
		if err != nil {
			return err
		}
		if !c.IsCustomer && !c.IsSupplier {
			return &apperrors.InvalidCounterpartyError{ContraagentID: contraagentID}
		}

		if err := s.reversePrevious(ctx, organizationID, actorID, c); err != nil {
			return err
		}

		c.OpeningBalanceEntryID = nil
		if debit.IsPositive() || credit.IsPositive() {
			posted, err = s.journal.PostRecipe(ctx, organizationID, actorID, OpeningBalanceRecipe{
				Contraagent: *c,
				Debit:       debit,
				Credit:      credit,
				Description: description,
				EntryDate:   s.Now(),
			})
			if err != nil {
				return err
			}
			entryID := posted.Entry.EntryID
			c.OpeningBalanceEntryID = &entryID
		}

		now := s.Now()
		c.OpeningDebitBalance = debit
		c.OpeningCreditBalance = credit
		c.Touch(actorID, now)
		if err := s.contraagentRepo.UpdateOpeningBalance(ctx, *c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "Opening balance set",
		slog.String("contraagent_id", contraagentID),
		slog.String("debit", debit.StringFixed(2)),
		slog.String("credit", credit.StringFixed(2)))
	return updated, posted, nil
}

func (s *openingBalanceService) reversePrevious(ctx context.Context, organizationID, actorID string, c *domain.Contraagent) error {
	if c.OpeningBalanceEntryID == nil || *c.OpeningBalanceEntryID == "" {
		return nil
	}
	_, err := s.journal.Reverse(ctx, organizationID, actorID, *c.OpeningBalanceEntryID)
	if errors.Is(err, apperrors.ErrConflict) {
		s.LogInfo(ctx, "Previous opening balance entry already reversed",
			slog.String("contraagent_id", c.ContraagentID),
			slog.String("entry_id", *c.OpeningBalanceEntryID))
		return nil
	}
	return err
}

// RemoveOpeningBalance posts the mirror of the current balance and zeroes it.
func (s *openingBalanceService) RemoveOpeningBalance(ctx context.Context, organizationID, actorID, contraagentID string) (*domain.Contraagent, *domain.PostedEntry, error) {
	var (
		updated *domain.Contraagent
		posted  *domain.PostedEntry
	)
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.contraagentRepo.LockContraagent(ctx, organizationID, contraagentID)
		if err != nil {
			return err
		}
		updated = c
		if !c.HasOpeningBalance() {
			return nil
		}

		posted, err = s.journal.PostRecipe(ctx, organizationID, actorID, OpeningBalanceRecipe{
			Contraagent: *c,
			Debit:       c.OpeningCreditBalance,
			Credit:      c.OpeningDebitBalance,
			Description: "Remove opening balance for " + c.Name,
			EntryDate:   s.Now(),
		})
		if err != nil {
			return err
		}

		c.OpeningDebitBalance = decimal.Zero
		c.OpeningCreditBalance = decimal.Zero
		c.OpeningBalanceEntryID = nil
		c.Touch(actorID, s.Now())
		return s.contraagentRepo.UpdateOpeningBalance(ctx, *c)
	})
	if err != nil {
		return nil, nil, err
	}
	if posted != nil {
		s.LogInfo(ctx, "Opening balance removed", slog.String("contraagent_id", contraagentID), slog.String("entry_id", posted.Entry.EntryID))
	}
	return updated, posted, nil
}

func (s *openingBalanceService) ListOpeningBalances(ctx context.Context, organizationID string, filter domain.ContraagentFilter) ([]domain.Contraagent, error) {
	if filter.CustomersOnly && filter.SuppliersOnly {
		return nil, fmt.Errorf("%w: customers and suppliers filters are exclusive", apperrors.ErrValidation)
	}
	return s.contraagentRepo.ListContraagents(ctx, organizationID, filter)
}

func (s *openingBalanceService) OpeningBalanceTotals(ctx context.Context, organizationID string) (*domain.OpeningBalanceTotals, error) {
	return s.contraagentRepo.OpeningBalanceTotals(ctx, organizationID)
}
