package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinels for the ledger and VAT error taxonomy. Every typed error below
// matches its sentinel with errors.Is.
var (
	ErrUnbalancedEntry     = errors.New("journal entry is not balanced")
	ErrAlreadyPosted       = errors.New("journal entry is already posted")
	ErrNotPosted           = errors.New("document is not posted")
	ErrConfiguration       = errors.New("organization configuration is incomplete")
	ErrPeriodNotReady      = errors.New("period has unposted documents")
	ErrInvalidCounterparty = errors.New("contraagent is neither customer nor supplier")
)

// UnbalancedEntryError reports the rounded totals of a rejected entry.
type UnbalancedEntryError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Imbalance is debit minus credit.
func (e *UnbalancedEntryError) Imbalance() decimal.Decimal {
	return e.TotalDebit.Sub(e.TotalCredit)
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("%s: debits %s, credits %s, imbalance %s",
		ErrUnbalancedEntry, e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2), e.Imbalance().StringFixed(2))
}

func (e *UnbalancedEntryError) Is(target error) bool { return target == ErrUnbalancedEntry }

// AlreadyPostedError is returned for any attempt to edit or delete a posted entry.
type AlreadyPostedError struct {
	EntryID string
}

func (e *AlreadyPostedError) Error() string {
	return fmt.Sprintf("%s: entry %s can only be reversed", ErrAlreadyPosted, e.EntryID)
}

func (e *AlreadyPostedError) Is(target error) bool { return target == ErrAlreadyPosted }

// NotPostedError names a draft document that cannot feed VAT figures yet.
type NotPostedError struct {
	DocumentKind string
	DocumentID   string
	Number       string
}

func (e *NotPostedError) Error() string {
	if e.Number != "" {
		return fmt.Sprintf("%s: %s %s (%s)", ErrNotPosted, e.DocumentKind, e.Number, e.DocumentID)
	}
	return fmt.Sprintf("%s: %s %s", ErrNotPosted, e.DocumentKind, e.DocumentID)
}

func (e *NotPostedError) Is(target error) bool { return target == ErrNotPosted }

// ConfigurationError is raised when a required default account slot is missing.
type ConfigurationError struct {
	OrganizationID string
	Slot           string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: no account configured for %q in organization %s, set default accounts before posting",
		ErrConfiguration, e.Slot, e.OrganizationID)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// PeriodNotReadyError lists the draft documents blocking a VAT return.
type PeriodNotReadyError struct {
	Year    int
	Month   int
	Pending []NotPostedError
}

func (e *PeriodNotReadyError) Error() string {
	docs := make([]string, 0, len(e.Pending))
	for i := range e.Pending {
		p := e.Pending[i]
		ref := p.Number
		if ref == "" {
			ref = p.DocumentID
		}
		docs = append(docs, p.DocumentKind+" "+ref)
	}
	return fmt.Sprintf("%s: %04d-%02d has %d unposted document(s): %s",
		ErrPeriodNotReady, e.Year, e.Month, len(e.Pending), strings.Join(docs, ", "))
}

func (e *PeriodNotReadyError) Is(target error) bool {
	return target == ErrPeriodNotReady || target == ErrNotPosted
}

// InvalidCounterpartyError is returned when an opening balance targets a contraagent without a role.
type InvalidCounterpartyError struct {
	ContraagentID string
}

func (e *InvalidCounterpartyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidCounterparty, e.ContraagentID)
}

func (e *InvalidCounterpartyError) Is(target error) bool { return target == ErrInvalidCounterparty }
