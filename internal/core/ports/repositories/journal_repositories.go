package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindEntryByID retrieves an entry of the organization.
	FindEntryByID(ctx context.Context, organizationID, entryID string) (*domain.JournalEntry, error)

	// FindEntryByReference returns the newest non-reversed entry carrying the reference.
	FindEntryByReference(ctx context.Context, organizationID, reference string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries and the token of the next page.
	ListEntries(ctx context.Context, organizationID string, filter domain.JournalEntryFilter) ([]domain.JournalEntry, *string, error)

	// ListEntriesInPeriod returns every entry dated within [from, to], oldest first.
	ListEntriesInPeriod(ctx context.Context, organizationID string, from, to time.Time) ([]domain.JournalEntry, error)
}

// EntryLineReader defines read operations for entry lines
type EntryLineReader interface {
	// FindLinesByEntryID retrieves the lines of one entry ordered by line number.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error)

	// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.EntryLine, error)
}

// JournalWriter defines write operations for journal entries
type JournalWriter interface {
	// SaveEntry persists an entry and its lines and applies the balance changes
	// to the locked accounts, all within one transaction.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.EntryLine, balanceChanges map[string]decimal.Decimal) error

	// MarkEntryReversed flips the status of an entry and links it to its reversal.
	// apperrors.ErrConflict when the entry is no longer posted.
	MarkEntryReversed(ctx context.Context, entryID, reversingEntryID, updatedBy string, updatedAt time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	EntryLineReader
	JournalWriter
}
