package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// RecipeHeader carries the entry-level fields a recipe posts with.
type RecipeHeader struct {
	EntryDate   time.Time
	Description string
	Reference   string
}

// PostingRecipe turns a business event into balanced journal lines.
type PostingRecipe interface {
	Header() RecipeHeader
	Lines(ctx context.Context, org domain.Organization, resolver AccountResolverSvc) ([]domain.LineInput, error)
}

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetEntry retrieves an entry with its lines.
	GetEntry(ctx context.Context, organizationID, entryID string) (*domain.PostedEntry, error)

	// ListEntries retrieves a page of entries and the next page token.
	ListEntries(ctx context.Context, organizationID string, filter domain.JournalEntryFilter) ([]domain.JournalEntry, *string, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// Post validates, balances and persists an entry.
	Post(ctx context.Context, organizationID, actorID string, input domain.PostEntryInput) (*domain.PostedEntry, error)

	// Reverse posts the mirror of an entry and marks the original as reversed.
	Reverse(ctx context.Context, organizationID, actorID, entryID string) (*domain.PostedEntry, error)

	// Update always fails for an existing entry; posted entries are immutable.
	Update(ctx context.Context, organizationID, actorID, entryID string) error

	// Delete always fails for an existing entry; posted entries are immutable.
	Delete(ctx context.Context, organizationID, actorID, entryID string) error
}

// PostingSvc routes business events through posting recipes.
type PostingSvc interface {
	// PostRecipe posts whatever lines the recipe produces through Post.
	PostRecipe(ctx context.Context, organizationID, actorID string, recipe PostingRecipe) (*domain.PostedEntry, error)

	PostForPayment(ctx context.Context, organizationID, actorID, paymentID string) (*domain.PostedEntry, error)
	PostForBankTransaction(ctx context.Context, organizationID, actorID, bankTransactionID string) (*domain.PostedEntry, error)
	PostForAssetTransaction(ctx context.Context, organizationID, actorID, assetTransactionID string) (*domain.PostedEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	PostingSvc
}
