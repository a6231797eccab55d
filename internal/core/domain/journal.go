package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// DefaultJournalType is the SAF-T general journal.
const DefaultJournalType = "GJ"

// JournalEntry is one balanced accounting transaction. It is immutable once
// created; only Status and ReversingEntryID change when it gets reversed.
type JournalEntry struct {
	EntryID          string          `json:"entryID"`
	OrganizationID   string          `json:"organizationID"`
	EntryDate        time.Time       `json:"entryDate"`
	Description      string          `json:"description"`
	CurrencyCode     string          `json:"currencyCode"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	Reference        string          `json:"reference"`
	Status           JournalStatus   `json:"status"`
	JournalType      string          `json:"journalType"`
	TransactionType  string          `json:"transactionType"` // SAF-T: N normal, R reversal
	OriginalEntryID  *string         `json:"originalEntryID,omitempty"`
	ReversingEntryID *string         `json:"reversingEntryID,omitempty"`
	Amount           decimal.Decimal `json:"amount"` // total debit in posting currency
	AuditFields
}

// IsReversal reports whether the entry was created by reversing another one.
func (j JournalEntry) IsReversal() bool {
	return j.OriginalEntryID != nil && *j.OriginalEntryID != ""
}

// JournalEntryFilter narrows ListEntries results.
type JournalEntryFilter struct {
	From      *time.Time
	To        *time.Time
	AccountID string
	Reference string
	Limit     int
	NextToken *string
}

// PostEntryInput is what the journal engine needs to post an entry.
// A zero ExchangeRate means 1.
type PostEntryInput struct {
	EntryDate       time.Time
	Description     string
	CurrencyCode    string
	ExchangeRate    decimal.Decimal
	Reference       string
	JournalType     string
	TransactionType string
	Lines           []LineInput
}

// PostedEntry is a persisted entry together with its lines.
type PostedEntry struct {
	Entry JournalEntry `json:"entry"`
	Lines []EntryLine  `json:"lines"`
}
