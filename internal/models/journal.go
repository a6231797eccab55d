package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

// JournalEntry represents a journal_entries row.
type JournalEntry struct {
	EntryID          string          `db:"entry_id"`
	OrganizationID   string          `db:"organization_id"`
	EntryDate        time.Time       `db:"entry_date"`
	Description      sql.NullString  `db:"description"`
	CurrencyCode     string          `db:"currency_code"`
	ExchangeRate     decimal.Decimal `db:"exchange_rate"`
	Reference        sql.NullString  `db:"reference"`
	Status           JournalStatus   `db:"status"`
	JournalType      string          `db:"journal_type"`
	TransactionType  string          `db:"transaction_type"`
	OriginalEntryID  sql.NullString  `db:"original_entry_id"`
	ReversingEntryID sql.NullString  `db:"reversing_entry_id"`
	Amount           decimal.Decimal `db:"amount"`
	AuditFields
}

// EntryLine represents an entry_lines row. Only one of Debit and Credit is non-zero.
type EntryLine struct {
	LineID        string              `db:"line_id"`
	EntryID       string              `db:"entry_id"`
	LineNo        int                 `db:"line_no"`
	AccountID     string              `db:"account_id"`
	Debit         decimal.Decimal     `db:"debit"`
	Credit        decimal.Decimal     `db:"credit"`
	Description   sql.NullString      `db:"description"`
	ContraagentID sql.NullString      `db:"contraagent_id"`
	VatRate       decimal.NullDecimal `db:"vat_rate"`
	VatAmount     decimal.NullDecimal `db:"vat_amount"`
	TaxBase       decimal.NullDecimal `db:"tax_base"`
	AuditFields
}
