package domain

import "github.com/shopspring/decimal"

// MaxLineDescription is the longest description an entry line keeps.
const MaxLineDescription = 255

// EntryLine is one debit or credit row of a journal entry.
type EntryLine struct {
	LineID        string           `json:"lineID"`
	EntryID       string           `json:"entryID"`
	LineNo        int              `json:"lineNo"`
	AccountID     string           `json:"accountID"`
	Debit         decimal.Decimal  `json:"debit"`
	Credit        decimal.Decimal  `json:"credit"`
	Description   string           `json:"description"`
	ContraagentID *string          `json:"contraagentID,omitempty"`
	VatRate       *decimal.Decimal `json:"vatRate,omitempty"`
	VatAmount     *decimal.Decimal `json:"vatAmount,omitempty"`
	TaxBase       *decimal.Decimal `json:"taxBase,omitempty"`
	AuditFields
}

// IsDebit reports whether the line sits on the debit side.
func (l EntryLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// Amount is the non-zero side of the line.
func (l EntryLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}

// Swapped returns a copy of the line with debit and credit exchanged.
func (l EntryLine) Swapped() EntryLine {
	out := l
	out.Debit, out.Credit = l.Credit, l.Debit
	return out
}

// LineInput is what callers hand to the journal engine.
type LineInput struct {
	AccountID     string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	Description   string
	ContraagentID *string
	VatRate       *decimal.Decimal
	VatAmount     *decimal.Decimal
	TaxBase       *decimal.Decimal
}

// DebitLine builds a debit-side input.
func DebitLine(accountID string, amount decimal.Decimal, description string) LineInput {
	return LineInput{AccountID: accountID, Debit: amount, Credit: decimal.Zero, Description: description}
}

// CreditLine builds a credit-side input.
func CreditLine(accountID string, amount decimal.Decimal, description string) LineInput {
	return LineInput{AccountID: accountID, Debit: decimal.Zero, Credit: amount, Description: description}
}
