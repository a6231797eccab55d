package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is one debit or credit line of a manual entry.
type EntryLineRequest struct {
	AccountID     string           `json:"accountID" binding:"required"`
	Debit         decimal.Decimal  `json:"debit" binding:"decimal_gte0"`
	Credit        decimal.Decimal  `json:"credit" binding:"decimal_gte0"`
	Description   string           `json:"description" binding:"max=255"`
	ContraagentID *string          `json:"contraagentID"`
	VatRate       *decimal.Decimal `json:"vatRate" binding:"omitempty,decimal_gte0"`
	VatAmount     *decimal.Decimal `json:"vatAmount" binding:"omitempty,decimal_gte0"`
	TaxBase       *decimal.Decimal `json:"taxBase"`
}

// PostEntryRequest defines the data needed to post a journal entry.
type PostEntryRequest struct {
	EntryDate       string             `json:"entryDate" binding:"required,datetime=2006-01-02"`
	Description     string             `json:"description" binding:"required"`
	CurrencyCode    string             `json:"currencyCode" binding:"omitempty,len=3"`
	ExchangeRate    decimal.Decimal    `json:"exchangeRate" binding:"decimal_gte0"`
	Reference       string             `json:"reference"`
	JournalType     string             `json:"journalType"`
	TransactionType string             `json:"transactionType" binding:"omitempty,oneof=N R"`
	Lines           []EntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ToPostEntryInput converts the request to the journal engine input.
func (r PostEntryRequest) ToPostEntryInput() (domain.PostEntryInput, error) {
	entryDate, err := time.Parse(DateLayout, r.EntryDate)
	if err != nil {
		return domain.PostEntryInput{}, fmt.Errorf("invalid entryDate %q", r.EntryDate)
	}
	lines := make([]domain.LineInput, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.LineInput{
			AccountID:     l.AccountID,
			Debit:         l.Debit,
			Credit:        l.Credit,
			Description:   l.Description,
			ContraagentID: l.ContraagentID,
			VatRate:       l.VatRate,
			VatAmount:     l.VatAmount,
			TaxBase:       l.TaxBase,
		}
	}
	return domain.PostEntryInput{
		EntryDate:       entryDate,
		Description:     r.Description,
		CurrencyCode:    r.CurrencyCode,
		ExchangeRate:    r.ExchangeRate,
		Reference:       r.Reference,
		JournalType:     r.JournalType,
		TransactionType: r.TransactionType,
		Lines:           lines,
	}, nil
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	From      string  `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string  `form:"to" binding:"omitempty,datetime=2006-01-02"`
	AccountID string  `form:"accountID"`
	Reference string  `form:"reference"`
	Limit     int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ToFilter converts the query to a repository filter. Dates are validated by binding.
func (p ListEntriesParams) ToFilter() (domain.JournalEntryFilter, error) {
	from, err := ParseDate(p.From)
	if err != nil {
		return domain.JournalEntryFilter{}, err
	}
	to, err := ParseDate(p.To)
	if err != nil {
		return domain.JournalEntryFilter{}, err
	}
	return domain.JournalEntryFilter{
		From:      from,
		To:        to,
		AccountID: p.AccountID,
		Reference: p.Reference,
		Limit:     p.Limit,
		NextToken: p.NextToken,
	}, nil
}

// ListEntriesResponse wraps a page of journal entries.
type ListEntriesResponse struct {
	Entries   []domain.JournalEntry `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// PostSourceRequest names the business document a recipe posts.
type PostSourceRequest struct {
	ID string `json:"id" binding:"required"`
}
