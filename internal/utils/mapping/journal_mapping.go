package mapping

import (
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/SscSPs/erp_accounting_core/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:          d.EntryID,
		OrganizationID:   d.OrganizationID,
		EntryDate:        d.EntryDate,
		Description:      NullString(d.Description),
		CurrencyCode:     d.CurrencyCode,
		ExchangeRate:     d.ExchangeRate,
		Reference:        NullString(d.Reference),
		Status:           models.JournalStatus(d.Status),
		JournalType:      d.JournalType,
		TransactionType:  d.TransactionType,
		OriginalEntryID:  NullStringPtr(d.OriginalEntryID),
		ReversingEntryID: NullStringPtr(d.ReversingEntryID),
		Amount:           d.Amount,
		AuditFields:      models.AuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:          m.EntryID,
		OrganizationID:   m.OrganizationID,
		EntryDate:        m.EntryDate,
		Description:      m.Description.String,
		CurrencyCode:     m.CurrencyCode,
		ExchangeRate:     m.ExchangeRate,
		Reference:        m.Reference.String,
		Status:           domain.JournalStatus(m.Status),
		JournalType:      m.JournalType,
		TransactionType:  m.TransactionType,
		OriginalEntryID:  StringPtr(m.OriginalEntryID),
		ReversingEntryID: StringPtr(m.ReversingEntryID),
		Amount:           m.Amount,
		AuditFields:      domain.AuditFields(m.AuditFields),
	}
}

// ToDomainJournalEntrySlice converts a slice of model entries to domain entries
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}

// ToModelEntryLine converts a domain EntryLine to a model EntryLine
func ToModelEntryLine(d domain.EntryLine) models.EntryLine {
	return models.EntryLine{
		LineID:        d.LineID,
		EntryID:       d.EntryID,
		LineNo:        d.LineNo,
		AccountID:     d.AccountID,
		Debit:         d.Debit,
		Credit:        d.Credit,
		Description:   NullString(d.Description),
		ContraagentID: NullStringPtr(d.ContraagentID),
		VatRate:       NullDecimal(d.VatRate),
		VatAmount:     NullDecimal(d.VatAmount),
		TaxBase:       NullDecimal(d.TaxBase),
		AuditFields:   models.AuditFields(d.AuditFields),
	}
}

// ToDomainEntryLine converts a model EntryLine to a domain EntryLine
func ToDomainEntryLine(m models.EntryLine) domain.EntryLine {
	return domain.EntryLine{
		LineID:        m.LineID,
		EntryID:       m.EntryID,
		LineNo:        m.LineNo,
		AccountID:     m.AccountID,
		Debit:         m.Debit,
		Credit:        m.Credit,
		Description:   m.Description.String,
		ContraagentID: StringPtr(m.ContraagentID),
		VatRate:       DecimalPtr(m.VatRate),
		VatAmount:     DecimalPtr(m.VatAmount),
		TaxBase:       DecimalPtr(m.TaxBase),
		AuditFields:   domain.AuditFields(m.AuditFields),
	}
}
