package saft

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

const (
	generalJournalDescription = "Главен журнал"
	placeholderAccount        = "100"
)

// generalLedgerEntries writes one Journal per posted entry. An empty period
// still gets a zero placeholder transaction.
func (b *builder) generalLedgerEntries(file node) {
	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, e := range b.data.Entries {
		for _, l := range e.Lines {
			totalDebit = totalDebit.Add(l.Debit)
			totalCredit = totalCredit.Add(l.Credit)
		}
	}

	gle := file.add("GeneralLedgerEntries")
	gle.count("NumberOfEntries", len(b.data.Entries))
	gle.amount("TotalDebit", totalDebit)
	gle.amount("TotalCredit", totalCredit)

	if len(b.data.Entries) == 0 {
		b.placeholderJournal(gle)
		return
	}
	for _, e := range b.data.Entries {
		b.journal(gle, e)
	}
}

func (b *builder) journal(gle node, e LedgerEntry) {
	entry := e.Entry
	journalType := valueOr(entry.JournalType, domain.DefaultJournalType)
	currency := valueOr(entry.CurrencyCode, b.currency())

	j := gle.add("Journal")
	j.text("JournalID", journalType)
	j.text("Description", generalJournalDescription)
	j.text("Type", journalType)

	t := j.add("Transaction")
	t.text("TransactionID", entry.EntryID)
	t.count("Period", int(entry.EntryDate.Month()))
	t.count("PeriodYear", entry.EntryDate.Year())
	t.date("TransactionDate", entry.EntryDate)
	t.text("SourceID", valueOr(entry.CreatedBy, "system"))
	t.text("TransactionType", valueOr(entry.TransactionType, "N"))
	t.text("Description", entry.Description)
	t.date("SystemEntryDate", entry.CreatedAt)
	t.date("GLPostingDate", entry.EntryDate)

	for _, l := range e.Lines {
		line := t.add("TransactionLine")
		line.text("RecordID", l.LineID)
		line.text("AccountID", l.AccountCode)
		line.text("TaxpayerAccountID", valueOr(l.TaxpayerCode, l.AccountCode))
		line.text("SourceDocumentID", entry.Reference)
		switch {
		case l.CustomerID != "":
			line.text("CustomerID", l.CustomerID)
		case l.SupplierID != "":
			line.text("SupplierID", l.SupplierID)
		}
		line.text("Description", l.Description)
		if l.IsDebit() {
			line.money("DebitAmount", l.Debit, currency, entry.ExchangeRate)
		} else {
			line.money("CreditAmount", l.Credit, currency, entry.ExchangeRate)
		}
		if l.VatAmount != nil && l.VatAmount.IsPositive() {
			b.lineTax(line, l, currency, entry.ExchangeRate)
		}
	}
}

func (b *builder) lineTax(line node, l LedgerLine, currency string, rate decimal.Decimal) {
	vatRate := decimal.NewFromInt(20)
	if l.VatRate != nil {
		vatRate = *l.VatRate
	}
	base := l.Amount()
	if l.TaxBase != nil {
		base = *l.TaxBase
	}

	tax := line.add("TaxInformation")
	tax.text("TaxType", "VAT")
	tax.text("TaxCode", vatRate.String())
	tax.amount("TaxPercentage", vatRate)
	tax.amount("TaxBase", base)
	tax.money("TaxAmount", *l.VatAmount, currency, rate)
}

func (b *builder) placeholderJournal(gle node) {
	req := b.data.Request
	first := domain.Period{Year: req.Year, Month: req.Month}.Start()
	currency := b.currency()
	one := decimal.NewFromInt(1)

	j := gle.add("Journal")
	j.text("JournalID", domain.DefaultJournalType)
	j.text("Description", generalJournalDescription)
	j.text("Type", domain.DefaultJournalType)

	t := j.add("Transaction")
	t.text("TransactionID", "0")
	t.count("Period", req.Month)
	t.count("PeriodYear", req.Year)
	t.date("TransactionDate", first)
	t.text("Description", "Няма записи за периода")
	t.date("SystemEntryDate", b.data.GeneratedAt)
	t.date("GLPostingDate", first)
	t.add("CustomerID")
	t.add("SupplierID")

	line := t.add("TransactionLine")
	line.text("RecordID", "0")
	line.text("AccountID", placeholderAccount)
	line.text("TaxpayerAccountID", placeholderAccount)
	line.add("CustomerID")
	line.add("SupplierID")
	line.text("Description", "Няма записи")
	line.money("DebitAmount", decimal.Zero, currency, one)

	tax := line.add("TaxInformation")
	tax.text("TaxType", "VAT")
	tax.text("TaxCode", "0")
	tax.amount("TaxPercentage", decimal.Zero)
	tax.amount("TaxBase", decimal.Zero)
	tax.money("TaxAmount", decimal.Zero, currency, one)
}
