package saft

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

const (
	paymentMethodCash    = "01"
	paymentMethodNonCash = "03"
	mechanismCash        = "10"
	mechanismBank        = "42"
)

func (b *builder) sourceDocuments(file node) {
	switch b.data.Request.Variant {
	case domain.SaftMonthly:
		s := file.add("SourceDocumentsMonthly")
		b.salesInvoices(s)
		b.payments(s)
		b.purchaseInvoices(s)
	case domain.SaftAnnual:
		s := file.add("SourceDocumentsAnnual")
		b.assetTransactions(s)
	case domain.SaftOnDemand:
		s := file.add("SourceDocumentsOnDemand")
		b.movementOfGoods(s)
	}
}

func isCreditNoteCode(code string) bool {
	return code == domain.DocTypeCreditNote || code == "13"
}

// counterpartyID is the identifier of a register counterparty: the
// contraagent's SAF-T ID when linked, otherwise the VAT number or EIK.
func (b *builder) counterpartyID(cp domain.Counterparty) string {
	if cp.ContraagentID != nil {
		if c, ok := b.contraagents[*cp.ContraagentID]; ok {
			return c.SaftID()
		}
	}
	return valueOr(cp.VatNumber, cp.EIK)
}

func (b *builder) salesInvoices(s node) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, r := range b.data.Sales {
		if isCreditNoteCode(r.DocumentType) || r.TotalAmount.IsNegative() {
			debit = debit.Add(r.TotalAmount.Abs())
		} else {
			credit = credit.Add(r.TotalAmount)
		}
	}

	si := s.add("SalesInvoices")
	si.count("NumberOfEntries", len(b.data.Sales))
	si.amount("TotalDebit", debit)
	si.amount("TotalCredit", credit)
	for _, r := range b.data.Sales {
		inv := si.add("Invoice")
		inv.text("InvoiceNo", r.DocumentNumber)
		info := inv.add("CustomerInfo")
		info.text("CustomerID", b.counterpartyID(r.Counterparty))
		info.text("Name", r.Counterparty.Name)
		billingAddress(info, r.Counterparty)
		b.invoiceBody(inv, r.VatRegisterRow, customersAccount, r.SalesOperation, "C")
	}
}

func (b *builder) purchaseInvoices(s node) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, r := range b.data.Purchases {
		if isCreditNoteCode(r.DocumentType) || r.TotalAmount.IsNegative() {
			credit = credit.Add(r.TotalAmount.Abs())
		} else {
			debit = debit.Add(r.TotalAmount)
		}
	}

	pi := s.add("PurchaseInvoices")
	pi.count("NumberOfEntries", len(b.data.Purchases))
	pi.amount("TotalDebit", debit)
	pi.amount("TotalCredit", credit)
	for _, r := range b.data.Purchases {
		inv := pi.add("Invoice")
		inv.text("InvoiceNo", r.DocumentNumber)
		info := inv.add("SupplierInfo")
		info.text("SupplierID", b.counterpartyID(r.Counterparty))
		info.text("Name", r.Counterparty.Name)
		billingAddress(info, r.Counterparty)
		b.invoiceBody(inv, r.VatRegisterRow, suppliersAccount, r.PurchaseOperation, "D")
	}
}

func billingAddress(info node, cp domain.Counterparty) {
	info.add("BillingAddress").
		text("City", cp.City).
		text("Country", valueOr(cp.Country, Country))
}

// invoiceBody writes the fields shared by sales and purchase invoices. A
// register row is reported as a single invoice line.
func (b *builder) invoiceBody(inv node, r domain.VatRegisterRow, account, operation, indicator string) {
	currency := b.currency()
	one := decimal.NewFromInt(1)
	if isCreditNoteCode(r.DocumentType) || r.TaxableBase.IsNegative() {
		indicator = flipIndicator(indicator)
	}

	inv.text("AccountID", account)
	inv.count("Period", r.PeriodMonth)
	inv.count("PeriodYear", r.PeriodYear)
	inv.date("InvoiceDate", r.DocumentDate)
	inv.text("InvoiceType", r.DocumentType)
	inv.text("SelfBillingIndicator", "N")
	inv.text("SourceID", valueOr(r.CreatedBy, "system"))
	inv.date("GLPostingDate", r.TaxEventDate)
	inv.text("TransactionID", r.DocumentID)

	line := inv.add("InvoiceLine")
	line.count("LineNumber", 1)
	line.text("AccountID", account)
	line.text("Description", valueOr(operation, r.VatOperationCode))
	line.date("TaxPointDate", r.TaxEventDate)
	line.money("InvoiceLineAmount", r.TaxableBase, currency, one)
	line.text("DebitCreditIndicator", indicator)
	invoiceTax(line.add("TaxInformation"), r, currency)

	totals := inv.add("InvoiceDocumentTotals")
	invoiceTax(totals.add("TaxInformationTotals"), r, currency)
	totals.amount("NetTotal", r.TaxableBase)
	totals.amount("GrossTotal", r.TotalAmount)
}

func invoiceTax(tax node, r domain.VatRegisterRow, currency string) {
	tax.text("TaxType", "VAT")
	tax.text("TaxCode", r.VatRate.String())
	tax.amount("TaxPercentage", r.VatRate)
	tax.amount("TaxBase", r.TaxableBase)
	tax.money("TaxAmount", r.VatAmount, currency, decimal.NewFromInt(1))
}

func flipIndicator(indicator string) string {
	if indicator == "C" {
		return "D"
	}
	return "C"
}

func (b *builder) payments(s node) {
	received, paid := decimal.Zero, decimal.Zero
	for _, p := range b.data.Payments {
		if p.SubjectType == domain.PaymentSubjectCustomer {
			received = received.Add(p.Amount)
		} else {
			paid = paid.Add(p.Amount)
		}
	}

	ps := s.add("Payments")
	ps.count("NumberOfEntries", len(b.data.Payments))
	ps.amount("TotalDebit", received)
	ps.amount("TotalCredit", paid)

	currency := b.currency()
	one := decimal.NewFromInt(1)
	for _, p := range b.data.Payments {
		method, mechanism := paymentMethodNonCash, mechanismBank
		if p.Method == domain.PaymentMethodCash {
			method, mechanism = paymentMethodCash, mechanismCash
		}
		indicator := "C"
		if p.SubjectType == domain.PaymentSubjectCustomer {
			indicator = "D"
		}
		transactionID := ""
		if p.JournalEntryID != nil {
			transactionID = *p.JournalEntryID
		}

		pay := ps.add("Payment")
		pay.text("PaymentRefNo", valueOr(p.Reference, p.PaymentID))
		pay.count("Period", int(p.PaymentDate.Month()))
		pay.count("PeriodYear", p.PaymentDate.Year())
		pay.text("TransactionID", transactionID)
		pay.date("TransactionDate", p.PaymentDate)
		pay.text("PaymentMethod", method)
		pay.text("Description", string(p.SubjectType))

		line := pay.add("PaymentLine")
		line.count("LineNumber", 1)
		line.text("SourceDocumentID", p.PaymentID)
		if p.ContraagentID != nil {
			if c, ok := b.contraagents[*p.ContraagentID]; ok {
				if p.SubjectType == domain.PaymentSubjectCustomer {
					line.text("CustomerID", c.SaftID())
				} else {
					line.text("SupplierID", c.SaftID())
				}
			}
		}
		line.text("PaymentMechanism", mechanism)
		line.text("DebitCreditIndicator", indicator)
		line.money("PaymentLineAmount", p.Amount, currency, one)

		pay.add("DocumentTotals").amount("GrossTotal", p.Amount)
	}
}

func (b *builder) assetTransactions(s node) {
	if len(b.data.AssetTransactions) == 0 {
		return
	}
	assets := make(map[string]domain.FixedAsset, len(b.data.Assets))
	for _, a := range b.data.Assets {
		assets[a.AssetID] = a
	}

	at := s.add("AssetTransactions")
	at.count("NumberOfAssetTransactions", len(b.data.AssetTransactions))
	for _, t := range b.data.AssetTransactions {
		code, ok := domain.AssetMovementTypes.FromInternalType(string(t.TransactionType))
		if !ok {
			code = domain.AssetMovementCorrection
		}
		description := t.Description
		if description == "" {
			if e, ok := domain.AssetMovementTypes.Lookup(code); ok {
				description = e.NameBG
			}
		}
		asset := assets[t.AssetID]
		bookValue := asset.AcquisitionCost
		if asset.BookValue != nil {
			bookValue = *asset.BookValue
		}
		transactionID := ""
		if t.JournalEntryID != nil {
			transactionID = *t.JournalEntryID
		}

		el := at.add("AssetTransaction")
		el.text("AssetTransactionID", t.AssetTransactionID)
		el.text("AssetID", valueOr(t.AssetCode, asset.Code))
		el.text("AssetTransactionType", code)
		el.text("Description", description)
		el.date("AssetTransactionDate", t.TransactionDate)
		if t.SupplierID != "" {
			el.add("AssetSupplierCustomer").
				text("SupplierCustomerName", asset.SupplierName).
				text("SupplierCustomerID", t.SupplierID)
		}
		el.text("TransactionID", transactionID)
		el.add("AssetTransactionValuations").
			add("AssetTransactionValuation").
			amount("AcquisitionAndProductionCostsOnTransaction", asset.AcquisitionCost).
			amount("BookValueOnTransaction", bookValue).
			amount("AssetTransactionAmount", t.Amount)
	}
}

func stockMovementCode(m domain.StockMovement) string {
	if m.MovementType == domain.StockAdjustment && m.Quantity.IsNegative() {
		return "120"
	}
	code, ok := domain.StockMovementTypes.FromInternalType(strings.ToLower(string(m.MovementType)))
	if !ok {
		return domain.StockMovementOther
	}
	return code
}

func (b *builder) movementOfGoods(s node) {
	if len(b.data.StockMovements) == 0 {
		return
	}
	issued, received := decimal.Zero, decimal.Zero
	for _, m := range b.data.StockMovements {
		if m.Quantity.IsNegative() {
			issued = issued.Add(m.Quantity.Neg())
		} else {
			received = received.Add(m.Quantity)
		}
	}

	mg := s.add("MovementOfGoods")
	mg.count("NumberOfMovementLines", len(b.data.StockMovements))
	mg.amount("TotalQuantityIssued", issued)
	mg.amount("TotalQuantityReceived", received)
	for _, m := range b.data.StockMovements {
		sm := mg.add("StockMovement")
		sm.text("MovementReference", m.MovementID)
		sm.date("MovementDate", m.MovementDate)
		sm.text("MovementType", stockMovementCode(m))
		sm.text("DocumentReference", m.DocumentRef)
		sm.add("Line").
			count("LineNumber", 1).
			text("AccountID", defaultStockAccount).
			text("WarehouseID", m.WarehouseID).
			text("ProductCode", m.ProductCode).
			amount("Quantity", m.Quantity).
			text("UnitOfMeasure", valueOr(m.UnitOfMeasure, defaultUOM)).
			amount("BookValue", m.BookValue)
	}
}
