package nra

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

const (
	orgVatWidth         = 15
	orgNameWidth        = 50
	periodWidth         = 6
	representativeWidth = 50
	countWidth          = 15

	DeclarationLineLength = orgVatWidth + orgNameWidth + periodWidth + representativeWidth + 2*countWidth + 4*amountWidth
)

// Declaration holds the period totals reported in DEKLAR.TXT.
type Declaration struct {
	Organization  domain.Organization
	Period        domain.Period
	SalesCount    int
	PurchaseCount int
	SalesBase     decimal.Decimal
	SalesVat      decimal.Decimal
	PurchaseBase  decimal.Decimal
	PurchaseVat   decimal.Decimal
}

// NewDeclaration sums the registers of a period.
func NewDeclaration(org domain.Organization, period domain.Period, sales []domain.VatSalesRegister, purchases []domain.VatPurchaseRegister) Declaration {
	d := Declaration{
		Organization:  org,
		Period:        period,
		SalesCount:    len(sales),
		PurchaseCount: len(purchases),
		SalesBase:     decimal.Zero,
		SalesVat:      decimal.Zero,
		PurchaseBase:  decimal.Zero,
		PurchaseVat:   decimal.Zero,
	}
	for _, s := range sales {
		d.SalesBase = d.SalesBase.Add(s.TaxableBase)
		d.SalesVat = d.SalesVat.Add(s.VatAmount)
	}
	for _, p := range purchases {
		d.PurchaseBase = d.PurchaseBase.Add(p.TaxableBase)
		d.PurchaseVat = d.PurchaseVat.Add(p.VatAmount)
	}
	return d
}

// WriteDeclaration writes the single DEKLAR.TXT line.
func WriteDeclaration(w io.Writer, d Declaration) error {
	fields := []string{
		text(d.Organization.VatNumber, orgVatWidth),
		text(d.Organization.Name, orgNameWidth),
		text(d.Period.Code(), periodWidth),
		text(d.Organization.LegalRepresentativeName, representativeWidth),
	}

	salesCount, err := count(d.SalesCount, countWidth)
	if err != nil {
		return err
	}
	purchaseCount, err := count(d.PurchaseCount, countWidth)
	if err != nil {
		return err
	}
	fields = append(fields, salesCount, purchaseCount)

	for _, v := range []decimal.Decimal{d.SalesBase, d.SalesVat, d.PurchaseBase, d.PurchaseVat} {
		s, err := number(v, amountWidth, 2)
		if err != nil {
			return err
		}
		fields = append(fields, s)
	}

	lw := newLineWriter(w)
	if err := lw.writeLine(fields...); err != nil {
		return err
	}
	return lw.Close()
}
