package nra

import (
	"cmp"
	"io"
	"slices"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

// Field widths of a register line.
const (
	indexWidth        = 15
	docTypeWidth      = 2
	docNumberWidth    = 20
	vatNumberWidth    = 15
	counterpartyWidth = 70
	amountWidth       = 15

	RegisterLineLength = indexWidth + docTypeWidth + docNumberWidth + dateWidth + vatNumberWidth + counterpartyWidth + 2*amountWidth
)

// WriteSalesRegister writes the sales journal of one period.
func WriteSalesRegister(w io.Writer, rows []domain.VatSalesRegister) error {
	out := make([]domain.VatRegisterRow, len(rows))
	for i, r := range rows {
		out[i] = r.VatRegisterRow
	}
	return writeRegister(w, out)
}

// WritePurchaseRegister writes the purchase journal of one period.
func WritePurchaseRegister(w io.Writer, rows []domain.VatPurchaseRegister) error {
	out := make([]domain.VatRegisterRow, len(rows))
	for i, r := range rows {
		out[i] = r.VatRegisterRow
	}
	return writeRegister(w, out)
}

// writeRegister numbers rows from 1 after ordering them by document date,
// then document number.
func writeRegister(w io.Writer, rows []domain.VatRegisterRow) error {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b domain.VatRegisterRow) int {
		if c := a.DocumentDate.Compare(b.DocumentDate); c != 0 {
			return c
		}
		return cmp.Compare(a.DocumentNumber, b.DocumentNumber)
	})

	lw := newLineWriter(w)
	for i, r := range sorted {
		index, err := count(i+1, indexWidth)
		if err != nil {
			return err
		}
		base, err := number(r.TaxableBase, amountWidth, 2)
		if err != nil {
			return err
		}
		vat, err := number(r.VatAmount, amountWidth, 2)
		if err != nil {
			return err
		}
		err = lw.writeLine(
			index,
			text(r.DocumentType, docTypeWidth),
			text(r.DocumentNumber, docNumberWidth),
			date(r.DocumentDate),
			text(r.Counterparty.VatNumber, vatNumberWidth),
			text(r.Counterparty.Name, counterpartyWidth),
			base,
			vat,
		)
		if err != nil {
			return err
		}
	}
	return lw.Close()
}
