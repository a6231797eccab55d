package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/SscSPs/erp_accounting_core/internal/utils/accounting"
)

var (
	hundred     = decimal.NewFromInt(100)
	reducedRate = decimal.NewFromInt(9)
)

// VatBreakdown is the decomposition of a document amount.
type VatBreakdown struct {
	TaxableBase decimal.Decimal
	VatAmount   decimal.Decimal
	Total       decimal.Decimal
}

// ComputeVat rounds the base and derives vat = round(base*rate/100, 2).
func ComputeVat(base, rate decimal.Decimal) VatBreakdown {
	b := accounting.Round(base)
	vat := accounting.Round(b.Mul(rate).Div(hundred))
	return VatBreakdown{TaxableBase: b, VatAmount: vat, Total: b.Add(vat)}
}

// DeductibleVat is the part of the input VAT the purchaser may credit.
func DeductibleVat(vat decimal.Decimal, creditType domain.DeductibleCreditType, fraction *decimal.Decimal) (decimal.Decimal, error) {
	switch creditType {
	case domain.CreditFull:
		return vat, nil
	case domain.CreditPartial:
		if fraction == nil {
			return decimal.Zero, fmt.Errorf("%w: partial credit requires a deductible fraction", apperrors.ErrValidation)
		}
		if !fraction.IsPositive() || fraction.GreaterThan(decimal.NewFromInt(1)) {
			return decimal.Zero, fmt.Errorf("%w: deductible fraction must be in (0, 1]", apperrors.ErrValidation)
		}
		return accounting.Round(vat.Mul(*fraction)), nil
	case domain.CreditNone, domain.CreditNotApplicable:
		return decimal.Zero, nil
	}
	return decimal.Zero, fmt.Errorf("%w: unknown deductible credit type %q", apperrors.ErrValidation, creditType)
}

// resolveDocumentTypeCode prefers an explicit NRA code and falls back to the
// internal kind, then to an invoice.
func resolveDocumentTypeCode(typeCode, kind string) (string, error) {
	if typeCode = strings.TrimSpace(typeCode); typeCode != "" {
		if !domain.DocumentTypeCodes.Has(typeCode) {
			return "", fmt.Errorf("%w: unknown document type code %q", apperrors.ErrValidation, typeCode)
		}
		return typeCode, nil
	}
	if code, ok := domain.DocumentTypeCodes.FromInternalType(kind); ok {
		return code, nil
	}
	return domain.DocTypeInvoice, nil
}

func isCreditNote(code string) bool {
	return code == domain.DocTypeCreditNote || code == "13"
}

// ClassifySale assigns the sales journal column, operation code and VIES
// indicator. Exemption and triangulation take precedence over the
// counterparty's country, which takes precedence over the rate.
func ClassifySale(doc domain.SalesDocument) domain.VatClassification {
	cp := doc.Counterparty
	foreignEU := !domain.IsDomesticCountry(cp.Country) && domain.IsEUCountry(cp.Country)
	registered := strings.TrimSpace(cp.VatNumber) != ""

	switch {
	case doc.IsExempt:
		return domain.VatClassification{VatOperationCode: domain.VatOpExempt, ColumnCode: domain.SalesColumnExempt}
	case doc.IsTriangular:
		return domain.VatClassification{
			VatOperationCode: domain.VatOpTriangular, ColumnCode: domain.SalesColumnTriangular,
			ViesIndicator: domain.ViesTriangular, IsTriangularOperation: true,
		}
	case foreignEU && registered && doc.IsService:
		return domain.VatClassification{
			VatOperationCode: domain.VatOpEUService, ColumnCode: domain.SalesColumnArt21Service,
			ViesIndicator: domain.ViesServices, IsArt21Service: true,
		}
	case foreignEU && registered:
		return domain.VatClassification{VatOperationCode: domain.VatOpIntraEUSupply, ColumnCode: domain.SalesColumnIntraEUSupply, ViesIndicator: domain.ViesGoods}
	case doc.SpecialZero:
		return domain.VatClassification{VatOperationCode: domain.VatOpSpecialZero, ColumnCode: domain.SalesColumnSpecialZero}
	case doc.IsExport || doc.VatRate.IsZero():
		return domain.VatClassification{VatOperationCode: domain.VatOpZeroRated, ColumnCode: domain.SalesColumnZeroChapter3}
	case doc.VatRate.Equal(reducedRate):
		return domain.VatClassification{VatOperationCode: domain.VatOpReduced, ColumnCode: domain.SalesColumnReduced}
	}
	return domain.VatClassification{VatOperationCode: domain.VatOpStandard, ColumnCode: domain.SalesColumnStandard}
}

// ClassifyPurchase assigns the purchase journal column from the credit type and
// the reverse-charge subcode from the supplier's country and the document hints.
func ClassifyPurchase(doc domain.PurchaseDocument, creditType domain.DeductibleCreditType) domain.VatClassification {
	out := domain.VatClassification{IsTriangularOperation: doc.IsTriangular}

	switch creditType {
	case domain.CreditFull:
		out.ColumnCode = domain.PurchaseColumnFullCredit
	case domain.CreditPartial:
		out.ColumnCode = domain.PurchaseColumnPartialCredit
	default:
		out.ColumnCode = domain.PurchaseColumnNoCredit
	}

	country := doc.Counterparty.Country
	foreign := !domain.IsDomesticCountry(country)
	switch {
	case foreign && doc.IsService:
		out.VatOperationCode = domain.VatOpEUServiceReceived
		out.ReverseChargeSubcode = domain.ReverseChargeEUServices
	case foreign && domain.IsEUCountry(country):
		out.VatOperationCode = domain.VatOpIntraEUAcquisition
		out.ReverseChargeSubcode = domain.ReverseChargeIntraEUAcquisition
	case doc.ReverseCharge:
		out.VatOperationCode = domain.VatOpDomesticReverseCharge
		out.ReverseChargeSubcode = domain.ReverseChargeDomestic
	default:
		out.VatOperationCode = domain.VatOpDomesticPurchase
	}
	return out
}
