package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodURI binds the fiscal month path segments.
type PeriodURI struct {
	Year  int `uri:"year" binding:"required,min=2000,max=2100"`
	Month int `uri:"month" binding:"required,min=1,max=12"`
}

// Period converts the path segments to a domain period.
func (p PeriodURI) Period() domain.Period {
	return domain.Period{Year: p.Year, Month: p.Month}
}

// CounterpartyRequest is the party snapshot of a registered document.
type CounterpartyRequest struct {
	ContraagentID *string `json:"contraagentID"`
	Name          string  `json:"name" binding:"required"`
	VatNumber     string  `json:"vatNumber"`
	EIK           string  `json:"eik"`
	Country       string  `json:"country" binding:"omitempty,len=2"`
	City          string  `json:"city"`
}

func (r CounterpartyRequest) toDomain() domain.Counterparty {
	return domain.Counterparty{
		ContraagentID: r.ContraagentID,
		Name:          r.Name,
		VatNumber:     r.VatNumber,
		EIK:           r.EIK,
		Country:       r.Country,
		City:          r.City,
	}
}

// documentDates parses the document and optional tax event dates.
func documentDates(documentDate string, taxEventDate *string) (time.Time, *time.Time, error) {
	doc, err := time.Parse(DateLayout, documentDate)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid documentDate %q", documentDate)
	}
	if taxEventDate == nil {
		return doc, nil, nil
	}
	tax, err := ParseDate(*taxEventDate)
	return doc, tax, err
}

// SalesDocumentRequest presents an outgoing document for VAT registration.
type SalesDocumentRequest struct {
	DocumentID     string              `json:"documentID" binding:"required"`
	Kind           string              `json:"kind"`
	TypeCode       string              `json:"typeCode" binding:"omitempty,len=2,numeric"`
	Number         string              `json:"number" binding:"required"`
	DocumentDate   string              `json:"documentDate" binding:"required,datetime=2006-01-02"`
	TaxEventDate   *string             `json:"taxEventDate" binding:"omitempty,datetime=2006-01-02"`
	Counterparty   CounterpartyRequest `json:"counterparty" binding:"required"`
	TaxableBase    decimal.Decimal     `json:"taxableBase"`
	VatRate        decimal.Decimal     `json:"vatRate" binding:"decimal_gte0"`
	Status         string              `json:"status" binding:"required,oneof=draft finalized cancelled"`
	IsService      bool                `json:"isService"`
	IsTriangular   bool                `json:"isTriangular"`
	IsExempt       bool                `json:"isExempt"`
	IsExport       bool                `json:"isExport"`
	SpecialZero    bool                `json:"specialZero"`
	ReverseCharge  bool                `json:"reverseCharge"`
	OperationLabel string              `json:"operationLabel"`
	Notes          string              `json:"notes"`
}

// ToDomain converts the request to a sales document.
func (r SalesDocumentRequest) ToDomain() (domain.SalesDocument, error) {
	docDate, taxDate, err := documentDates(r.DocumentDate, r.TaxEventDate)
	if err != nil {
		return domain.SalesDocument{}, err
	}
	return domain.SalesDocument{
		DocumentID:     r.DocumentID,
		Kind:           r.Kind,
		TypeCode:       r.TypeCode,
		Number:         r.Number,
		DocumentDate:   docDate,
		TaxEventDate:   taxDate,
		Counterparty:   r.Counterparty.toDomain(),
		TaxableBase:    r.TaxableBase,
		VatRate:        r.VatRate,
		Status:         domain.DocumentStatus(r.Status),
		IsService:      r.IsService,
		IsTriangular:   r.IsTriangular,
		IsExempt:       r.IsExempt,
		IsExport:       r.IsExport,
		SpecialZero:    r.SpecialZero,
		ReverseCharge:  r.ReverseCharge,
		OperationLabel: r.OperationLabel,
		Notes:          r.Notes,
	}, nil
}

// PurchaseDocumentRequest presents an incoming document for VAT registration.
type PurchaseDocumentRequest struct {
	DocumentID         string              `json:"documentID" binding:"required"`
	Kind               string              `json:"kind"`
	TypeCode           string              `json:"typeCode" binding:"omitempty,len=2,numeric"`
	Number             string              `json:"number" binding:"required"`
	DocumentDate       string              `json:"documentDate" binding:"required,datetime=2006-01-02"`
	TaxEventDate       *string             `json:"taxEventDate" binding:"omitempty,datetime=2006-01-02"`
	Counterparty       CounterpartyRequest `json:"counterparty" binding:"required"`
	TaxableBase        decimal.Decimal     `json:"taxableBase"`
	VatRate            decimal.Decimal     `json:"vatRate" binding:"decimal_gte0"`
	Status             string              `json:"status" binding:"required,oneof=draft finalized cancelled"`
	IsService          bool                `json:"isService"`
	IsTriangular       bool                `json:"isTriangular"`
	ReverseCharge      bool                `json:"reverseCharge"`
	CreditType         string              `json:"creditType" binding:"omitempty,oneof=full partial none not_applicable"`
	DeductibleFraction *decimal.Decimal    `json:"deductibleFraction" binding:"omitempty,decimal_gte0"`
	OperationLabel     string              `json:"operationLabel"`
	Notes              string              `json:"notes"`
}

// ToDomain converts the request to a purchase document. An empty credit type means full credit.
func (r PurchaseDocumentRequest) ToDomain() (domain.PurchaseDocument, error) {
	docDate, taxDate, err := documentDates(r.DocumentDate, r.TaxEventDate)
	if err != nil {
		return domain.PurchaseDocument{}, err
	}
	creditType := domain.DeductibleCreditType(r.CreditType)
	if creditType == "" {
		creditType = domain.CreditFull
	}
	return domain.PurchaseDocument{
		DocumentID:         r.DocumentID,
		Kind:               r.Kind,
		TypeCode:           r.TypeCode,
		Number:             r.Number,
		DocumentDate:       docDate,
		TaxEventDate:       taxDate,
		Counterparty:       r.Counterparty.toDomain(),
		TaxableBase:        r.TaxableBase,
		VatRate:            r.VatRate,
		Status:             domain.DocumentStatus(r.Status),
		IsService:          r.IsService,
		IsTriangular:       r.IsTriangular,
		ReverseCharge:      r.ReverseCharge,
		CreditType:         creditType,
		DeductibleFraction: r.DeductibleFraction,
		OperationLabel:     r.OperationLabel,
		Notes:              r.Notes,
	}, nil
}

// VatRegistersResponse carries both registers of a period.
type VatRegistersResponse struct {
	Period    string                       `json:"period"`
	Sales     []domain.VatSalesRegister    `json:"sales"`
	Purchases []domain.VatPurchaseRegister `json:"purchases"`
}
