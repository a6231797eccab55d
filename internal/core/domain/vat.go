package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductibleCreditType is the kind of input-VAT credit a purchase carries.
type DeductibleCreditType string

const (
	CreditFull          DeductibleCreditType = "full"
	CreditPartial       DeductibleCreditType = "partial"
	CreditNone          DeductibleCreditType = "none"
	CreditNotApplicable DeductibleCreditType = "not_applicable"
)

// Valid reports whether t is one of the known credit types.
func (t DeductibleCreditType) Valid() bool {
	switch t {
	case CreditFull, CreditPartial, CreditNone, CreditNotApplicable:
		return true
	}
	return false
}

// VatReturnStatus is the lifecycle state of a VAT return.
type VatReturnStatus string

const (
	VatReturnDraft     VatReturnStatus = "draft"
	VatReturnSubmitted VatReturnStatus = "submitted"
	VatReturnAccepted  VatReturnStatus = "accepted"
)

// CanTransitionTo enforces draft -> submitted -> accepted.
func (s VatReturnStatus) CanTransitionTo(next VatReturnStatus) bool {
	switch s {
	case VatReturnDraft:
		return next == VatReturnSubmitted
	case VatReturnSubmitted:
		return next == VatReturnAccepted
	}
	return false
}

// DocumentStatus is the lifecycle state of a sales or purchase document.
type DocumentStatus string

const (
	DocumentDraft     DocumentStatus = "draft"
	DocumentFinalized DocumentStatus = "finalized"
	DocumentCancelled DocumentStatus = "cancelled"
)

// Period is a fiscal month.
type Period struct {
	Year  int
	Month int
}

// Start is the first day of the period in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the period in UTC.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// Contains reports whether t falls on a day within the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && int(t.Month()) == p.Month
}

// Code is YYYYMM.
func (p Period) Code() string {
	return p.Start().Format("200601")
}

// PeriodOf returns the period a date belongs to.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// Counterparty is the party snapshot stored on a register row.
type Counterparty struct {
	ContraagentID *string `json:"contraagentID,omitempty"`
	Name          string  `json:"name"`
	VatNumber     string  `json:"vatNumber"`
	EIK           string  `json:"eik"`
	Country       string  `json:"country"`
	City          string  `json:"city"`
}

// VatClassification holds the statutory codes assigned to a register row.
type VatClassification struct {
	VatOperationCode      string `json:"vatOperationCode"`
	ColumnCode            string `json:"columnCode"`
	ViesIndicator         string `json:"viesIndicator,omitempty"`
	ReverseChargeSubcode  string `json:"reverseChargeSubcode,omitempty"`
	IsTriangularOperation bool   `json:"isTriangularOperation"`
	IsArt21Service        bool   `json:"isArt21Service"`
}

// VatRegisterRow carries the fields shared by both registers.
type VatRegisterRow struct {
	RegisterID     string          `json:"registerID"`
	OrganizationID string          `json:"organizationID"`
	PeriodYear     int             `json:"periodYear"`
	PeriodMonth    int             `json:"periodMonth"`
	DocumentID     string          `json:"documentID"`
	DocumentType   string          `json:"documentType"` // NRA document type code, e.g. "01"
	DocumentNumber string          `json:"documentNumber"`
	DocumentDate   time.Time       `json:"documentDate"`
	TaxEventDate   time.Time       `json:"taxEventDate"`
	Counterparty   Counterparty    `json:"counterparty"`
	TaxableBase    decimal.Decimal `json:"taxableBase"`
	VatRate        decimal.Decimal `json:"vatRate"`
	VatAmount      decimal.Decimal `json:"vatAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	VatClassification
	Notes string `json:"notes,omitempty"`
	AuditFields
}

// Period returns the fiscal month the row is declared in.
func (r VatRegisterRow) Period() Period {
	return Period{Year: r.PeriodYear, Month: r.PeriodMonth}
}

// VatSalesRegister is one line of the sales journal (дневник продажби).
type VatSalesRegister struct {
	VatRegisterRow
	SalesOperation string `json:"salesOperation,omitempty"`
}

// VatPurchaseRegister is one line of the purchase journal (дневник покупки).
type VatPurchaseRegister struct {
	VatRegisterRow
	PurchaseOperation    string               `json:"purchaseOperation,omitempty"`
	IsDeductible         bool                 `json:"isDeductible"`
	DeductibleVatAmount  decimal.Decimal      `json:"deductibleVatAmount"`
	DeductibleCreditType DeductibleCreditType `json:"deductibleCreditType"`
}

// VatReturn is the monthly VAT declaration of an organization.
type VatReturn struct {
	VatReturnID           string          `json:"vatReturnID"`
	OrganizationID        string          `json:"organizationID"`
	PeriodYear            int             `json:"periodYear"`
	PeriodMonth           int             `json:"periodMonth"`
	Status                VatReturnStatus `json:"status"`
	SalesCount            int             `json:"salesCount"`
	PurchasesCount        int             `json:"purchasesCount"`
	TotalSalesTaxable     decimal.Decimal `json:"totalSalesTaxable"`
	TotalSalesVat         decimal.Decimal `json:"totalSalesVat"`
	TotalPurchasesTaxable decimal.Decimal `json:"totalPurchasesTaxable"`
	TotalPurchasesVat     decimal.Decimal `json:"totalPurchasesVat"`
	TotalDeductibleVat    decimal.Decimal `json:"totalDeductibleVat"`
	VatPayable            decimal.Decimal `json:"vatPayable"`
	VatRefundable         decimal.Decimal `json:"vatRefundable"`
	SubmissionDate        *time.Time      `json:"submissionDate,omitempty"`
	DueDate               time.Time       `json:"dueDate"`
	Notes                 string          `json:"notes,omitempty"`
	AuditFields
}

// Period returns the fiscal month of the return.
func (r VatReturn) Period() Period {
	return Period{Year: r.PeriodYear, Month: r.PeriodMonth}
}
