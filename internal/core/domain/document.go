package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType is a numbered document kind.
type DocumentType string

const (
	DocSalesInvoice    DocumentType = "sales_invoice"
	DocPurchaseInvoice DocumentType = "purchase_invoice"
	DocPurchaseOrder   DocumentType = "purchase_order"
	DocQuotation       DocumentType = "quotation"
	DocCreditNote      DocumentType = "credit_note"
	DocDebitNote       DocumentType = "debit_note"
	DocStockTransfer   DocumentType = "stock_transfer"
	DocStockAdjustment DocumentType = "stock_adjustment"
	DocProformaInvoice DocumentType = "proforma_invoice"
	DocVatProtocol     DocumentType = "vat_protocol"
)

// DefaultDocumentPrefix is used for types without an entry in DocumentPrefixes.
const DefaultDocumentPrefix = "ДК"

// DocumentNumberDigits is the zero-padded width of the sequence part.
const DocumentNumberDigits = 10

// DocumentPrefixes maps numbered document types to their Cyrillic prefix.
var DocumentPrefixes = map[DocumentType]string{
	DocSalesInvoice:    "ИН",
	DocPurchaseInvoice: "ФП",
	DocPurchaseOrder:   "ПО",
	DocQuotation:       "ОФ",
	DocCreditNote:      "КН",
	DocDebitNote:       "ДН",
	DocStockTransfer:   "ПС",
	DocStockAdjustment: "КС",
	DocProformaInvoice: "ПФ",
	DocVatProtocol:     "ВП",
}

// Prefix returns the number prefix of the type.
func (t DocumentType) Prefix() string {
	if p, ok := DocumentPrefixes[t]; ok {
		return p
	}
	return DefaultDocumentPrefix
}

// DocumentSequence is the per-organization counter of one document type.
type DocumentSequence struct {
	OrganizationID string
	DocumentType   DocumentType
	NextNumber     int64
	UpdatedAt      time.Time
}

// DocumentUIDParts is the best-effort decomposition of a document UID.
type DocumentUIDParts struct {
	DocumentType string     `json:"documentType"`
	OrgPrefix    string     `json:"orgPrefix"`
	Number       string     `json:"number,omitempty"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
	Random       string     `json:"random,omitempty"`
}

// SalesDocument is a finalized (or not) outgoing document presented for VAT registration.
// TypeCode wins over Kind when both are set.
type SalesDocument struct {
	DocumentID     string          `json:"documentID"`
	Kind           string          `json:"kind"`
	TypeCode       string          `json:"typeCode"`
	Number         string          `json:"number"`
	DocumentDate   time.Time       `json:"documentDate"`
	TaxEventDate   *time.Time      `json:"taxEventDate,omitempty"`
	Counterparty   Counterparty    `json:"counterparty"`
	TaxableBase    decimal.Decimal `json:"taxableBase"`
	VatRate        decimal.Decimal `json:"vatRate"`
	Status         DocumentStatus  `json:"status"`
	IsService      bool            `json:"isService"`
	IsTriangular   bool            `json:"isTriangular"`
	IsExempt       bool            `json:"isExempt"`
	IsExport       bool            `json:"isExport"`
	SpecialZero    bool            `json:"specialZero"` // art. 140, 146, 173
	ReverseCharge  bool            `json:"reverseCharge"`
	OperationLabel string          `json:"operationLabel"`
	Notes          string          `json:"notes"`
}

// PurchaseDocument is an incoming document presented for VAT registration.
// DeductibleFraction is required when CreditType is partial.
type PurchaseDocument struct {
	DocumentID         string               `json:"documentID"`
	Kind               string               `json:"kind"`
	TypeCode           string               `json:"typeCode"`
	Number             string               `json:"number"`
	DocumentDate       time.Time            `json:"documentDate"`
	TaxEventDate       *time.Time           `json:"taxEventDate,omitempty"`
	Counterparty       Counterparty         `json:"counterparty"`
	TaxableBase        decimal.Decimal      `json:"taxableBase"`
	VatRate            decimal.Decimal      `json:"vatRate"`
	Status             DocumentStatus       `json:"status"`
	IsService          bool                 `json:"isService"`
	IsTriangular       bool                 `json:"isTriangular"`
	ReverseCharge      bool                 `json:"reverseCharge"` // domestic art. 163a
	CreditType         DeductibleCreditType `json:"creditType"`
	DeductibleFraction *decimal.Decimal     `json:"deductibleFraction,omitempty"`
	OperationLabel     string               `json:"operationLabel"`
	Notes              string               `json:"notes"`
}

// PendingDocument is a document of a period that has not been finalized yet.
type PendingDocument struct {
	DocumentKind string
	DocumentID   string
	Number       string
}
