package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Contraagent is a customer and/or supplier of an organization.
type Contraagent struct {
	ContraagentID      string `json:"contraagentID"`
	OrganizationID     string `json:"organizationID"`
	Name               string `json:"name"`
	IsCompany          bool   `json:"isCompany"`
	IsCustomer         bool   `json:"isCustomer"`
	IsSupplier         bool   `json:"isSupplier"`
	RegistrationNumber string `json:"registrationNumber"`
	VatNumber          string `json:"vatNumber"`
	Address
	IBAN                  string          `json:"iban"`
	SelfBillingIndicator  bool            `json:"selfBillingIndicator"`
	RelatedParty          bool            `json:"relatedParty"`
	OpeningDebitBalance   decimal.Decimal `json:"openingDebitBalance"`
	OpeningCreditBalance  decimal.Decimal `json:"openingCreditBalance"`
	ClosingDebitBalance   decimal.Decimal `json:"closingDebitBalance"`
	ClosingCreditBalance  decimal.Decimal `json:"closingCreditBalance"`
	OpeningBalanceEntryID *string         `json:"openingBalanceEntryID,omitempty"`
	AuditFields
}

// HasOpeningBalance reports whether either opening side is non-zero.
func (c Contraagent) HasOpeningBalance() bool {
	return c.OpeningDebitBalance.IsPositive() || c.OpeningCreditBalance.IsPositive()
}

// OpeningBalanceReference is the journal reference used for opening balance
// postings: "OB-" plus the first eight hex characters of the ID.
func (c Contraagent) OpeningBalanceReference() string {
	id := strings.ReplaceAll(c.ContraagentID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return "OB-" + strings.ToUpper(id)
}

// SaftID is the identifier reported as CustomerID / SupplierID.
func (c Contraagent) SaftID() string {
	if c.RegistrationNumber != "" {
		return c.RegistrationNumber
	}
	return c.ContraagentID
}

// IsDomestic treats an empty country as Bulgaria.
func (c Contraagent) IsDomestic() bool {
	return c.Country == "" || strings.EqualFold(c.Country, "BG")
}

// ContraagentFilter narrows opening balance listings.
type ContraagentFilter struct {
	CustomersOnly bool
	SuppliersOnly bool
	WithBalance   bool
}

// OpeningBalanceTotals summarises opening balances per role.
type OpeningBalanceTotals struct {
	CustomerDebitTotal  decimal.Decimal `json:"customerDebitTotal"`
	CustomerCreditTotal decimal.Decimal `json:"customerCreditTotal"`
	CustomerCount       int             `json:"customerCount"`
	SupplierDebitTotal  decimal.Decimal `json:"supplierDebitTotal"`
	SupplierCreditTotal decimal.Decimal `json:"supplierCreditTotal"`
	SupplierCount       int             `json:"supplierCount"`
}
