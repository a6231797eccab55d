package domain

// AccountSlot is a semantic role an account plays in automatic postings.
type AccountSlot string

const (
	SlotCash                    AccountSlot = "cash"
	SlotBank                    AccountSlot = "bank"
	SlotAccountsReceivable      AccountSlot = "accounts_receivable"
	SlotAccountsPayable         AccountSlot = "accounts_payable"
	SlotVatSales                AccountSlot = "vat_sales"
	SlotVatPurchases            AccountSlot = "vat_purchases"
	SlotRevenue                 AccountSlot = "revenue"
	SlotExpense                 AccountSlot = "expense"
	SlotOpeningBalanceEquity    AccountSlot = "opening_balance_equity"
	SlotFixedAssets             AccountSlot = "fixed_assets"
	SlotDepreciationExpense     AccountSlot = "depreciation_expense"
	SlotAccumulatedDepreciation AccountSlot = "accumulated_depreciation"
)

// AllAccountSlots lists every slot in a stable order.
var AllAccountSlots = []AccountSlot{
	SlotCash, SlotBank, SlotAccountsReceivable, SlotAccountsPayable, SlotVatSales, SlotVatPurchases,
	SlotRevenue, SlotExpense, SlotOpeningBalanceEquity, SlotFixedAssets, SlotDepreciationExpense,
	SlotAccumulatedDepreciation,
}

// Address is a postal address as reported to the tax authority.
type Address struct {
	StreetName     string `json:"streetName"`
	BuildingNumber string `json:"buildingNumber"`
	Building       string `json:"building"`
	City           string `json:"city"`
	PostalCode     string `json:"postalCode"`
	Region         string `json:"region"`
	Country        string `json:"country"`
}

// Organization is the tenant that owns accounts, entries and registers.
// DefaultAccounts maps slots to account IDs; a missing key means unconfigured.
type Organization struct {
	OrganizationID     string `json:"organizationID"`
	Name               string `json:"name"`
	Slug               string `json:"slug"`
	VatNumber          string `json:"vatNumber"`
	RegistrationNumber string `json:"registrationNumber"` // EIK / BULSTAT
	Address
	LegalRepresentativeName string                 `json:"legalRepresentativeName"`
	LegalRepresentativeID   string                 `json:"legalRepresentativeID"`
	Phone                   string                 `json:"phone"`
	Email                   string                 `json:"email"`
	Website                 string                 `json:"website"`
	BankIBAN                string                 `json:"bankIBAN"`
	CurrencyCode            string                 `json:"currencyCode"`
	TaxAccountingBasis      string                 `json:"taxAccountingBasis"`
	TaxAuthority            string                 `json:"taxAuthority"`
	DefaultAccounts         map[AccountSlot]string `json:"defaultAccounts"`
	IsActive                bool                   `json:"isActive"`
	AuditFields
}

// DefaultAccount returns the configured account for a slot, if any.
func (o Organization) DefaultAccount(slot AccountSlot) (string, bool) {
	id, ok := o.DefaultAccounts[slot]
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// BaseCurrency falls back to BGN.
func (o Organization) BaseCurrency() string {
	if o.CurrencyCode == "" {
		return "BGN"
	}
	return o.CurrencyCode
}
