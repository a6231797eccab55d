package saft

import (
	"strings"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

const (
	eikWidth                 = 12
	companyTaxType           = "100020"
	vatRegisteredTaxType     = "100010"
	defaultRegion            = "22"
	defaultTaxBasis          = "A"
	defaultTaxAuthority      = "NRA"
	taxReportingJurisdiction = "NRA"
)

func (b *builder) header(file node) {
	org := b.data.Organization
	sw := b.data.Software

	h := file.add("Header")
	h.text("AuditFileVersion", SchemaVersion)
	h.text("AuditFileCountry", Country)
	h.text("AuditFileRegion", "BG-"+valueOr(org.Region, defaultRegion))
	h.date("AuditFileDateCreated", b.data.GeneratedAt)
	h.text("SoftwareCompanyName", sw.CompanyName)
	h.text("SoftwareID", sw.ID)
	h.text("SoftwareVersion", sw.Version)

	b.company(h)
	b.ownership(h)

	h.text("DefaultCurrencyCode", b.currency())
	b.selectionCriteria(h)
	h.text("HeaderComment", b.data.Request.Variant.HeaderComment())
	h.text("TaxAccountingBasis", valueOr(org.TaxAccountingBasis, defaultTaxBasis))
	h.text("TaxEntity", valueOr(org.Name, "Company"))
}

func (b *builder) company(h node) {
	org := b.data.Organization

	c := h.add("Company")
	c.text("RegistrationNumber", FormatEIK(org.RegistrationNumber))
	c.text("Name", org.Name)

	addr := c.add("Address")
	addr.text("StreetName", org.StreetName)
	addr.text("Number", org.BuildingNumber)
	addr.add("AdditionalAddressDetail")
	addr.text("Building", org.Building)
	addr.text("City", org.City)
	addr.text("PostalCode", org.PostalCode)
	addr.text("Region", org.Region)
	addr.text("Country", valueOr(org.Country, Country))
	addr.text("AddressType", "StreetAddress")

	first, last := SplitName(org.LegalRepresentativeName)
	contact := c.add("Contact")
	person := contact.add("ContactPerson")
	person.add("Title")
	person.text("FirstName", first)
	person.add("Initials")
	person.add("LastNamePrefix")
	person.text("LastName", last)
	person.add("BirthName")
	person.add("Salutation")
	person.text("OtherTitles", org.LegalRepresentativeName)
	contact.text("Telephone", org.Phone)
	contact.add("Fax")
	contact.text("Email", org.Email)
	contact.text("Website", org.Website)

	reg := c.add("TaxRegistration")
	reg.text("TaxRegistrationNumber", org.RegistrationNumber)
	reg.text("TaxType", companyTaxType)
	reg.text("TaxNumber", org.VatNumber)
	reg.text("TaxAuthority", valueOr(org.TaxAuthority, defaultTaxAuthority))
	reg.date("TaxVerificationDate", b.data.GeneratedAt)

	c.add("BankAccount").text("IBANNumber", org.BankIBAN)
}

func (b *builder) ownership(h node) {
	org := b.data.Organization

	o := h.add("Ownership")
	o.text("IsPartOfGroup", "1")
	o.text("BeneficialOwnerNameCyrillicBG", org.LegalRepresentativeName)
	o.text("BeneficialOwnerEGN", org.LegalRepresentativeID)
	o.add("UltimateOwnerNameCyrillicBG")
	o.add("UltimateOwnerUICBG")
	o.add("UltimateOwnerNameCyrillicForeign")
	o.add("UltimateOwnerNameLatinForeign")
	o.text("CountryForeign", Country)
}

func (b *builder) selectionCriteria(h node) {
	req := b.data.Request

	s := h.add("SelectionCriteria")
	s.text("TaxReportingJurisdiction", taxReportingJurisdiction)
	s.add("CompanyEntity")
	if req.Variant == domain.SaftMonthly {
		s.count("PeriodStart", req.Month)
		s.count("PeriodStartYear", req.Year)
		s.count("PeriodEnd", req.Month)
		s.count("PeriodEndYear", req.Year)
	} else {
		from, to := req.Range()
		s.date("SelectionStartDate", from)
		s.date("SelectionEndDate", to)
	}
	s.add("DocumentType")
	s.add("OtherCriteria")
}

// FormatEIK left-pads a registration number with zeros to twelve digits.
// A missing number becomes twelve zeros.
func FormatEIK(eik string) string {
	eik = strings.TrimSpace(eik)
	if len(eik) >= eikWidth {
		return eik
	}
	return strings.Repeat("0", eikWidth-len(eik)) + eik
}

// SplitName splits a full name at the first space.
func SplitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	first, last, _ := strings.Cut(full, " ")
	return first, strings.TrimSpace(last)
}
