package domain

import "strings"

// CodeEntry is one row of a statutory code table.
type CodeEntry struct {
	Code   string `json:"code"`
	Short  string `json:"short"`
	NameBG string `json:"nameBG"`
	NameEN string `json:"nameEN"`
}

// CodeTable is an immutable lookup of statutory codes with a translation
// from internal type names.
type CodeTable struct {
	entries  map[string]CodeEntry
	internal map[string]string
}

func newCodeTable(entries []CodeEntry, internal map[string]string) CodeTable {
	m := make(map[string]CodeEntry, len(entries))
	for _, e := range entries {
		m[e.Code] = e
	}
	return CodeTable{entries: m, internal: internal}
}

// Lookup returns the entry of a code.
func (t CodeTable) Lookup(code string) (CodeEntry, bool) {
	e, ok := t.entries[code]
	return e, ok
}

// Has reports whether code is part of the table.
func (t CodeTable) Has(code string) bool {
	_, ok := t.entries[code]
	return ok
}

// FromInternalType translates an internal type name into a statutory code.
func (t CodeTable) FromInternalType(internal string) (string, bool) {
	code, ok := t.internal[strings.ToLower(strings.TrimSpace(internal))]
	return code, ok
}

// Codes returns every code of the table.
func (t CodeTable) Codes() []string {
	out := make([]string, 0, len(t.entries))
	for c := range t.entries {
		out = append(out, c)
	}
	return out
}

// Sales journal columns.
const (
	SalesColumnStandard      = "11"
	SalesColumnIntraEUAcq    = "13"
	SalesColumnArt82         = "14"
	SalesColumnReduced       = "17"
	SalesColumnZeroChapter3  = "19"
	SalesColumnIntraEUSupply = "20"
	SalesColumnSpecialZero   = "21"
	SalesColumnArt21Service  = "22"
	SalesColumnExempt        = "24"
	SalesColumnTriangular    = "25"
)

// Purchase journal (declaration) columns.
const (
	PurchaseColumnNoCredit      = "30"
	PurchaseColumnFullCredit    = "31"
	PurchaseColumnPartialCredit = "32"
)

// VIES indicators.
const (
	ViesGoods      = "k3"
	ViesTriangular = "k4"
	ViesServices   = "k5"
)

// Reverse-charge subcodes.
const (
	ReverseChargeIntraEUAcquisition = "01"
	ReverseChargeEUServices         = "02"
	ReverseChargeDomestic           = "03"
)

// Taxpayer registration types used in SAF-T.
const (
	TaxRegistrationVat        = "100010"
	TaxRegistrationOther      = "100020"
	TaxRegistrationNonTaxable = "100030"
)

// VAT operation keys stored in vat_operation_code.
const (
	VatOpStandard              = "standard"
	VatOpReduced               = "reduced"
	VatOpZeroRated             = "zero_rated"
	VatOpIntraEUSupply         = "intra_eu_supply"
	VatOpSpecialZero           = "special_zero"
	VatOpEUService             = "eu_service"
	VatOpExempt                = "exempt"
	VatOpTriangular            = "triangular"
	VatOpIntraEUAcquisition    = "intra_eu_acquisition"
	VatOpEUServiceReceived     = "eu_service_received"
	VatOpDomesticReverseCharge = "domestic_reverse_charge"
	VatOpDomesticPurchase      = "domestic_purchase"
)

// VatOperationCodes classifies what kind of supply a register row records.
// Short cites the provision of the VAT Act (ЗДДС) the operation falls under.
var VatOperationCodes = newCodeTable([]CodeEntry{
	{Code: VatOpStandard, Short: "чл. 66, ал. 1, т. 1 ЗДДС", NameBG: "Облагаема доставка със ставка 20%", NameEN: "Taxable supply at 20%"},
	{Code: VatOpReduced, Short: "чл. 66, ал. 1, т. 2 ЗДДС", NameBG: "Облагаема доставка със ставка 9%", NameEN: "Taxable supply at 9%"},
	{Code: VatOpZeroRated, Short: "глава трета ЗДДС", NameBG: "Доставка със ставка 0% по глава трета", NameEN: "Zero-rated supply, chapter 3"},
	{Code: VatOpIntraEUSupply, Short: "чл. 7 ЗДДС", NameBG: "Вътреобщностна доставка на стоки", NameEN: "Intra-community supply of goods"},
	{Code: VatOpSpecialZero, Short: "чл. 140, 146 и 173 ЗДДС", NameBG: "Доставка със ставка 0% по чл. 140, 146 и 173", NameEN: "Zero-rated supply under art. 140, 146, 173"},
	{Code: VatOpEUService, Short: "чл. 21, ал. 2 ЗДДС", NameBG: "Услуги по чл. 21, ал. 2 с място на изпълнение друга държава членка", NameEN: "Services under art. 21(2) taxable in another member state"},
	{Code: VatOpExempt, Short: "глава четвърта ЗДДС", NameBG: "Освободена доставка", NameEN: "Exempt supply"},
	{Code: VatOpTriangular, Short: "чл. 15 ЗДДС", NameBG: "Доставка като посредник в тристранна операция", NameEN: "Supply as intermediary in a triangular operation"},
	{Code: VatOpIntraEUAcquisition, Short: "чл. 13 ЗДДС", NameBG: "Вътреобщностно придобиване на стоки", NameEN: "Intra-community acquisition of goods"},
	{Code: VatOpEUServiceReceived, Short: "чл. 82, ал. 2 ЗДДС", NameBG: "Получени услуги по чл. 82, ал. 2", NameEN: "Services received under art. 82(2)"},
	{Code: VatOpDomesticReverseCharge, Short: "чл. 163а ЗДДС", NameBG: "Доставка по чл. 163а", NameEN: "Domestic reverse charge under art. 163a"},
	{Code: VatOpDomesticPurchase, Short: "чл. 69 ЗДДС", NameBG: "Доставка от местен доставчик", NameEN: "Domestic purchase"},
}, map[string]string{
	VatOpStandard:              VatOpStandard,
	VatOpReduced:               VatOpReduced,
	VatOpZeroRated:             VatOpZeroRated,
	"export":                   VatOpZeroRated,
	VatOpIntraEUSupply:         VatOpIntraEUSupply,
	VatOpSpecialZero:           VatOpSpecialZero,
	VatOpEUService:             VatOpEUService,
	VatOpExempt:                VatOpExempt,
	VatOpTriangular:            VatOpTriangular,
	VatOpIntraEUAcquisition:    VatOpIntraEUAcquisition,
	VatOpEUServiceReceived:     VatOpEUServiceReceived,
	VatOpDomesticReverseCharge: VatOpDomesticReverseCharge,
	VatOpDomesticPurchase:      VatOpDomesticPurchase,
})

// VatColumnCodes lists the journal columns a row can be booked under.
var VatColumnCodes = newCodeTable([]CodeEntry{
	{Code: SalesColumnStandard, Short: "ДО 20%", NameBG: "Данъчна основа на облагаемите доставки със ставка 20%", NameEN: "Taxable base at 20%"},
	{Code: SalesColumnIntraEUAcq, Short: "ДО ВОП", NameBG: "Данъчна основа на ВОП", NameEN: "Taxable base of intra-community acquisitions"},
	{Code: SalesColumnArt82, Short: "ДО чл.82", NameBG: "Данъчна основа на получените доставки по чл. 82, ал. 2-6", NameEN: "Taxable base of supplies received under art. 82(2)-(6)"},
	{Code: SalesColumnReduced, Short: "ДО 9%", NameBG: "Данъчна основа на облагаемите доставки със ставка 9%", NameEN: "Taxable base at 9%"},
	{Code: SalesColumnZeroChapter3, Short: "0% гл.3", NameBG: "Доставки със ставка 0% по глава трета", NameEN: "Zero-rated supplies, chapter 3"},
	{Code: SalesColumnIntraEUSupply, Short: "ВОД", NameBG: "Вътреобщностни доставки", NameEN: "Intra-community supplies"},
	{Code: SalesColumnSpecialZero, Short: "0% чл.140", NameBG: "Доставки със ставка 0% по чл. 140, 146 и 173", NameEN: "Zero-rated supplies under art. 140, 146, 173"},
	{Code: SalesColumnArt21Service, Short: "чл.21(2)", NameBG: "Доставки на услуги по чл. 21, ал. 2", NameEN: "Services under art. 21(2)"},
	{Code: SalesColumnExempt, Short: "Освободени", NameBG: "Освободени доставки", NameEN: "Exempt supplies"},
	{Code: SalesColumnTriangular, Short: "Посредник", NameBG: "Доставки като посредник в тристранна операция", NameEN: "Triangular operation, intermediary"},
	{Code: PurchaseColumnNoCredit, Short: "Без ДК", NameBG: "Получени доставки без право на данъчен кредит", NameEN: "Purchases without input credit"},
	{Code: PurchaseColumnFullCredit, Short: "Пълен ДК", NameBG: "Получени доставки с право на пълен данъчен кредит", NameEN: "Purchases with full input credit"},
	{Code: PurchaseColumnPartialCredit, Short: "Частичен ДК", NameBG: "Получени доставки с право на частичен данъчен кредит", NameEN: "Purchases with partial input credit"},
}, map[string]string{
	"standard":             SalesColumnStandard,
	"intra_eu_acquisition": SalesColumnIntraEUAcq,
	"eu_service_received":  SalesColumnArt82,
	"reduced":              SalesColumnReduced,
	"zero_rated":           SalesColumnZeroChapter3,
	"export":               SalesColumnZeroChapter3,
	"intra_eu_supply":      SalesColumnIntraEUSupply,
	"special_zero":         SalesColumnSpecialZero,
	"eu_service":           SalesColumnArt21Service,
	"exempt":               SalesColumnExempt,
	"triangular":           SalesColumnTriangular,
	"none":                 PurchaseColumnNoCredit,
	"not_applicable":       PurchaseColumnNoCredit,
	"full":                 PurchaseColumnFullCredit,
	"partial":              PurchaseColumnPartialCredit,
})

// DeductibleCreditTypes describes the input credit options.
var DeductibleCreditTypes = newCodeTable([]CodeEntry{
	{Code: string(CreditFull), Short: "Пълен", NameBG: "С право на пълен данъчен кредит", NameEN: "Full credit"},
	{Code: string(CreditPartial), Short: "Частичен", NameBG: "С право на частичен данъчен кредит", NameEN: "Partial credit"},
	{Code: string(CreditNone), Short: "Без", NameBG: "Без право на данъчен кредит", NameEN: "No credit"},
	{Code: string(CreditNotApplicable), Short: "Неприложимо", NameBG: "Неприложимо", NameEN: "Not applicable"},
}, map[string]string{
	"full":           string(CreditFull),
	"partial":        string(CreditPartial),
	"none":           string(CreditNone),
	"no_credit":      string(CreditNone),
	"not_applicable": string(CreditNotApplicable),
})

// NRA document type codes.
const (
	DocTypeInvoice    = "01"
	DocTypeDebitNote  = "02"
	DocTypeCreditNote = "03"
)

// DocumentTypeCodes are the document types accepted in the VAT journals.
var DocumentTypeCodes = newCodeTable([]CodeEntry{
	{Code: DocTypeInvoice, Short: "Ф-ра", NameBG: "Фактура", NameEN: "Invoice"},
	{Code: DocTypeDebitNote, Short: "ДИ", NameBG: "Дебитно известие", NameEN: "Debit note"},
	{Code: DocTypeCreditNote, Short: "КИ", NameBG: "Кредитно известие", NameEN: "Credit note"},
	{Code: "07", Short: "МД", NameBG: "Митническа декларация", NameEN: "Customs declaration"},
	{Code: "09", Short: "Протокол", NameBG: "Протокол или друг документ", NameEN: "Protocol or other document"},
	{Code: "11", Short: "Ф-ра КО", NameBG: "Фактура - касова отчетност", NameEN: "Invoice, cash accounting"},
	{Code: "12", Short: "ДИ КО", NameBG: "Дебитно известие - касова отчетност", NameEN: "Debit note, cash accounting"},
	{Code: "13", Short: "КИ КО", NameBG: "Кредитно известие - касова отчетност", NameEN: "Credit note, cash accounting"},
	{Code: "81", Short: "Отчет", NameBG: "Отчет за извършените продажби", NameEN: "Sales report"},
	{Code: "91", Short: "Протокол чл.151в", NameBG: "Протокол за изискуемия данък по чл. 151в, ал. 3", NameEN: "Protocol for tax due under art. 151c(3)"},
}, map[string]string{
	"invoice":             DocTypeInvoice,
	"sales_invoice":       DocTypeInvoice,
	"purchase_invoice":    DocTypeInvoice,
	"debit_note":          DocTypeDebitNote,
	"credit_note":         DocTypeCreditNote,
	"customs_declaration": "07",
	"protocol":            "09",
	"vat_protocol":        "09",
	"cash_invoice":        "11",
	"cash_debit_note":     "12",
	"cash_credit_note":    "13",
	"sales_report":        "81",
	"art_151c_protocol":   "91",
})

// EUMemberStates holds ISO country codes of EU member states. Greece is listed
// under both ISO (GR) and VAT (EL) prefixes.
var EUMemberStates = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "CY": {}, "CZ": {}, "DE": {}, "DK": {}, "EE": {}, "EL": {}, "GR": {},
	"ES": {}, "FI": {}, "FR": {}, "HR": {}, "HU": {}, "IE": {}, "IT": {}, "LT": {}, "LU": {}, "LV": {},
	"MT": {}, "NL": {}, "PL": {}, "PT": {}, "RO": {}, "SE": {}, "SI": {}, "SK": {},
}

// IsEUCountry reports whether code names an EU member state.
func IsEUCountry(code string) bool {
	_, ok := EUMemberStates[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// IsDomesticCountry treats an empty country as Bulgaria.
func IsDomesticCountry(code string) bool {
	c := strings.ToUpper(strings.TrimSpace(code))
	return c == "" || c == "BG"
}
