package domain

import "time"

// SaftVariant selects which SAF-T file is produced.
type SaftVariant string

const (
	SaftMonthly  SaftVariant = "monthly"
	SaftAnnual   SaftVariant = "annual"
	SaftOnDemand SaftVariant = "on_demand"
)

// Valid reports whether v is a known variant.
func (v SaftVariant) Valid() bool {
	return v == SaftMonthly || v == SaftAnnual || v == SaftOnDemand
}

// HeaderComment is the one-letter SAF-T header comment of the variant.
func (v SaftVariant) HeaderComment() string {
	switch v {
	case SaftAnnual:
		return "A"
	case SaftOnDemand:
		return "D"
	}
	return "M"
}

// SaftRequest bounds an export. Monthly files use Year and Month; annual and
// on-demand files use From and To, defaulting to the calendar year.
type SaftRequest struct {
	Variant SaftVariant
	Year    int
	Month   int
	From    *time.Time
	To      *time.Time
}

// Range returns the inclusive first and last day covered by the request.
func (r SaftRequest) Range() (time.Time, time.Time) {
	if r.Variant == SaftMonthly {
		p := Period{Year: r.Year, Month: r.Month}
		return p.Start(), p.End()
	}
	from := time.Date(r.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(r.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	if r.From != nil {
		from = *r.From
	}
	if r.To != nil {
		to = *r.To
	}
	return from, to
}

// AssetMovementTypes are the SAF-T asset transaction types.
var AssetMovementTypes = newCodeTable([]CodeEntry{
	{Code: "10", Short: "ACQ", NameBG: "Придобиване", NameEN: "Acquisition"},
	{Code: "20", Short: "IMP", NameBG: "Подобрение/Увеличаване", NameEN: "Improvement"},
	{Code: "30", Short: "DEP", NameBG: "Амортизация", NameEN: "Depreciation"},
	{Code: "40", Short: "REV", NameBG: "Преоценка", NameEN: "Revaluation"},
	{Code: "50", Short: "DSP", NameBG: "Продажба", NameEN: "Disposal/Sale"},
	{Code: "60", Short: "SCR", NameBG: "Брак/Отписване", NameEN: "Scrap/Write-off"},
	{Code: "70", Short: "TRF", NameBG: "Вътрешен трансфер", NameEN: "Internal transfer"},
	{Code: "80", Short: "COR", NameBG: "Корекция", NameEN: "Correction"},
}, map[string]string{
	"acquisition":  "10",
	"purchase":     "10",
	"improvement":  "20",
	"increase":     "20",
	"depreciation": "30",
	"revaluation":  "40",
	"sale":         "50",
	"disposal":     "50",
	"scrap":        "60",
	"write_off":    "60",
	"transfer":     "70",
	"correction":   "80",
})

// AssetMovementCorrection is reported for asset movements without a mapping.
const AssetMovementCorrection = "80"

// StockMovementTypes are the SAF-T goods movement types.
var StockMovementTypes = newCodeTable([]CodeEntry{
	{Code: "10", NameBG: "Покупка", NameEN: "Purchase"},
	{Code: "20", NameBG: "Материални запаси от производство /продукция/", NameEN: "Production output"},
	{Code: "30", NameBG: "Продажба", NameEN: "Sale"},
	{Code: "40", NameBG: "Връщане на продадени продукти", NameEN: "Return of sold products"},
	{Code: "50", NameBG: "Връщане на закупени продукти", NameEN: "Return of purchased products"},
	{Code: "60", NameBG: "Получени отстъпки в натура", NameEN: "Discounts received in kind"},
	{Code: "65", NameBG: "Предоставени отстъпки в натура", NameEN: "Discounts given in kind"},
	{Code: "70", NameBG: "Материални запаси за производство", NameEN: "Inventory for production"},
	{Code: "80", NameBG: "Вътрешен трансфер", NameEN: "Internal transfer"},
	{Code: "90", NameBG: "Последващи разходи, капитализирани в стойността на стоките", NameEN: "Subsequent costs capitalized"},
	{Code: "100", NameBG: "Положителна ценова разлика", NameEN: "Positive price difference"},
	{Code: "101", NameBG: "Отрицателна ценова разлика", NameEN: "Negative price difference"},
	{Code: "110", NameBG: "Положителна корекция от инвентаризацията", NameEN: "Positive inventory adjustment"},
	{Code: "120", NameBG: "Отрицателна корекция от инвентаризацията", NameEN: "Negative inventory adjustment"},
	{Code: "130", NameBG: "Увеличение от преоценка на материалните запаси", NameEN: "Revaluation increase"},
	{Code: "140", NameBG: "Намаление от преоценка на материалните запаси", NameEN: "Revaluation decrease"},
	{Code: "150", NameBG: "Безвъзмездно предоставени материални запаси", NameEN: "Donated inventory"},
	{Code: "160", NameBG: "Брак на материални запаси", NameEN: "Scrapped inventory"},
	{Code: "170", NameBG: "Материални запаси с изтекъл срок на годност", NameEN: "Expired inventory"},
	{Code: "180", NameBG: "Други движения на материални запаси", NameEN: "Other inventory movements"},
}, map[string]string{
	"purchase":             "10",
	"production_output":    "20",
	"sale":                 "30",
	"sales_return":         "40",
	"purchase_return":      "50",
	"discount_received":    "60",
	"discount_given":       "65",
	"production_input":     "70",
	"transfer":             "80",
	"capitalized_costs":    "90",
	"price_increase":       "100",
	"price_decrease":       "101",
	"inventory_surplus":    "110",
	"adjustment":           "110",
	"inventory_shortage":   "120",
	"revaluation_increase": "130",
	"revaluation_decrease": "140",
	"donation":             "150",
	"scrap":                "160",
	"expired":              "170",
})

// StockMovementOther is reported for goods movements without a mapping.
const StockMovementOther = "180"
