package saft

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

const (
	defaultUOM          = "PCE"
	defaultStockAccount = "302"
	defaultAssetAccount = "205"
	defaultCity         = "София"
	defaultDepreciation = "Линеен"
	defaultTaxCategory  = "V"
	defaultLifeYears    = 5
)

// taxDepreciationRates are the annual tax depreciation rates per category.
var taxDepreciationRates = map[string]decimal.Decimal{
	"I":   decimal.NewFromInt(4),
	"II":  decimal.NewFromInt(30),
	"III": decimal.NewFromInt(10),
	"IV":  decimal.NewFromInt(50),
	"V":   decimal.NewFromInt(25),
	"VI":  decimal.NewFromInt(100),
	"VII": decimal.NewFromInt(15),
}

type taxTableEntry struct {
	code, description, detail string
	rate                      int64
}

var taxTable = []taxTableEntry{
	{"20", "ДДС 20%", "Стандартна ставка", 20},
	{"9", "ДДС 9%", "Намалена ставка", 9},
	{"0", "ДДС 0%", "Нулева ставка", 0},
}

var uomTable = []struct{ code, description string }{
	{"PCE", "Брой"},
	{"KGM", "Килограм"},
	{"MTR", "Метър"},
	{"LTR", "Литър"},
}

func (b *builder) masterFiles(file node) {
	switch b.data.Request.Variant {
	case domain.SaftMonthly:
		m := file.add("MasterFilesMonthly")
		b.generalLedgerAccounts(m)
		b.customers(m)
		b.suppliers(m)
		b.taxTable(m)
		b.uomTable(m)
		b.products(m)
	case domain.SaftAnnual:
		m := file.add("MasterFilesAnnual")
		b.assets(m)
	case domain.SaftOnDemand:
		m := file.add("MasterFilesOnDemand")
		b.products(m)
		b.physicalStock(m)
	}
}

// sideBalances splits a debit-positive net balance into debit and credit
// columns. A credit-nature account with a debit net shows on the debit side.
func sideBalances(net decimal.Decimal) (debit, credit decimal.Decimal) {
	if net.IsNegative() {
		return decimal.Zero, net.Neg()
	}
	return net, decimal.Zero
}

func (b *builder) generalLedgerAccounts(m node) {
	gl := m.add("GeneralLedgerAccounts")
	for _, acc := range b.data.Accounts {
		openDr, openCr := sideBalances(acc.OpeningNet())
		closeDr, closeCr := sideBalances(acc.ClosingNet())

		a := gl.add("Account")
		a.text("AccountID", acc.Code)
		a.text("AccountDescription", acc.Name)
		a.text("TaxpayerAccountID", acc.TaxpayerCode())
		a.text("AccountType", "Bifunctional")
		a.date("AccountCreationDate", acc.CreatedAt)
		a.amount("OpeningDebitBalance", openDr)
		a.amount("OpeningCreditBalance", openCr)
		a.amount("ClosingDebitBalance", closeDr)
		a.amount("ClosingCreditBalance", closeCr)
	}
}

func (b *builder) customers(m node) {
	list := m.add("Customers")
	for _, c := range b.data.Contraagents {
		if !c.IsCustomer {
			continue
		}
		cust := list.add("Customer")
		companyStructure(cust, c)
		cust.text("CustomerID", c.SaftID())
		cust.text("SelfBillingIndicator", yesNo(c.SelfBillingIndicator))
		cust.text("AccountID", customersAccount)
		cust.amount("OpeningDebitBalance", c.OpeningDebitBalance)
		cust.amount("ClosingDebitBalance", c.ClosingDebitBalance)
	}
}

func (b *builder) suppliers(m node) {
	list := m.add("Suppliers")
	for _, c := range b.data.Contraagents {
		if !c.IsSupplier {
			continue
		}
		sup := list.add("Supplier")
		companyStructure(sup, c)
		sup.text("SupplierID", c.SaftID())
		sup.text("SelfBillingIndicator", yesNo(c.SelfBillingIndicator))
		sup.text("AccountID", suppliersAccount)
		sup.amount("OpeningCreditBalance", c.OpeningCreditBalance)
		sup.amount("ClosingCreditBalance", c.ClosingCreditBalance)
	}
}

func companyStructure(parent node, c domain.Contraagent) {
	s := parent.add("CompanyStructure")
	s.text("RegistrationNumber", FormatEIK(c.RegistrationNumber))
	s.text("Name", c.Name)

	addr := s.add("Address")
	addr.text("StreetName", c.StreetName)
	addr.text("Number", c.BuildingNumber)
	addr.text("City", valueOr(c.City, defaultCity))
	addr.text("PostalCode", c.PostalCode)
	addr.text("Country", valueOr(c.Country, Country))
	addr.text("AddressType", "StreetAddress")

	if c.RegistrationNumber != "" || c.VatNumber != "" {
		taxType := companyTaxType
		if c.VatNumber != "" {
			taxType = vatRegisteredTaxType
		}
		reg := s.add("TaxRegistration")
		reg.text("TaxRegistrationNumber", FormatEIK(c.RegistrationNumber))
		reg.text("TaxType", taxType)
		reg.text("TaxNumber", c.VatNumber)
	}
	if c.IBAN != "" {
		s.add("BankAccount").text("IBANNumber", c.IBAN)
	}
	s.text("RelatedParty", yesNo(c.RelatedParty))
}

func (b *builder) taxTable(m node) {
	t := m.add("TaxTable")
	for _, e := range taxTable {
		entry := t.add("TaxTableEntry")
		entry.text("TaxType", "VAT")
		entry.text("Description", e.description)
		d := entry.add("TaxCodeDetails")
		d.text("TaxCode", e.code)
		d.text("Description", e.detail)
		d.amount("TaxPercentage", decimal.NewFromInt(e.rate))
		d.text("Country", Country)
	}
}

func (b *builder) uomTable(m node) {
	t := m.add("UOMTable")
	for _, u := range uomTable {
		t.add("UOMTableEntry").
			text("UnitOfMeasure", u.code).
			text("Description", u.description)
	}
}

func (b *builder) products(m node) {
	list := m.add("Products")
	for _, p := range b.data.Products {
		goods := "G"
		if p.IsService {
			goods = "S"
		}
		uom := valueOr(p.UnitOfMeasure, defaultUOM)

		prod := list.add("Product")
		prod.text("ProductCode", valueOr(p.Code, p.ProductID))
		prod.text("GoodsServicesID", goods)
		prod.text("ProductGroup", p.Name)
		prod.text("Description", p.Name)
		prod.text("ProductCommodityCode", p.CommodityCode)
		prod.text("UOMBase", uom)
		prod.text("UOMStandard", uom)
		prod.amount("UOMToUOMBaseConversionFactor", decimal.NewFromInt(1))
	}
}

func (b *builder) physicalStock(m node) {
	if len(b.data.StockLevels) == 0 {
		return
	}
	ps := m.add("PhysicalStock")
	for _, s := range b.data.StockLevels {
		e := ps.add("PhysicalStockEntry")
		e.text("WarehouseID", s.WarehouseID)
		e.text("ProductCode", s.ProductCode)
		e.text("StockAccountID", valueOr(s.StockAccountID, defaultStockAccount))
		e.amount("Quantity", s.Quantity)
		e.text("UOMPhysicalStock", valueOr(s.UnitOfMeasure, defaultUOM))
		e.amount("UnitPrice", s.UnitPrice)
		e.amount("StockValue", s.StockValue())
	}
}

func (b *builder) assets(m node) {
	if len(b.data.Assets) == 0 {
		return
	}
	list := m.add("Assets")
	for _, a := range b.data.Assets {
		account := valueOr(a.AccountCode, defaultAssetAccount)

		el := list.add("Asset")
		el.text("AssetID", a.Code)
		el.text("AccountID", account)
		el.text("Description", a.Name)
		if a.SupplierName != "" {
			s := el.add("AssetSupplier")
			s.text("SupplierName", a.SupplierName)
			s.text("SupplierID", a.SupplierID)
			s.add("PostalAddress").
				text("City", a.SupplierCity).
				text("Country", valueOr(a.SupplierCountry, Country))
		}
		el.date("PurchaseOrderDate", a.AcquisitionDate)
		el.date("DateOfAcquisition", a.AcquisitionDate)
		startup := a.AcquisitionDate
		if a.StartupDate != nil {
			startup = *a.StartupDate
		}
		el.date("StartUpDate", startup)
		assetValuations(el, a, account)
	}
}

func assetValuations(el node, a domain.FixedAsset, account string) {
	costBegin := a.AcquisitionCost
	if a.AcquisitionCostBeginYear != nil {
		costBegin = *a.AcquisitionCostBeginYear
	}
	bookBegin := a.AcquisitionCost
	if a.BookValueBeginYear != nil {
		bookBegin = *a.BookValueBeginYear
	}
	bookEnd := a.AcquisitionCost
	if a.BookValue != nil {
		bookEnd = *a.BookValue
	}
	lifeYears := decimal.NewFromInt(defaultLifeYears)
	if a.UsefulLifeMonths > 0 {
		lifeYears = decimal.NewFromInt(int64(a.UsefulLifeMonths)).Div(decimal.NewFromInt(12))
	}
	category := strings.ToUpper(valueOr(a.TaxCategory, defaultTaxCategory))
	taxRate, ok := taxDepreciationRates[category]
	if !ok {
		taxRate = taxDepreciationRates[defaultTaxCategory]
	}

	v := el.add("Valuations")
	sap := v.add("ValuationSAP")
	sap.text("ValuationClass", account)
	sap.amount("AcquisitionAndProductionCostsBegin", costBegin)
	sap.amount("AcquisitionAndProductionCostsEnd", a.AcquisitionCost)
	sap.amount("InvestmentSupport", decimal.Zero)
	sap.amount("AssetLifeYear", lifeYears)
	sap.amount("AssetAddition", decimal.Zero)
	sap.amount("Transfers", decimal.Zero)
	sap.amount("AssetDisposal", decimal.Zero)
	sap.amount("BookValueBegin", bookBegin)
	sap.text("DepreciationMethod", valueOr(a.DepreciationMethod, defaultDepreciation))
	sap.amount("DepreciationPercentage", decimal.NewFromInt(100).Div(lifeYears))
	sap.amount("DepreciationForPeriod", a.DepreciationForPeriod)
	sap.amount("AppreciationForPeriod", decimal.Zero)
	sap.amount("AccumulatedDepreciation", a.AccumulatedDepreciation)
	sap.amount("BookValueEnd", bookEnd)

	dap := v.add("ValuationDAP")
	dap.text("ValuationClass", category)
	dap.text("CategoryTaxDepreciable", "ДМА")
	dap.amount("TaxDepreciableValue", a.AcquisitionCost)
	dap.amount("AccruedTaxDepreciation", a.AccumulatedDepreciation)
	dap.amount("TaxValueAsset", bookEnd)
	dap.amount("AnnualTaxDepreciationRate", taxRate)
	dap.count("MonthChangeAssetValue", 0)
	dap.count("MonthSuspensionResumptionAccrual", 0)
	dap.count("MonthWriteOffAccounting", 0)
	dap.count("MonthWriteOffTax", 0)
	dap.count("NumberMonthsDepreciationDuring", 12)
	dap.amount("DepreciationForPeriod", a.DepreciationForPeriod)
	dap.amount("AccumulatedDepreciation", a.AccumulatedDepreciation)
	dap.amount("TaxValueEndPeriod", bookEnd)
}

func yesNo(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}
