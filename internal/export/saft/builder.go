// Package saft builds the Bulgarian SAF-T audit file.
package saft

import (
	"fmt"
	"io"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
)

const (
	Prefix        = "nsSAFT"
	Namespace     = "mf:nra:dgti:dxxxx:declaration:v1"
	SchemaVersion = "007"
	Country       = "BG"

	dateLayout = "2006-01-02"

	customersAccount = "411"
	suppliersAccount = "401"
)

// Software identifies the generating application in the header.
type Software struct {
	CompanyName string
	ID          string
	Version     string
}

// LedgerLine is an entry line with the codes reported for it.
type LedgerLine struct {
	domain.EntryLine
	AccountCode  string
	TaxpayerCode string
	CustomerID   string
	SupplierID   string
}

// LedgerEntry is a posted journal entry with its lines.
type LedgerEntry struct {
	Entry domain.JournalEntry
	Lines []LedgerLine
}

// Data is everything one audit file reports. Only the parts the variant
// needs have to be filled.
type Data struct {
	Organization domain.Organization
	Request      domain.SaftRequest
	Software     Software
	GeneratedAt  time.Time

	Accounts     []domain.AccountPeriodBalance
	Contraagents []domain.Contraagent
	Products     []domain.Product
	Entries      []LedgerEntry

	Sales     []domain.VatSalesRegister
	Purchases []domain.VatPurchaseRegister
	Payments  []domain.Payment

	Assets            []domain.FixedAsset
	AssetTransactions []domain.AssetTransaction

	StockLevels    []domain.StockLevel
	StockMovements []domain.StockMovement
}

// Build composes the audit file document.
func Build(data Data) (*etree.Document, error) {
	if !data.Request.Variant.Valid() {
		return nil, fmt.Errorf("saft: unknown variant %q", data.Request.Variant)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(Prefix + ":AuditFile")
	root.CreateAttr("xmlns:"+Prefix, Namespace)
	root.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	b := &builder{data: data, contraagents: indexContraagents(data.Contraagents)}
	file := node{root}
	b.header(file)
	b.masterFiles(file)
	if data.Request.Variant == domain.SaftMonthly {
		b.generalLedgerEntries(file)
	}
	b.sourceDocuments(file)

	doc.Indent(2)
	return doc, nil
}

// Write builds the audit file and streams it to w.
func Write(w io.Writer, data Data) error {
	doc, err := Build(data)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}

// FileName is the download name of an audit file.
func FileName(v domain.SaftVariant) string {
	return "saft_" + string(v) + ".xml"
}

type builder struct {
	data         Data
	contraagents map[string]domain.Contraagent
}

func indexContraagents(list []domain.Contraagent) map[string]domain.Contraagent {
	out := make(map[string]domain.Contraagent, len(list))
	for _, c := range list {
		out[c.ContraagentID] = c
	}
	return out
}

func (b *builder) currency() string {
	return b.data.Organization.BaseCurrency()
}

// node wraps an element with helpers that create prefixed children.
type node struct {
	*etree.Element
}

func (n node) add(tag string) node {
	return node{n.CreateElement(Prefix + ":" + tag)}
}

func (n node) text(tag, value string) node {
	n.add(tag).SetText(value)
	return n
}

func (n node) count(tag string, v int) node {
	return n.text(tag, fmt.Sprintf("%d", v))
}

func (n node) amount(tag string, d decimal.Decimal) node {
	return n.text(tag, formatAmount(d))
}

func (n node) date(tag string, t time.Time) node {
	return n.text(tag, formatDate(t))
}

// money writes the Amount/CurrencyCode/CurrencyAmount/ExchangeRate group.
func (n node) money(tag string, amount decimal.Decimal, currency string, rate decimal.Decimal) node {
	if rate.IsZero() {
		rate = decimal.NewFromInt(1)
	}
	m := n.add(tag)
	m.amount("Amount", amount)
	m.text("CurrencyCode", currency)
	m.amount("CurrencyAmount", amount.Div(rate))
	m.amount("ExchangeRate", rate)
	return n
}

// formatAmount renders exactly two decimals. Signs are carried by
// Debit/Credit indicators, never by the number.
func formatAmount(d decimal.Decimal) string {
	return d.Abs().StringFixed(2)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
