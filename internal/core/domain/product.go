package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the SAF-T view of an item the organization trades.
type Product struct {
	ProductID      string `json:"productID"`
	OrganizationID string `json:"organizationID"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	CommodityCode  string `json:"commodityCode"`
	IsService      bool   `json:"isService"`
	UnitOfMeasure  string `json:"unitOfMeasure"`
}

// StockLevel is the quantity of a product held in a warehouse on a date.
type StockLevel struct {
	WarehouseID    string          `json:"warehouseID"`
	ProductCode    string          `json:"productCode"`
	StockAccountID string          `json:"stockAccountID"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitOfMeasure  string          `json:"unitOfMeasure"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
}

// StockValue is quantity times unit price.
func (s StockLevel) StockValue() decimal.Decimal {
	return s.Quantity.Mul(s.UnitPrice).Round(2)
}

// StockMovementType is the internal kind of a goods movement.
type StockMovementType string

const (
	StockPurchase   StockMovementType = "purchase"
	StockSale       StockMovementType = "sale"
	StockAdjustment StockMovementType = "adjustment"
	StockTransfer   StockMovementType = "transfer"
)

// StockMovement is one line of goods moving in or out of a warehouse.
// Quantity is positive for receipts and negative for issues.
type StockMovement struct {
	MovementID    string            `json:"movementID"`
	MovementType  StockMovementType `json:"movementType"`
	MovementDate  time.Time         `json:"movementDate"`
	DocumentRef   string            `json:"documentRef"`
	WarehouseID   string            `json:"warehouseID"`
	ProductCode   string            `json:"productCode"`
	Quantity      decimal.Decimal   `json:"quantity"`
	UnitOfMeasure string            `json:"unitOfMeasure"`
	BookValue     decimal.Decimal   `json:"bookValue"`
}
