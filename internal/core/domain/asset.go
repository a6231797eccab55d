package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetTransactionType is the internal movement kind of a fixed asset.
type AssetTransactionType string

const (
	AssetAcquisition  AssetTransactionType = "acquisition"
	AssetDepreciation AssetTransactionType = "depreciation"
	AssetDisposal     AssetTransactionType = "disposal"
	AssetRevaluation  AssetTransactionType = "revaluation"
)

// FixedAsset is a fixed asset master record used by the annual SAF-T file.
type FixedAsset struct {
	AssetID                  string           `json:"assetID"`
	OrganizationID           string           `json:"organizationID"`
	Code                     string           `json:"code"`
	Name                     string           `json:"name"`
	AccountCode              string           `json:"accountCode"`
	AcquisitionDate          time.Time        `json:"acquisitionDate"`
	StartupDate              *time.Time       `json:"startupDate,omitempty"`
	AcquisitionCost          decimal.Decimal  `json:"acquisitionCost"`
	AcquisitionCostBeginYear *decimal.Decimal `json:"acquisitionCostBeginYear,omitempty"`
	BookValueBeginYear       *decimal.Decimal `json:"bookValueBeginYear,omitempty"`
	BookValue                *decimal.Decimal `json:"bookValue,omitempty"`
	UsefulLifeMonths         int              `json:"usefulLifeMonths"`
	DepreciationMethod       string           `json:"depreciationMethod"`
	DepreciationForPeriod    decimal.Decimal  `json:"depreciationForPeriod"`
	AccumulatedDepreciation  decimal.Decimal  `json:"accumulatedDepreciation"`
	TaxCategory              string           `json:"taxCategory"`
	SupplierName             string           `json:"supplierName"`
	SupplierID               string           `json:"supplierID"`
	SupplierCity             string           `json:"supplierCity"`
	SupplierCountry          string           `json:"supplierCountry"`
}

// AssetTransaction is one movement of a fixed asset.
type AssetTransaction struct {
	AssetTransactionID string               `json:"assetTransactionID"`
	OrganizationID     string               `json:"organizationID"`
	AssetID            string               `json:"assetID"`
	AssetCode          string               `json:"assetCode"`
	TransactionType    AssetTransactionType `json:"transactionType"`
	TransactionDate    time.Time            `json:"transactionDate"`
	Amount             decimal.Decimal      `json:"amount"` // signed for revaluations
	Description        string               `json:"description"`
	SupplierID         string               `json:"supplierID"`
	JournalEntryID     *string              `json:"journalEntryID,omitempty"`
}
