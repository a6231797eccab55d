package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

// Account represents a ledger account row.
type Account struct {
	AccountID      string          `db:"account_id"`
	OrganizationID string          `db:"organization_id"`
	Code           string          `db:"code"`
	Name           string          `db:"name"`
	AccountType    AccountType     `db:"account_type"`
	StandardCode   sql.NullString  `db:"standard_code"` // Nullable
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	Balance        decimal.Decimal `db:"balance"` // Persisted running balance
	IsActive       bool            `db:"is_active"`
	AuditFields
}
