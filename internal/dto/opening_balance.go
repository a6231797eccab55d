package dto

import (
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetOpeningBalanceRequest replaces the opening balance of a contraagent.
// Both sides zero removes it.
type SetOpeningBalanceRequest struct {
	Debit       decimal.Decimal `json:"debit" binding:"decimal_gte0"`
	Credit      decimal.Decimal `json:"credit" binding:"decimal_gte0"`
	Description string          `json:"description" binding:"max=255"`
}

// OpeningBalanceResponse is the contraagent after the change and the entry
// posted for it, if any.
type OpeningBalanceResponse struct {
	Contraagent domain.Contraagent  `json:"contraagent"`
	Entry       *domain.PostedEntry `json:"entry,omitempty"`
}

// ListOpeningBalancesParams defines query parameters for opening balance listings.
type ListOpeningBalancesParams struct {
	CustomersOnly bool `form:"customersOnly"`
	SuppliersOnly bool `form:"suppliersOnly"`
	WithBalance   bool `form:"withBalance"`
}

// ToFilter converts the query to a contraagent filter.
func (p ListOpeningBalancesParams) ToFilter() domain.ContraagentFilter {
	return domain.ContraagentFilter{
		CustomersOnly: p.CustomersOnly,
		SuppliersOnly: p.SuppliersOnly,
		WithBalance:   p.WithBalance,
	}
}

// ListOpeningBalancesResponse wraps contraagents with their opening balances.
type ListOpeningBalancesResponse struct {
	Contraagents []domain.Contraagent `json:"contraagents"`
}
