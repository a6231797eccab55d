package dto

import (
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	StandardCode   string             `json:"standardCode"`
	IsActive       bool               `json:"isActive"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	Balance        decimal.Decimal    `json:"balance"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Code:           acc.Code,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		StandardCode:   acc.StandardCode,
		IsActive:       acc.IsActive,
		OpeningBalance: acc.OpeningBalance,
		Balance:        acc.Balance,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ListAccountsResponse wraps the chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return ListAccountsResponse{Accounts: res}
}
