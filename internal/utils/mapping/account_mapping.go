package mapping

import (
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/SscSPs/erp_accounting_core/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		OrganizationID: d.OrganizationID,
		Code:           d.Code,
		Name:           d.Name,
		AccountType:    models.AccountType(d.AccountType),
		StandardCode:   NullString(d.StandardCode),
		OpeningBalance: d.OpeningBalance,
		Balance:        d.Balance,
		IsActive:       d.IsActive,
		AuditFields:    models.AuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		OrganizationID: m.OrganizationID,
		Code:           m.Code,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		StandardCode:   m.StandardCode.String,
		OpeningBalance: m.OpeningBalance,
		Balance:        m.Balance,
		IsActive:       m.IsActive,
		AuditFields:    domain.AuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
