package mapping

import (
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/SscSPs/erp_accounting_core/internal/models"
)

// ToModelVatRegisterRow converts the shared register fields. operation is the
// sales or purchase operation text.
func ToModelVatRegisterRow(d domain.VatRegisterRow, operation string) models.VatRegisterRow {
	return models.VatRegisterRow{
		RegisterID:            d.RegisterID,
		OrganizationID:        d.OrganizationID,
		PeriodYear:            d.PeriodYear,
		PeriodMonth:           d.PeriodMonth,
		DocumentID:            d.DocumentID,
		DocumentType:          d.DocumentType,
		DocumentNumber:        d.DocumentNumber,
		DocumentDate:          d.DocumentDate,
		TaxEventDate:          d.TaxEventDate,
		ContraagentID:         NullStringPtr(d.Counterparty.ContraagentID),
		CounterpartyName:      d.Counterparty.Name,
		CounterpartyVat:       NullString(d.Counterparty.VatNumber),
		CounterpartyEIK:       NullString(d.Counterparty.EIK),
		CounterpartyCountry:   NullString(d.Counterparty.Country),
		CounterpartyCity:      NullString(d.Counterparty.City),
		TaxableBase:           d.TaxableBase,
		VatRate:               d.VatRate,
		VatAmount:             d.VatAmount,
		TotalAmount:           d.TotalAmount,
		VatOperationCode:      d.VatOperationCode,
		ColumnCode:            NullString(d.ColumnCode),
		ViesIndicator:         NullString(d.ViesIndicator),
		ReverseChargeSubcode:  NullString(d.ReverseChargeSubcode),
		IsTriangularOperation: d.IsTriangularOperation,
		IsArt21Service:        d.IsArt21Service,
		Operation:             NullString(operation),
		Notes:                 NullString(d.Notes),
		AuditFields:           models.AuditFields(d.AuditFields),
	}
}

// ToDomainVatRegisterRow converts a model row back, returning the operation text separately.
func ToDomainVatRegisterRow(m models.VatRegisterRow) (domain.VatRegisterRow, string) {
	return domain.VatRegisterRow{
		RegisterID:     m.RegisterID,
		OrganizationID: m.OrganizationID,
		PeriodYear:     m.PeriodYear,
		PeriodMonth:    m.PeriodMonth,
		DocumentID:     m.DocumentID,
		DocumentType:   m.DocumentType,
		DocumentNumber: m.DocumentNumber,
		DocumentDate:   m.DocumentDate,
		TaxEventDate:   m.TaxEventDate,
		Counterparty: domain.Counterparty{
			ContraagentID: StringPtr(m.ContraagentID),
			Name:          m.CounterpartyName,
			VatNumber:     m.CounterpartyVat.String,
			EIK:           m.CounterpartyEIK.String,
			Country:       m.CounterpartyCountry.String,
			City:          m.CounterpartyCity.String,
		},
		TaxableBase: m.TaxableBase,
		VatRate:     m.VatRate,
		VatAmount:   m.VatAmount,
		TotalAmount: m.TotalAmount,
		VatClassification: domain.VatClassification{
			VatOperationCode:      m.VatOperationCode,
			ColumnCode:            m.ColumnCode.String,
			ViesIndicator:         m.ViesIndicator.String,
			ReverseChargeSubcode:  m.ReverseChargeSubcode.String,
			IsTriangularOperation: m.IsTriangularOperation,
			IsArt21Service:        m.IsArt21Service,
		},
		Notes:       m.Notes.String,
		AuditFields: domain.AuditFields(m.AuditFields),
	}, m.Operation.String
}
