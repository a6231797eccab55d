package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSubject says what a payment settles.
type PaymentSubject string

const (
	PaymentSubjectSupplier PaymentSubject = "supplier"
	PaymentSubjectExpense  PaymentSubject = "expense"
	PaymentSubjectCustomer PaymentSubject = "customer"
)

// PaymentMethod picks the money account of a payment.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodBank PaymentMethod = "bank"
)

// Payment is a finalized payment handed to the journal engine.
type Payment struct {
	PaymentID      string          `json:"paymentID"`
	OrganizationID string          `json:"organizationID"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    time.Time       `json:"paymentDate"`
	SubjectType    PaymentSubject  `json:"subjectType"`
	Method         PaymentMethod   `json:"method"`
	ContraagentID  *string         `json:"contraagentID,omitempty"`
	Reference      string          `json:"reference"`
	Status         string          `json:"status"` // draft or posted
	JournalEntryID *string         `json:"journalEntryID,omitempty"`
}

// BankTransaction is an imported bank statement line.
type BankTransaction struct {
	BankTransactionID string          `json:"bankTransactionID"`
	OrganizationID    string          `json:"organizationID"`
	TransactionID     string          `json:"transactionID"` // bank side reference
	Amount            decimal.Decimal `json:"amount"`
	BookingDate       time.Time       `json:"bookingDate"`
	IsCredit          bool            `json:"isCredit"`
	CounterpartyName  string          `json:"counterpartyName"`
	Description       string          `json:"description"`
	CounterAccountID  *string         `json:"counterAccountID,omitempty"`
	ContraagentID     *string         `json:"contraagentID,omitempty"`
	JournalEntryID    *string         `json:"journalEntryID,omitempty"`
}
