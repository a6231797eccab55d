package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting_core/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// PaymentRecipe posts a finalized payment.
//
//	supplier: Dr payables        / Cr cash|bank
//	expense:  Dr expense         / Cr cash|bank
//	customer: Dr cash|bank       / Cr receivables
type PaymentRecipe struct {
	Payment domain.Payment
}

var _ portssvc.PostingRecipe = PaymentRecipe{}

func (r PaymentRecipe) Header() portssvc.RecipeHeader {
	return portssvc.RecipeHeader{
		EntryDate:   r.Payment.PaymentDate,
		Description: "Payment " + r.Payment.PaymentID,
		Reference:   PaymentReference(r.Payment.PaymentID),
	}
}

func (r PaymentRecipe) Lines(ctx context.Context, org domain.Organization, resolver portssvc.AccountResolverSvc) ([]domain.LineInput, error) {
	p := r.Payment
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	var moneySlot domain.AccountSlot
	switch p.Method {
	case domain.PaymentMethodCash:
		moneySlot = domain.SlotCash
	case domain.PaymentMethodBank:
		moneySlot = domain.SlotBank
	default:
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, p.Method)
	}

	var counterSlot domain.AccountSlot
	switch p.SubjectType {
	case domain.PaymentSubjectSupplier:
		counterSlot = domain.SlotAccountsPayable
	case domain.PaymentSubjectExpense:
		counterSlot = domain.SlotExpense
	case domain.PaymentSubjectCustomer:
		counterSlot = domain.SlotAccountsReceivable
	default:
		return nil, fmt.Errorf("%w: unknown payment subject %q", apperrors.ErrValidation, p.SubjectType)
	}

	accounts, err := resolver.ResolveAll(ctx, org, moneySlot, counterSlot)
	if err != nil {
		return nil, err
	}

	desc := "Payment " + p.PaymentID
	money := accounts[moneySlot]
	counter := accounts[counterSlot]

	var lines []domain.LineInput
	if p.SubjectType == domain.PaymentSubjectCustomer {
		lines = []domain.LineInput{
			domain.DebitLine(money, p.Amount, desc),
			domain.CreditLine(counter, p.Amount, desc),
		}
		lines[1].ContraagentID = p.ContraagentID
	} else {
		lines = []domain.LineInput{
			domain.DebitLine(counter, p.Amount, desc),
			domain.CreditLine(money, p.Amount, desc),
		}
		lines[0].ContraagentID = p.ContraagentID
	}
	return lines, nil
}

// PaymentReference is the journal reference of a payment posting.
func PaymentReference(paymentID string) string {
	return "Payment:" + paymentID
}

// BankTransactionRecipe posts an imported bank statement line. Incoming money
// is credited to receivables and outgoing money debited to payables unless the
// line names a counter account.
type BankTransactionRecipe struct {
	Transaction domain.BankTransaction
}

var _ portssvc.PostingRecipe = BankTransactionRecipe{}

func (r BankTransactionRecipe) Header() portssvc.RecipeHeader {
	t := r.Transaction
	desc := t.Description
	if desc == "" {
		desc = "Bank transaction " + t.TransactionID
	}
	return portssvc.RecipeHeader{
		EntryDate:   t.BookingDate,
		Description: truncateRunes(desc, domain.MaxLineDescription),
		Reference:   BankTransactionReference(t.TransactionID),
	}
}

func (r BankTransactionRecipe) Lines(ctx context.Context, org domain.Organization, resolver portssvc.AccountResolverSvc) ([]domain.LineInput, error) {
	t := r.Transaction
	amount := t.Amount.Abs()
	if amount.IsZero() {
		return nil, fmt.Errorf("%w: bank transaction amount must not be zero", apperrors.ErrValidation)
	}

	bank, err := resolver.Resolve(ctx, org, domain.SlotBank)
	if err != nil {
		return nil, err
	}

	counter := ""
	if t.CounterAccountID != nil && *t.CounterAccountID != "" {
		counter = *t.CounterAccountID
	} else {
		slot := domain.SlotAccountsPayable
		if t.IsCredit {
			slot = domain.SlotAccountsReceivable
		}
		if counter, err = resolver.Resolve(ctx, org, slot); err != nil {
			return nil, err
		}
	}

	desc := r.Header().Description
	if t.IsCredit {
		lines := []domain.LineInput{
			domain.DebitLine(bank, amount, desc),
			domain.CreditLine(counter, amount, desc),
		}
		lines[1].ContraagentID = t.ContraagentID
		return lines, nil
	}
	lines := []domain.LineInput{
		domain.DebitLine(counter, amount, desc),
		domain.CreditLine(bank, amount, desc),
	}
	lines[0].ContraagentID = t.ContraagentID
	return lines, nil
}

// BankTransactionReference is the journal reference of a bank line posting.
func BankTransactionReference(transactionID string) string {
	return "BankTx:" + transactionID
}

// AssetTransactionRecipe posts a fixed asset movement.
//
//	acquisition:  Dr fixed assets              / Cr payables
//	depreciation: Dr depreciation expense      / Cr accumulated depreciation
//	disposal:     Dr accumulated depreciation  / Cr fixed assets
//	revaluation:  Dr fixed assets              / Cr equity (swapped when negative)
type AssetTransactionRecipe struct {
	Transaction domain.AssetTransaction
}

var _ portssvc.PostingRecipe = AssetTransactionRecipe{}

func (r AssetTransactionRecipe) Header() portssvc.RecipeHeader {
	t := r.Transaction
	desc := t.Description
	if desc == "" {
		desc = fmt.Sprintf("Asset %s %s", t.AssetCode, t.TransactionType)
	}
	return portssvc.RecipeHeader{
		EntryDate:   t.TransactionDate,
		Description: truncateRunes(desc, domain.MaxLineDescription),
		Reference:   AssetTransactionReference(t.AssetTransactionID),
	}
}

func (r AssetTransactionRecipe) Lines(ctx context.Context, org domain.Organization, resolver portssvc.AccountResolverSvc) ([]domain.LineInput, error) {
	t := r.Transaction
	if t.Amount.IsZero() {
		return nil, fmt.Errorf("%w: asset transaction amount must not be zero", apperrors.ErrValidation)
	}

	var debitSlot, creditSlot domain.AccountSlot
	switch t.TransactionType {
	case domain.AssetAcquisition:
		debitSlot, creditSlot = domain.SlotFixedAssets, domain.SlotAccountsPayable
	case domain.AssetDepreciation:
		debitSlot, creditSlot = domain.SlotDepreciationExpense, domain.SlotAccumulatedDepreciation
	case domain.AssetDisposal:
		debitSlot, creditSlot = domain.SlotAccumulatedDepreciation, domain.SlotFixedAssets
	case domain.AssetRevaluation:
		debitSlot, creditSlot = domain.SlotFixedAssets, domain.SlotOpeningBalanceEquity
		if t.Amount.IsNegative() {
			debitSlot, creditSlot = creditSlot, debitSlot
		}
	default:
		return nil, fmt.Errorf("%w: unknown asset transaction type %q", apperrors.ErrValidation, t.TransactionType)
	}

	accounts, err := resolver.ResolveAll(ctx, org, debitSlot, creditSlot)
	if err != nil {
		return nil, err
	}

	amount := t.Amount.Abs()
	desc := r.Header().Description
	return []domain.LineInput{
		domain.DebitLine(accounts[debitSlot], amount, desc),
		domain.CreditLine(accounts[creditSlot], amount, desc),
	}, nil
}

// AssetTransactionReference is the journal reference of an asset posting.
func AssetTransactionReference(assetTransactionID string) string {
	return "Asset:" + assetTransactionID
}

// OpeningBalanceRecipe posts a contraagent opening balance against the
// opening-balance equity account. Customers use receivables and suppliers
// payables; customers win when both flags are set.
type OpeningBalanceRecipe struct {
	Contraagent domain.Contraagent
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
	EntryDate   time.Time
}

var _ portssvc.PostingRecipe = OpeningBalanceRecipe{}

func (r OpeningBalanceRecipe) Header() portssvc.RecipeHeader {
	desc := r.Description
	if desc == "" {
		desc = "Opening balance for " + r.Contraagent.Name
	}
	return portssvc.RecipeHeader{
		EntryDate:   r.EntryDate,
		Description: truncateRunes(desc, domain.MaxLineDescription),
		Reference:   r.Contraagent.OpeningBalanceReference(),
	}
}

// RoleSlot is the account slot a contraagent's balance lives on.
func (r OpeningBalanceRecipe) RoleSlot() (domain.AccountSlot, error) {
	switch {
	case r.Contraagent.IsCustomer:
		return domain.SlotAccountsReceivable, nil
	case r.Contraagent.IsSupplier:
		return domain.SlotAccountsPayable, nil
	}
	return "", &apperrors.InvalidCounterpartyError{ContraagentID: r.Contraagent.ContraagentID}
}

func (r OpeningBalanceRecipe) Lines(ctx context.Context, org domain.Organization, resolver portssvc.AccountResolverSvc) ([]domain.LineInput, error) {
	roleSlot, err := r.RoleSlot()
	if err != nil {
		return nil, err
	}
	if r.Debit.IsNegative() || r.Credit.IsNegative() {
		return nil, fmt.Errorf("%w: opening balances must not be negative", apperrors.ErrValidation)
	}

	accounts, err := resolver.ResolveAll(ctx, org, roleSlot, domain.SlotOpeningBalanceEquity)
	if err != nil {
		return nil, err
	}
	role := accounts[roleSlot]
	equity := accounts[domain.SlotOpeningBalanceEquity]
	contraagentID := r.Contraagent.ContraagentID
	name := r.Contraagent.Name

	var lines []domain.LineInput
	if r.Debit.IsPositive() {
		counterparty := domain.DebitLine(role, r.Debit, truncateRunes(name+" - Opening Debit Balance", domain.MaxLineDescription))
		counterparty.ContraagentID = &contraagentID
		lines = append(lines, counterparty, domain.CreditLine(equity, r.Debit, "Opening Balance Equity"))
	}
	if r.Credit.IsPositive() {
		counterparty := domain.CreditLine(role, r.Credit, truncateRunes(name+" - Opening Credit Balance", domain.MaxLineDescription))
		counterparty.ContraagentID = &contraagentID
		lines = append(lines, domain.DebitLine(equity, r.Credit, "Opening Balance Equity"), counterparty)
	}
	return lines, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
