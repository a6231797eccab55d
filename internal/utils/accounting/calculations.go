package accounting

import (
	"fmt"

	"github.com/SscSPs/erp_accounting_core/internal/apperrors"
	"github.com/SscSPs/erp_accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places every posted amount carries.
const MoneyPlaces = 2

// Round rounds an amount half away from zero to MoneyPlaces.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// Format renders an amount with exactly two decimals and a dot separator.
func Format(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}

// HasMoneyPrecision reports whether d has no more than two decimal places.
func HasMoneyPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyPlaces))
}

// CalculateSignedAmount applies the correct sign to a line amount based on the account type.
// This is used in both services and repositories to ensure consistent accounting logic.
func CalculateSignedAmount(line domain.EntryLine, accountType domain.AccountType) (decimal.Decimal, error) {
	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/INCOME -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
	switch accountType {
	case domain.Asset, domain.Expense:
		return line.Debit.Sub(line.Credit), nil
	case domain.Liability, domain.Equity, domain.Income:
		return line.Credit.Sub(line.Debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
}

// BalanceChanges sums the signed effect of the lines per account.
func BalanceChanges(lines []domain.EntryLine, accounts map[string]domain.Account) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal, len(lines))
	for _, line := range lines {
		acc, ok := accounts[line.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, line.AccountID)
		}
		signed, err := CalculateSignedAmount(line, acc.AccountType)
		if err != nil {
			return nil, err
		}
		changes[line.AccountID] = changes[line.AccountID].Add(signed)
	}
	return changes, nil
}

// Totals returns the raw debit and credit sums of the lines.
func Totals(lines []domain.LineInput) (decimal.Decimal, decimal.Decimal) {
	debit, credit := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// CheckBalance compares the rounded totals of the lines and returns an
// *apperrors.UnbalancedEntryError when they differ.
func CheckBalance(lines []domain.LineInput) error {
	debit, credit := Totals(lines)
	debit, credit = Round(debit), Round(credit)
	if !debit.Equal(credit) {
		return &apperrors.UnbalancedEntryError{TotalDebit: debit, TotalCredit: credit}
	}
	return nil
}

// NetByAccount returns debit minus credit per account across the given lines.
func NetByAccount(lines []domain.EntryLine) map[string]decimal.Decimal {
	net := make(map[string]decimal.Decimal)
	for _, l := range lines {
		net[l.AccountID] = net[l.AccountID].Add(l.Debit).Sub(l.Credit)
	}
	return net
}
