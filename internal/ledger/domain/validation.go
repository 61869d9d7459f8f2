package domain

import "github.com/shopspring/decimal"

// ParsedLine is a posting line with parsed amounts.
type ParsedLine struct {
	AccountNumber string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	Description   string
}

// ValidateBalanced ensures the parsed lines form a balanced double-entry
// posting: at least two lines, no negative amounts, one side per line, a
// debit side and a credit side, and totals equal within Tolerance.
func ValidateBalanced(lines []ParsedLine) error {
	if len(lines) < 2 {
		return ErrInvalidEntryLines
	}

	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	debitLines := 0
	creditLines := 0
	for _, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return ErrInvalidLineAmount
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return ErrOneSidedLine
		}
		if line.Debit.IsPositive() {
			debitLines++
		}
		if line.Credit.IsPositive() {
			creditLines++
		}
		debitTotal = debitTotal.Add(line.Debit)
		creditTotal = creditTotal.Add(line.Credit)
	}

	if debitLines == 0 {
		return ErrMissingDebitSide
	}
	if creditLines == 0 {
		return ErrMissingCreditSide
	}
	if debitTotal.Sub(creditTotal).Abs().GreaterThan(Tolerance) {
		return ErrUnbalancedEntry
	}
	return nil
}
