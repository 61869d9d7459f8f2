package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homelife/backoffice/internal/coa"
	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
)

// TransactionView is one merged transaction with its display labels resolved
// once, at build time.
type TransactionView struct {
	Entry            ledgerdomain.LedgerEntry `json:"entry"`
	DisplayReference string                   `json:"displayReference"`
	DisplayDate      time.Time                `json:"displayDate"`
}

// AccountBalance is the per-account summary over the merged transaction set.
// Balance = OpeningBalance + DebitTotal - CreditTotal.
type AccountBalance struct {
	Account        coa.Account       `json:"account"`
	OpeningBalance decimal.Decimal   `json:"openingBalance"`
	DebitTotal     decimal.Decimal   `json:"debitTotal"`
	CreditTotal    decimal.Decimal   `json:"creditTotal"`
	Balance        decimal.Decimal   `json:"balance"`
	Transactions   []TransactionView `json:"transactions,omitempty"`
}

// TrialBalance is the full report: one row per chart-of-accounts entry, in
// registry order, plus the merged flat transaction list.
type TrialBalance struct {
	From     *time.Time        `json:"from,omitempty"`
	To       *time.Time        `json:"to,omitempty"`
	Rows     []AccountBalance  `json:"rows"`
	Merged   []TransactionView `json:"merged"`
	RowCount int               `json:"rowCount"`
}

// OpeningBalances supplies per-account opening balances. The default
// implementation returns zero for every account; period carry-forward plugs
// in here when it is introduced.
type OpeningBalances interface {
	Opening(accountNumber string) decimal.Decimal
}

// ZeroOpening is the fresh-ledger opening balance source.
type ZeroOpening struct{}

func (ZeroOpening) Opening(string) decimal.Decimal { return decimal.Zero }

// TrialBalanceService builds the reconciled trial balance.
type TrialBalanceService interface {
	Build(ctx context.Context, from, to *time.Time) (TrialBalance, error)
}

// Service is the package alias for TrialBalanceService.
type Service = TrialBalanceService
