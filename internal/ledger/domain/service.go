package domain

import (
	"context"
	"errors"
	"time"
)

// PostLine is one line of a journal posting request. Amounts are decimal
// strings on the wire and parsed before they reach the service.
type PostLine struct {
	AccountNumber string
	Debit         string
	Credit        string
	Description   string
}

// LedgerService writes and reads the general ledger.
type LedgerService interface {
	// PostBatch writes a balanced posting as one transaction: either every
	// line is stored or none is.
	PostBatch(ctx context.Context, date *time.Time, description string, lines []PostLine) ([]LedgerEntry, error)
	// List returns entries ordered by effective date descending, optionally
	// bounded by an inclusive calendar-date range.
	List(ctx context.Context, from, to *time.Time) ([]LedgerEntry, error)
	// NextReference returns the next server-issued journal entry reference
	// without consuming it.
	NextReference(ctx context.Context) (string, error)
	// ClearAll irreversibly deletes all ledger entries and cash receipts and
	// resets the AR sequence. The JE sequence is left untouched.
	ClearAll(ctx context.Context) error
}

// Service is the package alias for LedgerService.
type Service = LedgerService

var (
	ErrInvalidEntryLines = errors.New("invalid_entry_lines")
	ErrInvalidAccount    = errors.New("invalid_account")
	ErrInvalidLineAmount = errors.New("invalid_line_amount")
	ErrOneSidedLine      = errors.New("line_must_be_debit_or_credit")
	ErrUnbalancedEntry   = errors.New("unbalanced_entry")
	ErrMissingDebitSide  = errors.New("missing_debit_side")
	ErrMissingCreditSide = errors.New("missing_credit_side")
)
