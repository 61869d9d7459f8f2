package render

import (
	"time"

	tbdomain "github.com/homelife/backoffice/internal/trialbalance/domain"
)

// TrialBalanceInput is the deterministic input used for trial balance
// report rendering.
type TrialBalanceInput struct {
	CompanyName string
	GeneratedAt time.Time
	From        *time.Time
	To          *time.Time
	Rows        []tbdomain.AccountBalance
	TotalCount  int
}

// JournalInput is the deterministic input used for journal listing rendering.
type JournalInput struct {
	CompanyName string
	GeneratedAt time.Time
	Rows        []tbdomain.TransactionView
}

type Renderer interface {
	RenderTrialBalanceHTML(input TrialBalanceInput) (string, error)
	RenderJournalHTML(input JournalInput) (string, error)
}
