package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homelife/backoffice/internal/coa"
	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
	tbdomain "github.com/homelife/backoffice/internal/trialbalance/domain"
)

func TestRenderTrialBalanceHTML(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	account, _ := coa.Lookup("10001")
	html, err := renderer.RenderTrialBalanceHTML(TrialBalanceInput{
		CompanyName: "Homelife Brokerage",
		GeneratedAt: day,
		Rows: []tbdomain.AccountBalance{
			{
				Account:        account,
				OpeningBalance: decimal.Zero,
				DebitTotal:     decimal.NewFromInt(100),
				CreditTotal:    decimal.NewFromInt(40),
				Balance:        decimal.NewFromInt(60),
				Transactions: []tbdomain.TransactionView{
					{
						Entry: ledgerdomain.LedgerEntry{
							AccountNumber: "10001",
							Description:   "Deposit",
							Debit:         decimal.NewFromInt(100),
						},
						DisplayReference: "AR1000",
						DisplayDate:      day,
					},
				},
			},
		},
		TotalCount: 1,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"10001 Cash - Operating",
		"Opening Balance",
		"Closing Balance",
		"AR1000",
		"60.00",
		"2025-03-10",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered document missing %q", want)
		}
	}
}

func TestRenderTrialBalanceOmitsExpansionForInactiveAccounts(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	account, _ := coa.Lookup("51100")
	html, err := renderer.RenderTrialBalanceHTML(TrialBalanceInput{
		CompanyName: "Homelife Brokerage",
		GeneratedAt: time.Now(),
		Rows: []tbdomain.AccountBalance{
			{Account: account},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "Opening Balance") {
		t.Fatalf("inactive account must not render synthetic rows")
	}
}

func TestRenderJournalHTML(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	html, err := renderer.RenderJournalHTML(JournalInput{
		CompanyName: "Homelife Brokerage",
		GeneratedAt: day,
		Rows: []tbdomain.TransactionView{
			{
				Entry: ledgerdomain.LedgerEntry{
					AccountNumber: "40001",
					AccountName:   "Commission Revenue",
					Description:   "Closing - 12 Maple Ave",
					Credit:        decimal.NewFromInt(250),
				},
				DisplayReference: "JE1002",
				DisplayDate:      day,
			},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"JE1002", "40001 Commission Revenue", "250.00"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered document missing %q", want)
		}
	}
}
