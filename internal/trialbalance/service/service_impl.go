package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/homelife/backoffice/internal/coa"
	"github.com/homelife/backoffice/internal/config"
	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
	receiptdomain "github.com/homelife/backoffice/internal/receipt/domain"
	"github.com/homelife/backoffice/internal/trialbalance/domain"
)

type Service struct {
	log      *zap.Logger
	ledger   ledgerdomain.Service
	receipts receiptdomain.Store
	opening  domain.OpeningBalances
	loc      *time.Location
}

type ServiceParam struct {
	fx.In

	Cfg      config.Config
	Log      *zap.Logger
	Ledger   ledgerdomain.Service
	Receipts receiptdomain.Store
	Opening  domain.OpeningBalances `optional:"true"`
}

func NewService(p ServiceParam) domain.Service {
	opening := p.Opening
	if opening == nil {
		opening = domain.ZeroOpening{}
	}
	return &Service{
		log:      p.Log.Named("trialbalance.service"),
		ledger:   p.Ledger,
		receipts: p.Receipts,
		opening:  opening,
		loc:      p.Cfg.Location(),
	}
}

// Build merges the general ledger and the cash-receipt store into one
// reconciled trial balance. A ledger fetch failure aborts the build and
// leaves the receipt store untouched.
func (s *Service) Build(ctx context.Context, from, to *time.Time) (domain.TrialBalance, error) {
	ledgerEntries, err := s.ledger.List(ctx, from, to)
	if err != nil {
		return domain.TrialBalance{}, err
	}

	var receiptEntries []receiptdomain.CashReceiptEntry
	if from != nil && to != nil {
		receiptEntries, err = s.receipts.ListRange(ctx, *from, *to, s.loc)
	} else {
		receiptEntries, err = s.receipts.List(ctx)
	}
	if err != nil {
		return domain.TrialBalance{}, err
	}

	// Receipts first, ledger second; the stable sort keeps that order for
	// entries sharing an effective date.
	merged := make([]ledgerdomain.LedgerEntry, 0, len(receiptEntries)+len(ledgerEntries))
	for _, entry := range receiptEntries {
		merged = append(merged, entry.ToLedgerEntry())
	}
	merged = append(merged, ledgerEntries...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].EffectiveDate.After(merged[j].EffectiveDate)
	})

	views := make([]domain.TransactionView, 0, len(merged))
	byAccount := make(map[string][]domain.TransactionView)
	debitTotals := make(map[string]decimal.Decimal)
	creditTotals := make(map[string]decimal.Decimal)
	for _, entry := range merged {
		view := domain.TransactionView{
			Entry:            entry,
			DisplayReference: entry.DisplayReference(),
			DisplayDate:      entry.DisplayDate(),
		}
		views = append(views, view)
		byAccount[entry.AccountNumber] = append(byAccount[entry.AccountNumber], view)
		debitTotals[entry.AccountNumber] = debitTotals[entry.AccountNumber].Add(entry.Debit)
		creditTotals[entry.AccountNumber] = creditTotals[entry.AccountNumber].Add(entry.Credit)
	}

	// Every registry account gets a row, active or not.
	rows := make([]domain.AccountBalance, 0, len(coa.Registry))
	for _, account := range coa.All() {
		opening := s.opening.Opening(account.Number)
		debit := debitTotals[account.Number]
		credit := creditTotals[account.Number]
		rows = append(rows, domain.AccountBalance{
			Account:        account,
			OpeningBalance: opening,
			DebitTotal:     debit,
			CreditTotal:    credit,
			Balance:        opening.Add(debit).Sub(credit),
			Transactions:   byAccount[account.Number],
		})
	}

	return domain.TrialBalance{
		From:     from,
		To:       to,
		Rows:     rows,
		Merged:   views,
		RowCount: len(views),
	}, nil
}
