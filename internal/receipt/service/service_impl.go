package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/homelife/backoffice/internal/clock"
	"github.com/homelife/backoffice/internal/coa"
	"github.com/homelife/backoffice/internal/events"
	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
	"github.com/homelife/backoffice/internal/receipt/domain"
	"github.com/homelife/backoffice/internal/sequence"
)

type Service struct {
	log   *zap.Logger
	store domain.Store
	seq   *sequence.Generator
	out   *events.Outbox
	clock clock.Clock
	genID *snowflake.Node
}

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	Store domain.Store
	Seq   *sequence.Generator
	Out   *events.Outbox
	Clock clock.Clock
	GenID *snowflake.Node
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:   p.Log.Named("receipt.service"),
		store: p.Store,
		seq:   p.Seq,
		out:   p.Out,
		clock: p.Clock,
		genID: p.GenID,
	}
}

func (s *Service) PostReceipt(ctx context.Context, receipt domain.Receipt) (string, []domain.CashReceiptEntry, error) {
	receipt.CashAccountNumber = strings.TrimSpace(receipt.CashAccountNumber)
	for i := range receipt.Allocations {
		receipt.Allocations[i].AccountNumber = strings.TrimSpace(receipt.Allocations[i].AccountNumber)
	}
	if err := validateReceipt(receipt); err != nil {
		return "", nil, err
	}

	// The counter advances here even if the append below fails; abandoned
	// receipts consume a number.
	arNumber, err := s.seq.Next(ctx, sequence.KindAR)
	if err != nil {
		return "", nil, err
	}

	now := s.clock.Now()
	date := receipt.Date
	cashAccount, _ := coa.Lookup(receipt.CashAccountNumber)

	entries := make([]domain.CashReceiptEntry, 0, len(receipt.Allocations)+1)
	entries = append(entries, domain.CashReceiptEntry{
		ID:            s.genID.Generate(),
		AccountNumber: cashAccount.Number,
		AccountName:   cashAccount.Description,
		Debit:         receipt.Amount,
		Credit:        decimal.Zero,
		Description:   receiptDescription(receipt.ReceivedFrom),
		Date:          &date,
		Reference:     arNumber,
		EffectiveDate: ledgerdomain.EffectiveDateOf(&date, now),
		CreatedAt:     now,
	})
	for _, alloc := range receipt.Allocations {
		account, _ := coa.Lookup(alloc.AccountNumber)
		description := alloc.Description
		if description == "" {
			description = receiptDescription(receipt.ReceivedFrom)
		}
		entries = append(entries, domain.CashReceiptEntry{
			ID:            s.genID.Generate(),
			AccountNumber: account.Number,
			AccountName:   account.Description,
			Debit:         decimal.Zero,
			Credit:        alloc.Amount,
			Description:   description,
			Date:          &date,
			Reference:     arNumber,
			EffectiveDate: ledgerdomain.EffectiveDateOf(&date, now),
			CreatedAt:     now,
		})
	}

	if err := s.store.Append(ctx, entries); err != nil {
		return "", nil, err
	}

	if err := s.out.Publish(ctx, events.Event{
		Type: events.EventReceiptPosted,
		Payload: map[string]any{
			"ar_number": arNumber,
			"amount":    receipt.Amount.StringFixed(2),
		},
		DedupeKey: "receipt:" + arNumber,
	}); err != nil {
		s.log.Warn("receipt event publish failed", zap.String("ar_number", arNumber), zap.Error(err))
	}

	s.log.Info("cash receipt posted",
		zap.String("ar_number", arNumber),
		zap.String("amount", receipt.Amount.StringFixed(2)),
		zap.Int("allocations", len(receipt.Allocations)),
	)
	return arNumber, entries, nil
}

func validateReceipt(receipt domain.Receipt) error {
	if _, ok := coa.Lookup(strings.TrimSpace(receipt.CashAccountNumber)); !ok {
		return domain.ErrInvalidCashAccount
	}
	if receipt.Date.IsZero() {
		return domain.ErrMissingReceiptDate
	}
	if !receipt.Amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if len(receipt.Allocations) == 0 {
		return domain.ErrMissingAllocations
	}

	total := decimal.Zero
	for _, alloc := range receipt.Allocations {
		if !alloc.Amount.IsPositive() {
			return domain.ErrInvalidAllocation
		}
		if _, ok := coa.Lookup(strings.TrimSpace(alloc.AccountNumber)); !ok {
			return domain.ErrUnknownAccount
		}
		total = total.Add(alloc.Amount)
	}
	if total.Sub(receipt.Amount).Abs().GreaterThan(ledgerdomain.Tolerance) {
		return domain.ErrAllocationMismatch
	}
	return nil
}

func receiptDescription(receivedFrom string) string {
	receivedFrom = strings.TrimSpace(receivedFrom)
	if receivedFrom == "" {
		return "Cash receipt"
	}
	return "Cash receipt - " + receivedFrom
}
