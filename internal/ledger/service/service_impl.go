package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/homelife/backoffice/internal/clock"
	"github.com/homelife/backoffice/internal/coa"
	"github.com/homelife/backoffice/internal/config"
	"github.com/homelife/backoffice/internal/events"
	"github.com/homelife/backoffice/internal/ledger/domain"
	receiptdomain "github.com/homelife/backoffice/internal/receipt/domain"
	"github.com/homelife/backoffice/internal/sequence"
)

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	seq      *sequence.Generator
	out      *events.Outbox
	clock    clock.Clock
	receipts receiptdomain.Store
	loc      *time.Location
}

type ServiceParam struct {
	fx.In

	Cfg      config.Config
	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Seq      *sequence.Generator
	Out      *events.Outbox
	Clock    clock.Clock
	Receipts receiptdomain.Store
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("ledger.service"),
		genID:    p.GenID,
		seq:      p.Seq,
		out:      p.Out,
		clock:    p.Clock,
		receipts: p.Receipts,
		loc:      p.Cfg.Location(),
	}
}

func (s *Service) PostBatch(ctx context.Context, date *time.Time, description string, lines []domain.PostLine) ([]domain.LedgerEntry, error) {
	parsed, err := parseLines(lines)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateBalanced(parsed); err != nil {
		return nil, err
	}

	reference, err := s.seq.Next(ctx, sequence.KindJE)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	entries := make([]domain.LedgerEntry, 0, len(parsed))
	for _, line := range parsed {
		// Zero-amount rows are accepted on the form but never stored.
		if line.Debit.IsZero() && line.Credit.IsZero() {
			continue
		}
		account, _ := coa.Lookup(line.AccountNumber)
		lineDescription := line.Description
		if lineDescription == "" {
			lineDescription = description
		}
		entries = append(entries, domain.LedgerEntry{
			ID:            s.genID.Generate(),
			AccountNumber: account.Number,
			AccountName:   account.Description,
			Debit:         line.Debit,
			Credit:        line.Credit,
			Description:   lineDescription,
			Date:          date,
			Reference:     reference,
			Type:          domain.EntryTypeJournalEntry,
			EffectiveDate: domain.EffectiveDateOf(date, now),
			CreatedAt:     now,
		})
	}

	// All lines land in one transaction, together with the outbox event.
	// Either the whole posting is stored or none of it is.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entries).Error; err != nil {
			return err
		}
		return s.out.PublishTx(ctx, tx, events.Event{
			Type: events.EventEntryPosted,
			Payload: map[string]any{
				"reference":  reference,
				"type":       domain.EntryTypeJournalEntry,
				"line_count": len(entries),
			},
			DedupeKey: "posting:" + reference,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("journal entry posted",
		zap.String("reference", reference),
		zap.Int("lines", len(entries)),
	)
	return entries, nil
}

func (s *Service) List(ctx context.Context, from, to *time.Time) ([]domain.LedgerEntry, error) {
	query := s.db.WithContext(ctx).Model(&domain.LedgerEntry{})
	if from != nil && to != nil {
		start, end := domain.DayBounds(*from, *to, s.loc)
		query = query.Where("effective_date >= ? AND effective_date <= ?", start, end)
	}

	var entries []domain.LedgerEntry
	if err := query.Order("effective_date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Service) NextReference(ctx context.Context) (string, error) {
	return s.seq.Peek(ctx, sequence.KindJE)
}

// ClearAll deletes the remote ledger, then the cash-receipt store, then the
// AR counter. The three deletions are sequential and independent; a failure
// partway leaves the earlier deletions in place.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec(`DELETE FROM ledger_entries`).Error; err != nil {
		return err
	}
	if err := s.receipts.Clear(ctx); err != nil {
		return err
	}
	if err := s.seq.Reset(ctx, sequence.KindAR); err != nil {
		return err
	}

	if err := s.out.Publish(ctx, events.Event{
		Type:    events.EventLedgerCleared,
		Payload: map[string]any{"cleared_at": s.clock.Now().Format(time.RFC3339)},
	}); err != nil {
		s.log.Warn("clear event publish failed", zap.Error(err))
	}

	s.log.Info("ledger cleared")
	return nil
}

func parseLines(lines []domain.PostLine) ([]domain.ParsedLine, error) {
	parsed := make([]domain.ParsedLine, 0, len(lines))
	for _, line := range lines {
		number := strings.TrimSpace(line.AccountNumber)
		if number == "" {
			return nil, domain.ErrInvalidAccount
		}
		if _, ok := coa.Lookup(number); !ok {
			return nil, domain.ErrInvalidAccount
		}
		debit, err := parseAmount(line.Debit)
		if err != nil {
			return nil, domain.ErrInvalidLineAmount
		}
		credit, err := parseAmount(line.Credit)
		if err != nil {
			return nil, domain.ErrInvalidLineAmount
		}
		parsed = append(parsed, domain.ParsedLine{
			AccountNumber: number,
			Debit:         debit,
			Credit:        credit,
			Description:   strings.TrimSpace(line.Description),
		})
	}
	return parsed, nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}
