package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/homelife/backoffice/internal/clock"
	"github.com/homelife/backoffice/internal/events"
	"github.com/homelife/backoffice/internal/receipt/domain"
	"github.com/homelife/backoffice/internal/receipt/store"
	"github.com/homelife/backoffice/internal/sequence"
)

func setupReceiptTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	statements := []string{
		`CREATE TABLE IF NOT EXISTS reference_counters (
			kind TEXT PRIMARY KEY,
			last_issued TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS backoffice_events (
			id INTEGER PRIMARY KEY,
			event_type TEXT NOT NULL,
			payload TEXT NOT NULL DEFAULT '{}',
			dedupe_key TEXT,
			published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_backoffice_events_dedupe ON backoffice_events (dedupe_key)`,
		`DELETE FROM reference_counters`,
		`DELETE FROM backoffice_events`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("setup schema: %v", err)
		}
	}
	return db
}

func newTestReceiptService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	db := setupReceiptTestDB(t)
	clk := clock.Fixed{At: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	memory := store.NewMemoryStore()
	svc := &Service{
		log:   zap.NewNop(),
		store: memory,
		seq:   sequence.NewGenerator(db, clk),
		out:   events.NewOutbox(db, node),
		clock: clk,
		genID: node,
	}
	return svc, memory
}

func TestPostReceipt(t *testing.T) {
	svc, memory := newTestReceiptService(t)

	arNumber, entries, err := svc.PostReceipt(context.Background(), domain.Receipt{
		CashAccountNumber: "10001",
		Date:              time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ReceivedFrom:      "ABC Realty Inc.",
		Amount:            decimal.NewFromFloat(1250),
		Allocations: []domain.Allocation{
			{AccountNumber: "40001", Amount: decimal.NewFromFloat(1000)},
			{AccountNumber: "40100", Amount: decimal.NewFromFloat(250)},
		},
	})
	if err != nil {
		t.Fatalf("post receipt: %v", err)
	}
	if arNumber != "AR1000" {
		t.Fatalf("expected AR1000, got %s", arNumber)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if !entries[0].Debit.Equal(decimal.NewFromFloat(1250)) {
		t.Fatalf("expected cash debit 1250, got %s", entries[0].Debit)
	}
	if entries[0].AccountName != "Cash - Operating" {
		t.Fatalf("expected denormalized account name, got %q", entries[0].AccountName)
	}
	if entries[0].Description != "Cash receipt - ABC Realty Inc." {
		t.Fatalf("unexpected description %q", entries[0].Description)
	}
	for _, entry := range entries {
		if entry.Reference != "AR1000" {
			t.Fatalf("expected shared AR reference, got %q", entry.Reference)
		}
	}

	stored, err := memory.List(context.Background())
	if err != nil {
		t.Fatalf("list store: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected 3 stored entries, got %d", len(stored))
	}
}

func TestPostReceiptAllocationMismatchRejected(t *testing.T) {
	svc, memory := newTestReceiptService(t)
	ctx := context.Background()

	_, _, err := svc.PostReceipt(ctx, domain.Receipt{
		CashAccountNumber: "10001",
		Date:              time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:            decimal.NewFromFloat(1000),
		Allocations: []domain.Allocation{
			{AccountNumber: "40001", Amount: decimal.NewFromFloat(900)},
		},
	})
	if !errors.Is(err, domain.ErrAllocationMismatch) {
		t.Fatalf("expected allocation mismatch, got %v", err)
	}

	stored, err := memory.List(ctx)
	if err != nil {
		t.Fatalf("list store: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no stored entries after rejection, got %d", len(stored))
	}

	// Validation failures never consume an AR number.
	next, err := svc.seq.Peek(ctx, sequence.KindAR)
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if next != "AR1000" {
		t.Fatalf("expected counter untouched, got %s", next)
	}
}

func TestPostReceiptToleratesRoundingDifference(t *testing.T) {
	svc, _ := newTestReceiptService(t)

	_, _, err := svc.PostReceipt(context.Background(), domain.Receipt{
		CashAccountNumber: "10001",
		Date:              time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:            decimal.NewFromFloat(100),
		Allocations: []domain.Allocation{
			{AccountNumber: "40001", Amount: decimal.NewFromFloat(99.995)},
		},
	})
	if err != nil {
		t.Fatalf("expected rounding difference within tolerance to pass, got %v", err)
	}
}

func TestPostReceiptUnknownCashAccount(t *testing.T) {
	svc, _ := newTestReceiptService(t)

	_, _, err := svc.PostReceipt(context.Background(), domain.Receipt{
		CashAccountNumber: "99999",
		Date:              time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:            decimal.NewFromFloat(100),
		Allocations: []domain.Allocation{
			{AccountNumber: "40001", Amount: decimal.NewFromFloat(100)},
		},
	})
	if !errors.Is(err, domain.ErrInvalidCashAccount) {
		t.Fatalf("expected invalid cash account, got %v", err)
	}
}
