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
	"github.com/homelife/backoffice/internal/listing/domain"
	"github.com/homelife/backoffice/pkg/repository"
)

func setupListingTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS listings (
			id INTEGER PRIMARY KEY,
			mls_number TEXT,
			address TEXT NOT NULL,
			city TEXT,
			list_price NUMERIC NOT NULL,
			agent_name TEXT,
			status TEXT NOT NULL,
			note TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	).Error; err != nil {
		t.Fatalf("create listings: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS backoffice_events (
			id INTEGER PRIMARY KEY,
			event_type TEXT NOT NULL,
			payload TEXT NOT NULL DEFAULT '{}',
			dedupe_key TEXT,
			published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME NOT NULL
		)`,
	).Error; err != nil {
		t.Fatalf("create backoffice_events: %v", err)
	}
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_backoffice_events_dedupe ON backoffice_events (dedupe_key)`,
	).Error; err != nil {
		t.Fatalf("create dedupe index: %v", err)
	}
	for _, table := range []string{"listings", "backoffice_events"} {
		if err := db.Exec(`DELETE FROM ` + table).Error; err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}
	return db
}

func newTestListingService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	db := setupListingTestDB(t)
	return &Service{
		log:   zap.NewNop(),
		repo:  repository.ProvideStore[domain.Listing](db),
		out:   events.NewOutbox(db, node),
		genID: node,
		clock: clock.Fixed{At: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
	}, db
}

func TestCreateListing(t *testing.T) {
	svc, _ := newTestListingService(t)

	listing, err := svc.Create(context.Background(), domain.CreateListingRequest{
		Address:   " 12 Maple Ave ",
		City:      "Toronto",
		ListPrice: decimal.NewFromInt(899000),
		AgentName: "J. Rivera",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if listing.Address != "12 Maple Ave" {
		t.Fatalf("address not trimmed: %q", listing.Address)
	}
	if listing.Status != domain.StatusActive {
		t.Fatalf("expected default status Active, got %s", listing.Status)
	}
}

func TestCreateListingRejectsMissingAddress(t *testing.T) {
	svc, _ := newTestListingService(t)

	_, err := svc.Create(context.Background(), domain.CreateListingRequest{Address: "  "})
	if !errors.Is(err, domain.ErrInvalidAddress) {
		t.Fatalf("expected invalid address, got %v", err)
	}
}

func TestUpdateListingStatus(t *testing.T) {
	svc, _ := newTestListingService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateListingRequest{
		Address:   "12 Maple Ave",
		ListPrice: decimal.NewFromInt(899000),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sold := domain.StatusSold
	updated, err := svc.Update(ctx, created.ID, domain.UpdateListingRequest{Status: &sold})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.StatusSold {
		t.Fatalf("expected Sold, got %s", updated.Status)
	}

	bogus := "Pending"
	if _, err := svc.Update(ctx, created.ID, domain.UpdateListingRequest{Status: &bogus}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestListingNoteRoundTrip(t *testing.T) {
	svc, _ := newTestListingService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateListingRequest{Address: "12 Maple Ave"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.SetNote(ctx, created.ID, "Seller prefers evening showings"); err != nil {
		t.Fatalf("set note: %v", err)
	}
	note, err := svc.GetNote(ctx, created.ID)
	if err != nil {
		t.Fatalf("get note: %v", err)
	}
	if note != "Seller prefers evening showings" {
		t.Fatalf("unexpected note %q", note)
	}
}

func TestListingMutationsPublishEvents(t *testing.T) {
	svc, db := newTestListingService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateListingRequest{Address: "12 Maple Ave"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var types []string
	if err := db.Raw(
		`SELECT event_type FROM backoffice_events ORDER BY id ASC`,
	).Scan(&types).Error; err != nil {
		t.Fatalf("read events: %v", err)
	}
	if len(types) != 2 || types[0] != events.EventListingCreated || types[1] != events.EventListingDeleted {
		t.Fatalf("expected [listing.created listing.deleted], got %v", types)
	}
}

func TestDeleteListing(t *testing.T) {
	svc, _ := newTestListingService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateListingRequest{Address: "12 Maple Ave"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
