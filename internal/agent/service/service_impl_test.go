package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/homelife/backoffice/internal/agent/domain"
	"github.com/homelife/backoffice/internal/cache"
	"github.com/homelife/backoffice/pkg/repository"
)

func setupAgentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS agents (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT,
			phone TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME NOT NULL
		)`,
	).Error; err != nil {
		t.Fatalf("create agents: %v", err)
	}
	if err := db.Exec(`DELETE FROM agents`).Error; err != nil {
		t.Fatalf("truncate agents: %v", err)
	}
	return db
}

func seedAgent(t *testing.T, db *gorm.DB, id int64, name string, active bool) {
	t.Helper()
	err := db.Exec(
		`INSERT INTO agents (id, name, active, created_at) VALUES (?, ?, ?, ?)`,
		id, name, active, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	).Error
	if err != nil {
		t.Fatalf("seed agent: %v", err)
	}
}

func TestListReturnsActiveAgentsOnly(t *testing.T) {
	db := setupAgentTestDB(t)
	svc := &Service{
		log:   zap.NewNop(),
		repo:  repository.ProvideStore[domain.Agent](db),
		cache: cache.NewTTLCache[string, []domain.Agent](),
	}

	seedAgent(t, db, 1, "J. Rivera", true)
	seedAgent(t, db, 2, "A. Kowalski", false)

	agents, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(agents) != 1 {
		t.Fatalf("expected 1 active agent, got %d", len(agents))
	}
	if agents[0].Name != "J. Rivera" {
		t.Fatalf("unexpected agent %q", agents[0].Name)
	}
}

func TestListServesRosterFromCache(t *testing.T) {
	db := setupAgentTestDB(t)
	svc := &Service{
		log:   zap.NewNop(),
		repo:  repository.ProvideStore[domain.Agent](db),
		cache: cache.NewTTLCache[string, []domain.Agent](),
	}

	seedAgent(t, db, 1, "J. Rivera", true)
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	// A row added after the first read is invisible until the TTL lapses.
	seedAgent(t, db, 2, "M. Okafor", true)
	agents, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(agents) != 1 {
		t.Fatalf("expected cached roster of 1, got %d", len(agents))
	}
}
