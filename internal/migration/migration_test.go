package migration

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMigrationTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:migrations_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestRunMigrationsAppliesAndIsIdempotent(t *testing.T) {
	db := setupMigrationTestDB(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	names, err := migrationNames()
	if err != nil {
		t.Fatalf("migration names: %v", err)
	}
	var applied int64
	if err := db.Raw(`SELECT COUNT(1) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied: %v", err)
	}
	if applied != int64(len(names)) {
		t.Fatalf("expected %d applied migrations, got %d", len(names), applied)
	}

	// The migrated schema accepts bound inserts through the same handle the
	// runner used, so placeholder rewriting is exercised end to end.
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	if err := db.Exec(
		`INSERT INTO reminders (id, text, due_date, created_at) VALUES (?, ?, ?, ?)`,
		int64(1), "call lawyer re: trust audit", now, now,
	).Error; err != nil {
		t.Fatalf("insert into migrated schema: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		t.Fatalf("rerun migrations: %v", err)
	}
	if err := db.Raw(`SELECT COUNT(1) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied after rerun: %v", err)
	}
	if applied != int64(len(names)) {
		t.Fatalf("rerun changed applied count: expected %d, got %d", len(names), applied)
	}
}
