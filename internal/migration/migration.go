package migration

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// RunMigrations applies every embedded *.up.sql file in lexical order,
// recording each applied file in schema_migrations. Re-running is a no-op.
// Statements go through the gorm handle so bind placeholders are rewritten
// for the active dialect.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	).Error; err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	names, err := migrationNames()
	if err != nil {
		return err
	}

	for _, name := range names {
		applied, err := isApplied(db, name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		script, err := embeddedMigrations.ReadFile(migrationsDir + "/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(script)).Error; err != nil {
				return fmt.Errorf("apply migration %s: %w", name, err)
			}
			if err := tx.Exec(
				`INSERT INTO schema_migrations (version) VALUES (?)`, name,
			).Error; err != nil {
				return fmt.Errorf("record migration %s: %w", name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func migrationNames() ([]string, error) {
	entries, err := fs.ReadDir(embeddedMigrations, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func isApplied(db *gorm.DB, name string) (bool, error) {
	var count int64
	err := db.Raw(
		`SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, name,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
