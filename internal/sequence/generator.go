package sequence

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/homelife/backoffice/internal/clock"
)

// Document kinds with a persisted reference counter.
const (
	KindAR = "AR" // cash receipt (accounts receivable) numbers
	KindJE = "JE" // journal entry references
)

// Base is the first number issued for a kind with no stored counter.
const Base = 1000

// Counter is the persisted last-issued reference per document kind.
type Counter struct {
	Kind       string    `gorm:"primaryKey;type:text"`
	LastIssued string    `gorm:"type:text;not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (Counter) TableName() string { return "reference_counters" }

// Generator issues monotonically increasing human-readable references such
// as AR1000, AR1001. The counter advances when a reference is generated, not
// when the document using it is saved; an abandoned form still consumes a
// number.
type Generator struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewGenerator(db *gorm.DB, clk clock.Clock) *Generator {
	return &Generator{db: db, clock: clk}
}

// Next issues the next reference for kind and persists it as last issued.
func (g *Generator) Next(ctx context.Context, kind string) (string, error) {
	var issued string
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := g.lastNumber(ctx, tx, kind)
		if err != nil {
			return err
		}
		issued = fmt.Sprintf("%s%d", kind, number+1)
		return tx.WithContext(ctx).Exec(
			`INSERT INTO reference_counters (kind, last_issued, updated_at)
			 VALUES (?, ?, ?)
			 ON CONFLICT (kind) DO UPDATE SET last_issued = excluded.last_issued, updated_at = excluded.updated_at`,
			kind,
			issued,
			g.clock.Now(),
		).Error
	})
	if err != nil {
		return "", err
	}
	return issued, nil
}

// Peek returns the reference Next would issue without advancing the counter.
func (g *Generator) Peek(ctx context.Context, kind string) (string, error) {
	number, err := g.lastNumber(ctx, g.db, kind)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", kind, number+1), nil
}

// Reset removes the stored counter so the next reference starts at Base.
func (g *Generator) Reset(ctx context.Context, kind string) error {
	return g.db.WithContext(ctx).Exec(
		`DELETE FROM reference_counters WHERE kind = ?`, kind,
	).Error
}

// lastNumber reads the numeric suffix of the stored last-issued reference. A
// missing row or a value that does not match the expected pattern falls back
// to Base-1 so the next issue starts at Base.
func (g *Generator) lastNumber(ctx context.Context, db *gorm.DB, kind string) (int64, error) {
	var stored string
	err := db.WithContext(ctx).Raw(
		`SELECT last_issued FROM reference_counters WHERE kind = ?`, kind,
	).Scan(&stored).Error
	if err != nil {
		return 0, err
	}
	if stored == "" {
		return Base - 1, nil
	}

	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(kind) + `(\d+)$`)
	match := pattern.FindStringSubmatch(stored)
	if match == nil {
		return Base - 1, nil
	}
	number, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return Base - 1, nil
	}
	return number, nil
}
