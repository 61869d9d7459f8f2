package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	agentdomain "github.com/homelife/backoffice/internal/agent/domain"
	"github.com/homelife/backoffice/internal/coa"
)

// EnsureChartOfAccounts mirrors the compiled-in account registry into the
// accounts table. Existing rows are refreshed so description or category
// edits ship with the binary.
func EnsureChartOfAccounts(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, account := range coa.All() {
			err := tx.WithContext(ctx).Exec(
				`INSERT INTO accounts (number, description, type, category)
				 VALUES (?, ?, ?, ?)
				 ON CONFLICT (number) DO UPDATE SET
					description = excluded.description,
					type = excluded.type,
					category = excluded.category`,
				account.Number,
				account.Description,
				string(account.Type),
				account.Category,
			).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

var defaultRoster = []agentdomain.Agent{
	{Name: "J. Rivera", Email: "j.rivera@homelife.example", Phone: "416-555-0181", Active: true},
	{Name: "M. Okafor", Email: "m.okafor@homelife.example", Phone: "416-555-0145", Active: true},
	{Name: "S. Tremblay", Email: "s.tremblay@homelife.example", Phone: "905-555-0117", Active: true},
	{Name: "A. Kowalski", Email: "a.kowalski@homelife.example", Phone: "416-555-0192", Active: false},
}

// EnsureAgentRoster seeds the starter agent roster into an empty agents
// table. A non-empty roster is left untouched.
func EnsureAgentRoster(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.WithContext(ctx).Model(&agentdomain.Agent{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		for _, agent := range defaultRoster {
			agent.ID = node.Generate()
			agent.CreatedAt = now
			if err := tx.WithContext(ctx).Create(&agent).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
