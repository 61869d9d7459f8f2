package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/homelife/backoffice/internal/agent"
	"github.com/homelife/backoffice/internal/audit"
	"github.com/homelife/backoffice/internal/clock"
	"github.com/homelife/backoffice/internal/config"
	"github.com/homelife/backoffice/internal/eft"
	"github.com/homelife/backoffice/internal/events"
	"github.com/homelife/backoffice/internal/ledger"
	"github.com/homelife/backoffice/internal/listing"
	"github.com/homelife/backoffice/internal/migration"
	"github.com/homelife/backoffice/internal/observability/logger"
	"github.com/homelife/backoffice/internal/observability/tracing"
	"github.com/homelife/backoffice/internal/receipt"
	"github.com/homelife/backoffice/internal/reminder"
	"github.com/homelife/backoffice/internal/report"
	"github.com/homelife/backoffice/internal/seed"
	"github.com/homelife/backoffice/internal/sequence"
	"github.com/homelife/backoffice/internal/server"
	"github.com/homelife/backoffice/internal/trialbalance"
	"github.com/homelife/backoffice/pkg/db"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		tracing.Module,
		clock.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		fx.Invoke(func(conn *gorm.DB) error {
			if err := migration.RunMigrations(conn); err != nil {
				return err
			}
			if err := seed.EnsureChartOfAccounts(conn); err != nil {
				return err
			}
			return seed.EnsureAgentRoster(conn)
		}),
		events.Module,
		sequence.Module,
		audit.Module,
		ledger.Module,
		receipt.Module,
		trialbalance.Module,
		report.Module,
		listing.Module,
		agent.Module,
		reminder.Module,
		eft.Module,
		server.Module,
	)
	app.Run()
}
