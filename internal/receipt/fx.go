package receipt

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/homelife/backoffice/internal/receipt/domain"
	"github.com/homelife/backoffice/internal/receipt/service"
	"github.com/homelife/backoffice/internal/receipt/store"
)

var Module = fx.Module("receipt.service",
	fx.Provide(func(db *gorm.DB) domain.Store {
		return store.NewGormStore(db)
	}),
	fx.Provide(service.NewService),
)
