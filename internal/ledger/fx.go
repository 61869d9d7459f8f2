package ledger

import (
	"go.uber.org/fx"

	"github.com/homelife/backoffice/internal/ledger/service"
)

var Module = fx.Module("ledger.service",
	fx.Provide(service.NewService),
)
