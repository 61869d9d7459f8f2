package reminder

import (
	"go.uber.org/fx"

	"github.com/homelife/backoffice/internal/reminder/service"
)

var Module = fx.Module("reminder",
	fx.Provide(
		service.NewService,
	),
)
