package eft

import (
	"go.uber.org/fx"

	"github.com/homelife/backoffice/internal/eft/service"
)

var Module = fx.Module("eft",
	fx.Provide(
		service.NewService,
	),
)
