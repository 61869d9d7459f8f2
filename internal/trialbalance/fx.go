package trialbalance

import (
	"go.uber.org/fx"

	"github.com/homelife/backoffice/internal/trialbalance/service"
)

var Module = fx.Module("trialbalance.service",
	fx.Provide(service.NewService),
)
