package agent

import (
	"go.uber.org/fx"

	"github.com/homelife/backoffice/internal/agent/service"
)

var Module = fx.Module("agent.service",
	fx.Provide(service.NewService),
)
