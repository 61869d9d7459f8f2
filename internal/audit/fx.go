package audit

import (
	"go.uber.org/fx"

	"github.com/homelife/backoffice/internal/audit/repository"
	"github.com/homelife/backoffice/internal/audit/service"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
