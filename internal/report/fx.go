package report

import (
	"go.uber.org/fx"

	"github.com/homelife/backoffice/internal/report/render"
)

var Module = fx.Module("report",
	fx.Provide(render.NewRenderer),
)
