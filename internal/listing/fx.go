package listing

import (
	"go.uber.org/fx"

	"github.com/homelife/backoffice/internal/listing/service"
)

var Module = fx.Module("listing.service",
	fx.Provide(service.NewService),
)
