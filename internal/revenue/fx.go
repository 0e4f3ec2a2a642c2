package revenue

import (
	"github.com/acmeboard/acmeboard/internal/revenue/service"
	"go.uber.org/fx"
)

var Module = fx.Module("revenue.service",
	fx.Provide(service.New),
)
