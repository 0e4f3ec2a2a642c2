package invoice

import (
	"github.com/acmeboard/acmeboard/internal/invoice/repository"
	"github.com/acmeboard/acmeboard/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
