package customer

import (
	"github.com/acmeboard/acmeboard/internal/customer/repository"
	"github.com/acmeboard/acmeboard/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
