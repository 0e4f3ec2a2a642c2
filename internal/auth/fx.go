package auth

import (
	"github.com/acmeboard/acmeboard/internal/auth/local"
	"github.com/acmeboard/acmeboard/internal/auth/repository"
	"github.com/acmeboard/acmeboard/internal/auth/service"
	"github.com/acmeboard/acmeboard/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
	fx.Provide(session.NewManager),
	fx.Provide(local.NewHandler),
)
