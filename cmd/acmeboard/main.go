package main

import (
	"github.com/acmeboard/acmeboard/internal/clock"
	"github.com/acmeboard/acmeboard/internal/config"
	"github.com/acmeboard/acmeboard/internal/logger"
	"github.com/acmeboard/acmeboard/internal/migration"
	"github.com/acmeboard/acmeboard/internal/server"
	"github.com/acmeboard/acmeboard/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
