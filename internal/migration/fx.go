package migration

import (
	"context"

	"github.com/acmeboard/acmeboard/internal/config"
	"github.com/acmeboard/acmeboard/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			if err := AutoMigrate(conn); err != nil {
				return err
			}
		}

		if cfg.SeedOnStartup {
			return seed.Run(context.Background(), conn)
		}
		return nil
	}),
)
