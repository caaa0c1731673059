package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelcompanion/internal/infra"
)

var Module = fx.Provide(
	infra.LoadConfig, provideDB)

func provideDB(cfg *infra.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
