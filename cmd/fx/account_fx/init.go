package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelcompanion/internal/infra"
	"travelcompanion/internal/repositories"
	"travelcompanion/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, cfg *infra.Config) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, cfg)
}
