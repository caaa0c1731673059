package visits_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelcompanion/internal/repositories"
	"travelcompanion/internal/services"
)

var Module = fx.Provide(
	provideVisitRepo, provideVisitService)

func provideVisitRepo(db *gorm.DB) repositories.VisitRepository {
	return repositories.NewVisitRepository(db)
}

func provideVisitService(visitRepo repositories.VisitRepository) services.VisitServiceInterface {
	return services.NewVisitService(visitRepo)
}
