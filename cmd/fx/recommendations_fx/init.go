package recommendations_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelcompanion/internal/repositories"
	"travelcompanion/internal/services"
)

var Module = fx.Provide(
	provideHistoryRepo, provideRecommendationService)

func provideHistoryRepo(db *gorm.DB) repositories.HistoryRepository {
	return repositories.NewHistoryRepository(db)
}

func provideRecommendationService(
	historyRepo repositories.HistoryRepository,
	visitRepo repositories.VisitRepository,
	gateway services.PlaceSearchClient,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(historyRepo, visitRepo, gateway)
}
