package reviews_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelcompanion/internal/repositories"
	"travelcompanion/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(reviewRepo repositories.ReviewRepository) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo)
}
