package controllers_fx

import (
	"go.uber.org/fx"
	"travelcompanion/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlaceController),
	fx.Provide(controllers.NewHotelController),
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewVisitController),
	fx.Provide(controllers.NewReviewController))
