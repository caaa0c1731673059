package trips_fx

import (
	"go.uber.org/fx"
	"travelcompanion/internal/repositories"
	"travelcompanion/internal/services"
)

var Module = fx.Provide(
	provideTripService)

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}
