package places_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelcompanion/internal/repositories"
	"travelcompanion/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, provideTripRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func providePlaceService(
	placeRepo repositories.PlaceRepository,
	tripRepo repositories.TripRepository,
	gateway services.PlaceSearchClient,
	geocoder services.GeocodingClient,
) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, tripRepo, gateway, geocoder)
}
