package hotels_fx

import (
	"go.uber.org/fx"
	"travelcompanion/internal/services"
)

var Module = fx.Provide(
	provideHotelService)

func provideHotelService(cache services.CacheStore, client services.HotelSearchClient) services.HotelServiceInterface {
	return services.NewHotelService(cache, client)
}
