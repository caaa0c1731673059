package clients_fx

import (
	"go.uber.org/fx"
	"travelcompanion/internal/infra"
	"travelcompanion/internal/services"
	"travelcompanion/pkg/memcache"
)

var Module = fx.Provide(
	provideLabelStore, providePlaceGateway, provideGeocoder, provideHotelGateway)

func provideLabelStore() memcache.LabelStore {
	return memcache.NewLabels()
}

func providePlaceGateway(cfg *infra.Config) services.PlaceSearchClient {
	return services.NewFoursquareClient(cfg)
}

func provideGeocoder(cfg *infra.Config, labels memcache.LabelStore) services.GeocodingClient {
	return services.NewNominatimClient(cfg, labels)
}

func provideHotelGateway(cfg *infra.Config) services.HotelSearchClient {
	return services.NewOpenTripMapClient(cfg)
}
