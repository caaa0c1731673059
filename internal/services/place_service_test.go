package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelcompanion/internal/models/db_models"
	"travelcompanion/internal/models/request_models"
	"travelcompanion/internal/services"
	"travelcompanion/pkg/utils"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func foursquareCategories() func(string) (string, bool) {
	codes := map[string]string{
		db_models.CategoryFood:       "13065",
		db_models.CategoryAttraction: "16000",
	}
	return func(category string) (string, bool) {
		code, ok := codes[category]
		return code, ok
	}
}

func TestSearchRejectsUnknownCategory(t *testing.T) {
	gateway := &mockGateway{categoryIDFn: func(string) (string, bool) { return "", false }}
	svc := services.NewPlaceService(&mockPlaceRepo{}, &mockTripRepo{}, gateway, &mockGeocoder{})

	_, err := svc.Search(context.Background(), uuid.New(), request_models.SearchPlacesRequest{
		Category: "Nightlife",
		Latitude: 10, Longitude: 10, Radius: 1000,
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCategory)
}

func TestSearchLocalHitSkipsProvider(t *testing.T) {
	place := db_models.Place{
		Name:       "Cafe Central",
		Latitude:   48.21,
		Longitude:  16.36,
		Category:   db_models.CategoryFood,
		ExternalID: strPtr("fsq-1"),
		Ratings: []db_models.Rating{
			{Source: db_models.RatingSourceFoursquare, Rating: 8.7},
		},
	}
	place.ID = uuid.New()
	place.Ratings[0].ID = uuid.New()

	placeRepo := &mockPlaceRepo{
		findWithinBoxFn: func(_ context.Context, box utils.BoundingBox, category string, _ *float64) ([]db_models.Place, error) {
			assert.Equal(t, db_models.CategoryFood, category)
			assert.Less(t, box.LatMin, 48.21)
			assert.Greater(t, box.LatMax, 48.21)
			return []db_models.Place{place}, nil
		},
	}
	var savedTrip *db_models.Trip
	tripRepo := &mockTripRepo{
		saveTripFn: func(_ context.Context, trip *db_models.Trip) error {
			savedTrip = trip
			return nil
		},
	}
	gateway := &mockGateway{
		categoryIDFn: foursquareCategories(),
		searchFn: func(context.Context, services.PlaceSearchQuery) ([]services.ParsedPlace, error) {
			t.Fatal("provider must not be called on a local hit")
			return nil, nil
		},
	}
	geocoder := &mockGeocoder{
		reverseGeocodeFn: func(context.Context, float64, float64) string { return "Vienna" },
	}

	svc := services.NewPlaceService(placeRepo, tripRepo, gateway, geocoder)
	userID := uuid.New()

	result, err := svc.Search(context.Background(), userID, request_models.SearchPlacesRequest{
		Category: db_models.CategoryFood,
		Latitude: 48.21, Longitude: 16.36, Radius: 1000,
	})

	require.NoError(t, err)
	require.Len(t, result.Places, 1)
	assert.Equal(t, "Cafe Central", result.Places[0].Name)
	require.Len(t, result.Places[0].Ratings, 1)
	assert.Equal(t, 8.7, result.Places[0].Ratings[0].Rating)

	require.NotNil(t, savedTrip)
	assert.Equal(t, userID, savedTrip.UserID)
	assert.Equal(t, "Vienna", savedTrip.Destination)
	assert.Equal(t, db_models.CategoryFood, savedTrip.Category)
}

func TestSearchEmptyProviderResultHasNoSideEffects(t *testing.T) {
	placeRepo := &mockPlaceRepo{
		findWithinBoxFn: func(context.Context, utils.BoundingBox, string, *float64) ([]db_models.Place, error) {
			return nil, nil
		},
	}
	tripRepo := &mockTripRepo{
		saveTripFn: func(context.Context, *db_models.Trip) error {
			t.Fatal("no trip must be recorded for an empty result")
			return nil
		},
	}
	gateway := &mockGateway{
		categoryIDFn: foursquareCategories(),
		searchFn: func(context.Context, services.PlaceSearchQuery) ([]services.ParsedPlace, error) {
			return []services.ParsedPlace{}, nil
		},
	}

	svc := services.NewPlaceService(placeRepo, tripRepo, gateway, &mockGeocoder{})

	result, err := svc.Search(context.Background(), uuid.New(), request_models.SearchPlacesRequest{
		Category: db_models.CategoryFood,
		Latitude: 10, Longitude: 10, Radius: 1000,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Places)
}

func TestSearchProviderFallbackUpsertsOnlyNewPlaces(t *testing.T) {
	known := db_models.Place{
		Name:       "Known Spot",
		Category:   db_models.CategoryFood,
		ExternalID: strPtr("fsq-known"),
	}
	known.ID = uuid.New()

	placeRepo := &mockPlaceRepo{
		findWithinBoxFn: func(context.Context, utils.BoundingBox, string, *float64) ([]db_models.Place, error) {
			return nil, nil
		},
		findByExternalIDsFn: func(_ context.Context, externalIDs []string) (map[string]db_models.Place, error) {
			assert.ElementsMatch(t, []string{"fsq-known", "fsq-new"}, externalIDs)
			return map[string]db_models.Place{"fsq-known": known}, nil
		},
		saveExternalPlacesFn: func(_ context.Context, places []*db_models.Place, ratingValues []*float64) ([]db_models.Place, error) {
			require.Len(t, places, 1)
			require.Len(t, ratingValues, 1)
			assert.Equal(t, "fsq-new", *places[0].ExternalID)
			assert.Equal(t, 9.1, *ratingValues[0])

			saved := *places[0]
			saved.ID = uuid.New()
			saved.Ratings = []db_models.Rating{
				{Source: db_models.RatingSourceFoursquare, Rating: *ratingValues[0], PlaceID: saved.ID},
			}
			return []db_models.Place{saved}, nil
		},
	}
	tripRepo := &mockTripRepo{
		saveTripFn: func(context.Context, *db_models.Trip) error { return nil },
	}
	gateway := &mockGateway{
		categoryIDFn: foursquareCategories(),
		searchFn: func(_ context.Context, query services.PlaceSearchQuery) ([]services.ParsedPlace, error) {
			assert.Equal(t, "13065", query.CategoryID)
			return []services.ParsedPlace{
				{ExternalID: "fsq-known", Name: "Known Spot", Rating: floatPtr(8.0)},
				{ExternalID: "fsq-new", Name: "New Spot", Rating: floatPtr(9.1)},
			}, nil
		},
	}
	geocoder := &mockGeocoder{
		reverseGeocodeFn: func(context.Context, float64, float64) string { return "Somewhere" },
	}

	svc := services.NewPlaceService(placeRepo, tripRepo, gateway, geocoder)

	result, err := svc.Search(context.Background(), uuid.New(), request_models.SearchPlacesRequest{
		Category: db_models.CategoryFood,
		Latitude: 10, Longitude: 10, Radius: 1000,
	})

	require.NoError(t, err)
	require.Len(t, result.Places, 2)
	assert.Equal(t, "Known Spot", result.Places[0].Name)
	assert.Equal(t, "New Spot", result.Places[1].Name)
	require.Len(t, result.Places[1].Ratings, 1)
	assert.Equal(t, 9.1, result.Places[1].Ratings[0].Rating)
}

func TestSearchProviderErrorPropagates(t *testing.T) {
	placeRepo := &mockPlaceRepo{
		findWithinBoxFn: func(context.Context, utils.BoundingBox, string, *float64) ([]db_models.Place, error) {
			return nil, nil
		},
	}
	gateway := &mockGateway{
		categoryIDFn: foursquareCategories(),
		searchFn: func(context.Context, services.PlaceSearchQuery) ([]services.ParsedPlace, error) {
			return nil, utils.ErrUpstreamReadTimeout
		},
	}

	svc := services.NewPlaceService(placeRepo, &mockTripRepo{}, gateway, &mockGeocoder{})

	_, err := svc.Search(context.Background(), uuid.New(), request_models.SearchPlacesRequest{
		Category: db_models.CategoryFood,
		Latitude: 10, Longitude: 10, Radius: 1000,
	})

	assert.ErrorIs(t, err, utils.ErrUpstreamReadTimeout)
}

func TestSearchStorageErrorMapsToDatabaseError(t *testing.T) {
	placeRepo := &mockPlaceRepo{
		findWithinBoxFn: func(context.Context, utils.BoundingBox, string, *float64) ([]db_models.Place, error) {
			return nil, errors.New("connection reset")
		},
	}
	gateway := &mockGateway{categoryIDFn: foursquareCategories()}

	svc := services.NewPlaceService(placeRepo, &mockTripRepo{}, gateway, &mockGeocoder{})

	_, err := svc.Search(context.Background(), uuid.New(), request_models.SearchPlacesRequest{
		Category: db_models.CategoryFood,
		Latitude: 10, Longitude: 10, Radius: 1000,
	})

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestSearchSkipsOutOfRangeRatingsInResponse(t *testing.T) {
	place := db_models.Place{
		Name:       "Odd Ratings",
		Category:   db_models.CategoryFood,
		ExternalID: strPtr("fsq-odd"),
		Ratings: []db_models.Rating{
			{Source: db_models.RatingSourceFoursquare, Rating: 11},
			{Source: "2GIS", Rating: 4.5},
		},
	}
	place.ID = uuid.New()

	placeRepo := &mockPlaceRepo{
		findWithinBoxFn: func(context.Context, utils.BoundingBox, string, *float64) ([]db_models.Place, error) {
			return []db_models.Place{place}, nil
		},
	}
	tripRepo := &mockTripRepo{
		saveTripFn: func(context.Context, *db_models.Trip) error { return nil },
	}
	gateway := &mockGateway{categoryIDFn: foursquareCategories()}
	geocoder := &mockGeocoder{
		reverseGeocodeFn: func(context.Context, float64, float64) string { return "Somewhere" },
	}

	svc := services.NewPlaceService(placeRepo, tripRepo, gateway, geocoder)

	result, err := svc.Search(context.Background(), uuid.New(), request_models.SearchPlacesRequest{
		Category: db_models.CategoryFood,
		Latitude: 10, Longitude: 10, Radius: 1000,
	})

	require.NoError(t, err)
	require.Len(t, result.Places, 1)
	require.Len(t, result.Places[0].Ratings, 1)
	assert.Equal(t, "2GIS", result.Places[0].Ratings[0].Source)
}
