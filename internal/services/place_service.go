package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"travelcompanion/internal/models/db_models"
	"travelcompanion/internal/models/request_models"
	"travelcompanion/internal/models/response_models"
	"travelcompanion/internal/repositories"
	"travelcompanion/pkg/utils"
)

const searchResultLimit = 10

type PlaceServiceInterface interface {
	Search(ctx context.Context, userID uuid.UUID, req request_models.SearchPlacesRequest) (response_models.PlaceList, error)
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
	tripRepo  repositories.TripRepository
	gateway   PlaceSearchClient
	geocoder  GeocodingClient
}

func NewPlaceService(
	placeRepo repositories.PlaceRepository,
	tripRepo repositories.TripRepository,
	gateway PlaceSearchClient,
	geocoder GeocodingClient,
) PlaceServiceInterface {
	return &PlaceService{
		placeRepo: placeRepo,
		tripRepo:  tripRepo,
		gateway:   gateway,
		geocoder:  geocoder,
	}
}

// Search resolves places near the given coordinates: the local store first,
// the external provider as fallback (with upsert), then a trip record for
// the search. A trip is only recorded when the final result set is
// non-empty; an empty provider response returns an empty list with no side
// effects.
func (s *PlaceService) Search(ctx context.Context, userID uuid.UUID, req request_models.SearchPlacesRequest) (response_models.PlaceList, error) {
	empty := response_models.PlaceList{Places: []response_models.Place{}}

	categoryID, ok := s.gateway.CategoryID(req.Category)
	if !ok {
		return empty, utils.ErrInvalidCategory
	}

	box := utils.ComputeBoundingBox(req.Latitude, req.Longitude, req.Radius)
	places, err := s.placeRepo.FindWithinBox(ctx, box, req.Category, req.MinRating)
	if err != nil {
		log.Printf("Error querying local places: %v", err)
		return empty, utils.ErrDatabaseError
	}

	if len(places) == 0 {
		parsed, err := s.gateway.Search(ctx, PlaceSearchQuery{
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			Radius:     req.Radius,
			CategoryID: categoryID,
			Limit:      searchResultLimit,
			MinRating:  req.MinRating,
		})
		if err != nil {
			return empty, err
		}
		if len(parsed) == 0 {
			return empty, nil
		}

		places, err = s.upsertParsed(ctx, req.Category, parsed)
		if err != nil {
			log.Printf("Error upserting external places: %v", err)
			return empty, utils.ErrDatabaseError
		}
	}

	destination := s.geocoder.ReverseGeocode(ctx, req.Latitude, req.Longitude)
	trip := &db_models.Trip{UserID: userID, Destination: destination, Category: req.Category}
	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		log.Printf("Error saving trip: %v", err)
		return empty, utils.ErrDatabaseError
	}

	return response_models.PlaceList{Places: toPlaceResponses(places)}, nil
}

// upsertParsed splits the batch into already-known and new external ids,
// saves the new ones with their ratings, and returns the union in input
// order. The pre-check keeps one invocation from inserting the same
// external id twice; the storage-layer unique constraint covers races
// between invocations.
func (s *PlaceService) upsertParsed(ctx context.Context, category string, parsed []ParsedPlace) ([]db_models.Place, error) {
	externalIDs := make([]string, 0, len(parsed))
	for _, p := range parsed {
		externalIDs = append(externalIDs, p.ExternalID)
	}

	existing, err := s.placeRepo.FindByExternalIDs(ctx, externalIDs)
	if err != nil {
		return nil, err
	}

	newPlaces := make([]*db_models.Place, 0, len(parsed))
	ratingValues := make([]*float64, 0, len(parsed))
	queued := make(map[string]bool, len(parsed))
	for _, p := range parsed {
		if _, ok := existing[p.ExternalID]; ok {
			continue
		}
		if queued[p.ExternalID] {
			continue
		}
		queued[p.ExternalID] = true

		externalID := p.ExternalID
		newPlaces = append(newPlaces, &db_models.Place{
			Name:       p.Name,
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			Address:    p.Address,
			Category:   category,
			ExternalID: &externalID,
		})
		ratingValues = append(ratingValues, p.Rating)
	}

	saved, err := s.placeRepo.SaveExternalPlaces(ctx, newPlaces, ratingValues)
	if err != nil {
		return nil, err
	}

	savedByExternalID := make(map[string]db_models.Place, len(saved))
	for _, place := range saved {
		savedByExternalID[*place.ExternalID] = place
	}

	results := make([]db_models.Place, 0, len(parsed))
	seen := make(map[string]bool, len(parsed))
	for _, p := range parsed {
		if seen[p.ExternalID] {
			continue
		}
		seen[p.ExternalID] = true
		if place, ok := existing[p.ExternalID]; ok {
			results = append(results, place)
		} else if place, ok := savedByExternalID[p.ExternalID]; ok {
			results = append(results, place)
		}
	}
	return results, nil
}

func toPlaceResponses(places []db_models.Place) []response_models.Place {
	responses := make([]response_models.Place, 0, len(places))
	for _, place := range places {
		resp := response_models.Place{
			ID:         place.ID.String(),
			Name:       place.Name,
			Latitude:   place.Latitude,
			Longitude:  place.Longitude,
			Address:    place.Address,
			Category:   place.Category,
			ExternalID: place.ExternalID,
		}
		for _, rating := range place.Ratings {
			// Response rating objects carry only values valid for their
			// declared source.
			if err := utils.ValidateRatingRange(rating.Source, rating.Rating); err != nil {
				log.Printf("Skipping invalid rating %v from %s: %v", rating.Rating, rating.Source, err)
				continue
			}
			resp.Ratings = append(resp.Ratings, response_models.Rating{
				ID:     rating.ID.String(),
				Source: rating.Source,
				Rating: rating.Rating,
			})
		}
		responses = append(responses, resp)
	}
	return responses
}
