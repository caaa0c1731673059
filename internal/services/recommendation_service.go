package services

import (
	"context"
	"log"
	"sort"

	"github.com/google/uuid"
	"travelcompanion/internal/models/db_models"
	"travelcompanion/internal/models/response_models"
	"travelcompanion/internal/repositories"
	"travelcompanion/pkg/utils"
)

const (
	recommendationRadius = 2000
	recommendationLimit  = 20
	recommendationTopN   = 10

	// History entries at or above this 0-10 rating mark a liked category.
	likedCategoryThreshold = 7
)

// Used when the history yields no liked categories.
var fallbackCategories = []string{db_models.CategoryAttraction, db_models.CategoryFood}

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, userID uuid.UUID, latitude, longitude float64) ([]response_models.Recommendation, error)
	MarkAsVisited(ctx context.Context, userID uuid.UUID, rec response_models.Recommendation) error
}

type RecommendationService struct {
	historyRepo repositories.HistoryRepository
	visitRepo   repositories.VisitRepository
	gateway     PlaceSearchClient
}

func NewRecommendationService(
	historyRepo repositories.HistoryRepository,
	visitRepo repositories.VisitRepository,
	gateway PlaceSearchClient,
) RecommendationServiceInterface {
	return &RecommendationService{
		historyRepo: historyRepo,
		visitRepo:   visitRepo,
		gateway:     gateway,
	}
}

// Recommend produces up to ten places near the coordinates ranked by
// provider rating, driven by the user's history: liked categories select
// what to search for, the lowest historical rating sets the provider
// filter floor, and everything already visited is excluded. Each accepted
// candidate is written through as a speculative visit so later calls
// exclude it too.
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID, latitude, longitude float64) ([]response_models.Recommendation, error) {
	history, err := s.historyRepo.GetUserHistory(ctx, userID)
	if err != nil {
		log.Printf("Error loading user history: %v", err)
		return nil, utils.ErrDatabaseError
	}
	visits, err := s.visitRepo.ListUserVisits(ctx, userID)
	if err != nil {
		log.Printf("Error loading user visits: %v", err)
		return nil, utils.ErrDatabaseError
	}

	visited := make(map[string]bool, len(history)+len(visits))
	for _, h := range history {
		visited[h.PlaceID] = true
	}
	for _, v := range visits {
		visited[v.ExternalID] = true
	}

	var categories []string
	likedSeen := make(map[string]bool)
	minRating := 0.0
	for _, h := range history {
		if h.Rating >= likedCategoryThreshold && !likedSeen[h.Category] {
			likedSeen[h.Category] = true
			categories = append(categories, h.Category)
		}
		if h.Rating > 0 && (minRating == 0 || h.Rating < minRating) {
			minRating = h.Rating
		}
	}
	if len(categories) == 0 {
		categories = fallbackCategories
	}

	var recommendations []response_models.Recommendation
	var newVisits []*db_models.Visit

	for _, category := range categories {
		categoryID, ok := s.gateway.CategoryID(category)
		if !ok {
			continue
		}

		parsed, err := s.gateway.Search(ctx, PlaceSearchQuery{
			Latitude:   latitude,
			Longitude:  longitude,
			Radius:     recommendationRadius,
			CategoryID: categoryID,
			Limit:      recommendationLimit,
			Sort:       "RELEVANCE",
			MinRating:  &minRating,
		})
		if err != nil {
			return nil, err
		}

		for _, p := range parsed {
			if visited[p.ExternalID] {
				continue
			}

			rating := 0.0
			if p.Rating != nil {
				rating = *p.Rating
			}
			recommendations = append(recommendations, response_models.Recommendation{
				ExternalID: p.ExternalID,
				Name:       p.Name,
				Latitude:   p.Latitude,
				Longitude:  p.Longitude,
				Address:    p.Address,
				Category:   category,
				Rating:     rating,
			})

			newVisits = append(newVisits, &db_models.Visit{
				UserID:     userID,
				ExternalID: p.ExternalID,
				Name:       p.Name,
				Latitude:   p.Latitude,
				Longitude:  p.Longitude,
				Address:    p.Address,
				Category:   category,
				Confirmed:  false,
			})
		}
	}

	for _, visit := range newVisits {
		if err := s.visitRepo.Insert(ctx, visit); err != nil {
			log.Printf("Error recording speculative visit: %v", err)
			return nil, utils.ErrDatabaseError
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Rating > recommendations[j].Rating
	})
	if len(recommendations) > recommendationTopN {
		recommendations = recommendations[:recommendationTopN]
	}
	return recommendations, nil
}

// MarkAsVisited records a recommendation the user confirmed visiting.
func (s *RecommendationService) MarkAsVisited(ctx context.Context, userID uuid.UUID, rec response_models.Recommendation) error {
	visit := &db_models.Visit{
		UserID:     userID,
		ExternalID: rec.ExternalID,
		Name:       rec.Name,
		Latitude:   rec.Latitude,
		Longitude:  rec.Longitude,
		Address:    rec.Address,
		Category:   rec.Category,
		Confirmed:  true,
	}
	if err := s.visitRepo.Insert(ctx, visit); err != nil {
		log.Printf("Error while marking place as visited: %v", err)
		return utils.ErrMarkVisitFailed
	}
	return nil
}
