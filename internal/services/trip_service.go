package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"travelcompanion/internal/models/response_models"
	"travelcompanion/internal/repositories"
	"travelcompanion/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.Trip, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.Trip, error) {
	trips, err := s.tripRepo.ListUserTrips(ctx, userID)
	if err != nil {
		log.Printf("Error listing trips: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Trip, 0, len(trips))
	for _, trip := range trips {
		responses = append(responses, response_models.Trip{
			ID:          trip.ID.String(),
			Destination: trip.Destination,
			Category:    trip.Category,
			CreatedAt:   trip.CreatedAt,
		})
	}
	return responses, nil
}
