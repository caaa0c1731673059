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

type VisitServiceInterface interface {
	CreateVisit(ctx context.Context, userID uuid.UUID, req request_models.CreateVisitRequest) (response_models.Visit, error)
	ListVisits(ctx context.Context, userID uuid.UUID) ([]response_models.Visit, error)
}

type VisitService struct {
	visitRepo repositories.VisitRepository
}

func NewVisitService(visitRepo repositories.VisitRepository) VisitServiceInterface {
	return &VisitService{visitRepo: visitRepo}
}

// CreateVisit records an explicit, user-reported visit. The user id always
// comes from the authenticated identity, never the request body.
func (s *VisitService) CreateVisit(ctx context.Context, userID uuid.UUID, req request_models.CreateVisitRequest) (response_models.Visit, error) {
	visit := &db_models.Visit{
		UserID:     userID,
		ExternalID: req.ExternalID,
		Name:       req.Name,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Address:    req.Address,
		Category:   req.Category,
		Confirmed:  true,
	}
	if err := s.visitRepo.Insert(ctx, visit); err != nil {
		log.Printf("Error creating visit: %v", err)
		return response_models.Visit{}, utils.ErrDatabaseError
	}
	return toVisitResponse(visit), nil
}

func (s *VisitService) ListVisits(ctx context.Context, userID uuid.UUID) ([]response_models.Visit, error) {
	visits, err := s.visitRepo.ListUserVisits(ctx, userID)
	if err != nil {
		log.Printf("Error listing visits: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Visit, 0, len(visits))
	for i := range visits {
		responses = append(responses, toVisitResponse(&visits[i]))
	}
	return responses, nil
}

func toVisitResponse(visit *db_models.Visit) response_models.Visit {
	return response_models.Visit{
		ID:         visit.ID.String(),
		ExternalID: visit.ExternalID,
		Name:       visit.Name,
		Latitude:   visit.Latitude,
		Longitude:  visit.Longitude,
		Address:    visit.Address,
		Category:   visit.Category,
		Confirmed:  visit.Confirmed,
	}
}
