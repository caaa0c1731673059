package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelcompanion/internal/models/db_models"
	"travelcompanion/internal/models/request_models"
	"travelcompanion/internal/models/response_models"
	"travelcompanion/internal/repositories"
	"travelcompanion/pkg/utils"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, userID uuid.UUID, req request_models.CreateReviewRequest) (response_models.Review, error)
	ListReviews(ctx context.Context, page, perPage int) (response_models.ReviewPage, error)
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, req request_models.UpdateReviewRequest) error
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewServiceInterface {
	return &ReviewService{reviewRepo: reviewRepo}
}

func (s *ReviewService) CreateReview(ctx context.Context, userID uuid.UUID, req request_models.CreateReviewRequest) (response_models.Review, error) {
	review := &db_models.Review{
		UserID:  userID,
		PlaceID: req.PlaceID,
		Content: req.Content,
		Rating:  req.Rating,
	}
	if err := s.reviewRepo.Insert(ctx, review); err != nil {
		log.Printf("Error creating review: %v", err)
		return response_models.Review{}, utils.ErrDatabaseError
	}
	return toReviewResponse(review), nil
}

func (s *ReviewService) ListReviews(ctx context.Context, page, perPage int) (response_models.ReviewPage, error) {
	reviews, err := s.reviewRepo.List(ctx, page, perPage)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return response_models.ReviewPage{}, utils.ErrDatabaseError
	}

	total, err := s.reviewRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting reviews: %v", err)
		return response_models.ReviewPage{}, utils.ErrDatabaseError
	}

	responses := make([]response_models.Review, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, toReviewResponse(&reviews[i]))
	}

	return response_models.ReviewPage{
		Reviews:    responses,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: (total + int64(perPage) - 1) / int64(perPage),
	}, nil
}

// UpdateReview mutates a review only when it belongs to the caller.
func (s *ReviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, req request_models.UpdateReviewRequest) error {
	err := s.reviewRepo.UpdateOwned(ctx, reviewID, userID, req.Content, req.Rating)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrReviewNotFound
	}
	if err != nil {
		log.Printf("Error updating review: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

// DeleteReview is ownership-scoped like update: deleting someone else's
// review reports not-found rather than removing it.
func (s *ReviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	err := s.reviewRepo.DeleteOwned(ctx, reviewID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrReviewNotFound
	}
	if err != nil {
		log.Printf("Error deleting review: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toReviewResponse(review *db_models.Review) response_models.Review {
	return response_models.Review{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		PlaceID:   review.PlaceID.String(),
		Content:   review.Content,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
