package request_models

import "github.com/google/uuid"

type CreateReviewRequest struct {
	PlaceID uuid.UUID `json:"place_id" binding:"required"`
	Content string    `json:"content" binding:"required"`
	Rating  int       `json:"rating" binding:"required,min=1,max=5"`
}

type UpdateReviewRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}
