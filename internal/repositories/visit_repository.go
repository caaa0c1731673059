package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelcompanion/internal/models/db_models"
)

type VisitRepository interface {
	Insert(ctx context.Context, visit *db_models.Visit) error
	ListUserVisits(ctx context.Context, userID uuid.UUID) ([]db_models.Visit, error)
}

type visitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Insert(ctx context.Context, visit *db_models.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) ListUserVisits(ctx context.Context, userID uuid.UUID) ([]db_models.Visit, error) {
	var visits []db_models.Visit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&visits).Error
	return visits, err
}
