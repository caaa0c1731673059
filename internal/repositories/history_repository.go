package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelcompanion/internal/models/db_models"
)

type HistoryRepository interface {
	GetUserHistory(ctx context.Context, userID uuid.UUID) ([]db_models.UserPlaceHistory, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) GetUserHistory(ctx context.Context, userID uuid.UUID) ([]db_models.UserPlaceHistory, error) {
	var history []db_models.UserPlaceHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&history).Error
	return history, err
}
