package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelcompanion/internal/models/db_models"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review *db_models.Review) error
	List(ctx context.Context, page, pageSize int) ([]db_models.Review, error)
	Count(ctx context.Context) (int64, error)
	// UpdateOwned and DeleteOwned are scoped to the author; they report
	// gorm.ErrRecordNotFound when the review is absent or owned by
	// someone else.
	UpdateOwned(ctx context.Context, reviewID, userID uuid.UUID, content string, rating int) error
	DeleteOwned(ctx context.Context, reviewID, userID uuid.UUID) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Review{}).Count(&count).Error
	return count, err
}

func (r *reviewRepository) UpdateOwned(ctx context.Context, reviewID, userID uuid.UUID, content string, rating int) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("id = ? AND user_id = ?", reviewID, userID).
		Updates(map[string]interface{}{"content": content, "rating": rating})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) DeleteOwned(ctx context.Context, reviewID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", reviewID, userID).
		Delete(&db_models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
