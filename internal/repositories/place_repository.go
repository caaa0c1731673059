package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"travelcompanion/internal/models/db_models"
	"travelcompanion/pkg/utils"
)

type PlaceRepository interface {
	FindWithinBox(ctx context.Context, box utils.BoundingBox, category string, minRating *float64) ([]db_models.Place, error)
	FindByExternalIDs(ctx context.Context, externalIDs []string) (map[string]db_models.Place, error)
	SaveExternalPlaces(ctx context.Context, places []*db_models.Place, ratingValues []*float64) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// FindWithinBox returns externally-sourced places of the given category
// inside the bounding box. When a rating floor is requested, candidates are
// filtered against their Foursquare rating rows; candidates without such a
// row are excluded only in that case.
func (r *placeRepository) FindWithinBox(ctx context.Context, box utils.BoundingBox, category string, minRating *float64) ([]db_models.Place, error) {
	var candidates []db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Ratings").
		Where("latitude BETWEEN ? AND ?", box.LatMin, box.LatMax).
		Where("longitude BETWEEN ? AND ?", box.LonMin, box.LonMax).
		Where("category = ?", category).
		Where("external_id IS NOT NULL").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	if minRating == nil || len(candidates) == 0 {
		return candidates, nil
	}

	filtered := make([]db_models.Place, 0, len(candidates))
	for _, place := range candidates {
		for _, rating := range place.Ratings {
			if rating.Source == db_models.RatingSourceFoursquare && rating.Rating >= *minRating {
				filtered = append(filtered, place)
				break
			}
		}
	}
	return filtered, nil
}

func (r *placeRepository) FindByExternalIDs(ctx context.Context, externalIDs []string) (map[string]db_models.Place, error) {
	if len(externalIDs) == 0 {
		return map[string]db_models.Place{}, nil
	}

	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Ratings").
		Where("external_id IN ?", externalIDs).
		Find(&places).Error
	if err != nil {
		return nil, err
	}

	byExternalID := make(map[string]db_models.Place, len(places))
	for _, place := range places {
		if place.ExternalID != nil {
			byExternalID[*place.ExternalID] = place
		}
	}
	return byExternalID, nil
}

// SaveExternalPlaces inserts the batch and attaches the parsed rating
// values to the generated ids, all in one transaction. ratingValues is
// aligned with places; nil means the provider reported no rating.
//
// The insert carries ON CONFLICT (external_id) DO NOTHING: a concurrent
// request racing on the same external id wins or loses the insert at the
// storage layer, and the re-read below maps skipped rows to the winner's
// id, so no duplicate Place rows can appear either way.
func (r *placeRepository) SaveExternalPlaces(ctx context.Context, places []*db_models.Place, ratingValues []*float64) ([]db_models.Place, error) {
	if len(places) == 0 {
		return nil, nil
	}
	if len(ratingValues) != len(places) {
		return nil, fmt.Errorf("rating values not aligned with places")
	}

	saved := make([]db_models.Place, 0, len(places))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoNothing: true,
		}).Create(&places).Error; err != nil {
			return err
		}

		externalIDs := make([]string, 0, len(places))
		for _, place := range places {
			externalIDs = append(externalIDs, *place.ExternalID)
		}

		var rows []db_models.Place
		if err := tx.Where("external_id IN ?", externalIDs).Find(&rows).Error; err != nil {
			return err
		}
		byExternalID := make(map[string]db_models.Place, len(rows))
		for _, row := range rows {
			byExternalID[*row.ExternalID] = row
		}

		ratings := make([]db_models.Rating, 0, len(places))
		for i, place := range places {
			row, ok := byExternalID[*place.ExternalID]
			if !ok {
				return fmt.Errorf("place %s missing after insert", *place.ExternalID)
			}
			saved = append(saved, row)
			if ratingValues[i] != nil {
				ratings = append(ratings, db_models.Rating{
					Source:  db_models.RatingSourceFoursquare,
					Rating:  *ratingValues[i],
					PlaceID: row.ID,
				})
			}
		}

		if len(ratings) > 0 {
			if err := tx.Create(&ratings).Error; err != nil {
				return err
			}
		}

		// Reflect the fresh ratings on the returned rows so callers can
		// shape responses without another read.
		next := 0
		for i := range places {
			if ratingValues[i] != nil {
				saved[i].Ratings = append(saved[i].Ratings, ratings[next])
				next++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
