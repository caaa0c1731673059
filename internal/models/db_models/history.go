package db_models

import "github.com/google/uuid"

// UserPlaceHistory is the imported interaction history the recommendation
// engine learns from: external place id, category and a 0-10 rating.
type UserPlaceHistory struct {
	BaseModel
	UserID    uuid.UUID `gorm:"index"`
	PlaceID   string    `gorm:"index"`
	PlaceName string
	Category  string
	Rating    float64
}
