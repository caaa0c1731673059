package db_models

import "github.com/google/uuid"

// Review is user-authored content on a place, rated 1-5. Mutations are
// always scoped to the author.
type Review struct {
	BaseModel
	UserID  uuid.UUID `gorm:"index"`
	PlaceID uuid.UUID `gorm:"index"`
	Content string    `gorm:"type:text"`
	Rating  int
}
