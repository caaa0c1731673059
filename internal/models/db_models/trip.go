package db_models

import "github.com/google/uuid"

// Trip records a search/travel intent toward a destination. Written once
// per successful search, never updated.
type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"index"`
	Destination string
	Category    string
}
