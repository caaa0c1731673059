package db_models

import "github.com/google/uuid"

// Visit records an encounter with a specific external place. Confirmed
// distinguishes a visit the user explicitly reported from a speculative one
// written when a recommendation was generated; both count toward the
// recommendation exclusion set.
type Visit struct {
	BaseModel
	UserID     uuid.UUID `gorm:"index"`
	ExternalID string    `gorm:"index"`
	Name       string
	Latitude   float64
	Longitude  float64
	Address    string
	Category   string
	Confirmed  bool
}
