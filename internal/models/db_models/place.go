package db_models

import "github.com/google/uuid"

// RatingSourceFoursquare is the canonical source name for ratings observed
// through the place search provider.
const RatingSourceFoursquare = "Foursquare"

// Place categories with their Foursquare API codes.
const (
	CategoryFood          = "Restaurants"            // 13065
	CategoryEntertainment = "Entertainment & Events" // 10032
	CategoryShopping      = "Shops & Retail"         // 17000
	CategoryAttraction    = "Arts & Entertainment"   // 16000
)

// Place is a point of interest, either sighted through an external provider
// or curated locally (ExternalID nil). The unique index on ExternalID is
// what makes the upsert path safe across concurrent requests; Postgres
// allows any number of NULLs under it, so curated places are unaffected.
type Place struct {
	BaseModel
	Name       string
	Latitude   float64 `gorm:"index:idx_latitude"`
	Longitude  float64 `gorm:"index:idx_longitude"`
	Address    string  `gorm:"type:text"`
	Category   string
	ExternalID *string `gorm:"uniqueIndex"`

	Ratings []Rating `gorm:"constraint:OnDelete:CASCADE"`
	Reviews []Review
}

// Rating is one observed score for a place from a named source. Sources are
// not deduplicated: each external fetch may append a new row.
type Rating struct {
	BaseModel
	Source  string    `gorm:"size:50"`
	Rating  float64   `gorm:"type:numeric(3,1)"`
	PlaceID uuid.UUID `gorm:"index"`
}
