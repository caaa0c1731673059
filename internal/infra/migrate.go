package infra

import (
	"log"

	"gorm.io/gorm"
	"travelcompanion/internal/models/db_models"
)

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Place{},
		&db_models.Rating{},
		&db_models.Review{},
		&db_models.Trip{},
		&db_models.Visit{},
		&db_models.UserPlaceHistory{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}
