package db_models

type User struct {
	BaseModel
	Username       string `gorm:"uniqueIndex"`
	Email          string `gorm:"uniqueIndex"`
	HashedPassword string

	Trips   []Trip
	Visits  []Visit
	Reviews []Review `gorm:"constraint:OnDelete:CASCADE"`
}
