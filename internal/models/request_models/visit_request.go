package request_models

type CreateVisitRequest struct {
	ExternalID string  `json:"external_id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address"`
	Category   string  `json:"category"`
}
