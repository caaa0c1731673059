package response_models

type Visit struct {
	ID         string  `json:"id"`
	ExternalID string  `json:"external_id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address"`
	Category   string  `json:"category"`
	Confirmed  bool    `json:"confirmed"`
}
