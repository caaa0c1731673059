package response_models

type Hotel struct {
	Name      string  `json:"name"`
	Distance  float64 `json:"dist"`
	Rate      int     `json:"rate"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
