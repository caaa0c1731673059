package response_models

type Place struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Address    string   `json:"address"`
	Category   string   `json:"category"`
	ExternalID *string  `json:"external_id"`
	Ratings    []Rating `json:"ratings,omitempty"`
}

type Rating struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Rating float64 `json:"rating"`
}

type PlaceList struct {
	Places []Place `json:"places"`
}
