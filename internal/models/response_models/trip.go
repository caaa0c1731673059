package response_models

type Trip struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Category    string `json:"category"`
	CreatedAt   int64  `json:"created_at"`
}
