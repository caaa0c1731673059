package response_models

type Review struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	PlaceID   string `json:"place_id"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type ReviewPage struct {
	Reviews    []Review `json:"reviews"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PerPage    int      `json:"per_page"`
	TotalPages int64    `json:"total_pages"`
}
