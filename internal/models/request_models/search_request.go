package request_models

type SearchPlacesRequest struct {
	Category  string   `form:"category" binding:"required"`
	Latitude  float64  `form:"latitude" binding:"required"`
	Longitude float64  `form:"longitude" binding:"required"`
	Radius    int      `form:"radius,default=1000"`
	MinRating *float64 `form:"min_rating"`
}
