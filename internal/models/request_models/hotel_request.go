package request_models

type HotelSearchRequest struct {
	Name      string  `form:"name"`
	Latitude  float64 `form:"lat" binding:"required"`
	Longitude float64 `form:"lon" binding:"required"`
	Radius    int     `form:"radius,default=1000"`
	Rate      string  `form:"rate"`
	SortBy    string  `form:"sort_by" binding:"omitempty,oneof=distance rating"`
}
