package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"travelcompanion/internal/models/request_models"
	"travelcompanion/internal/services"
	"travelcompanion/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelController(hotelService services.HotelServiceInterface) *HotelController {
	return &HotelController{
		hotelService: hotelService,
	}
}

func (h *HotelController) GetHotels(c *gin.Context) {
	start := time.Now()
	defer func() {
		log.Printf("Hotel search took %s", time.Since(start))
	}()

	var req request_models.HotelSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hotel search parameters")
		return
	}

	hotels, err := h.hotelService.SearchHotels(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"results": hotels}, "Hotels fetched successfully")
}
