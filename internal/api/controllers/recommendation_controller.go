package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"travelcompanion/internal/services"
	"travelcompanion/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

func (r *RecommendationController) GetRecommendations(c *gin.Context) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid latitude")
		return
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid longitude")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	results, err := r.recommendationService.Recommend(c.Request.Context(), userID, latitude, longitude)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"results": results}, "Recommendations fetched successfully")
}
