package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelcompanion/internal/models/request_models"
	"travelcompanion/internal/models/response_models"
	"travelcompanion/internal/services"
	"travelcompanion/pkg/utils"
)

type VisitController struct {
	visitService          services.VisitServiceInterface
	recommendationService services.RecommendationServiceInterface
}

func NewVisitController(
	visitService services.VisitServiceInterface,
	recommendationService services.RecommendationServiceInterface,
) *VisitController {
	return &VisitController{
		visitService:          visitService,
		recommendationService: recommendationService,
	}
}

func (v *VisitController) CreateVisit(c *gin.Context) {
	var req request_models.CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	visit, err := v.visitService.CreateVisit(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, visit, "Visit recorded successfully")
}

func (v *VisitController) ListVisits(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	visits, err := v.visitService.ListVisits(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, visits, "Visits fetched successfully")
}

// SaveVisitedPlace confirms a previously recommended place as visited.
func (v *VisitController) SaveVisitedPlace(c *gin.Context) {
	var rec response_models.Recommendation
	if err := c.ShouldBindJSON(&rec); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := v.recommendationService.MarkAsVisited(c.Request.Context(), userID, rec); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Place marked as visited")
}
