package controllers

import (
	"net/http"

	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/services"
	"dreamtrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewAIController(itineraryService services.ItineraryServiceInterface) *AIController {
	return &AIController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a day-by-day itinerary for a trip
// @Description Generates an itinerary from the trip parameters. Falls back to
// @Description a deterministic template when AI generation is unavailable, so
// @Description a valid request always yields an itinerary.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/generate-itinerary [post]
func (a *AIController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination, startDate, endDate, a positive budget and a positive traveler count are required")
		return
	}

	itinerary, err := a.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		// Only date validation errors surface; generation failures have
		// already been absorbed by the fallback.
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// GetRecommendations godoc
// @Summary Get up to 3 travel recommendations for a destination
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.RecommendationsRequest true "Destination, interests and current conditions"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/recommendations [post]
func (a *AIController) GetRecommendations(c *gin.Context) {
	var req request_models.RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination, interests and currentConditions are required")
		return
	}

	recommendations := a.itineraryService.GetRecommendations(c.Request.Context(), req)

	utils.RespondSuccess(c, recommendations, "Recommendations fetched successfully")
}
