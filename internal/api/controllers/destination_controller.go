package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/services"
	"dreamtrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// CreateDestination godoc
// @Summary Create a destination (admin only)
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body request_models.CreateDestinationRequest true "Destination payload"
// @Success 201 {object} response_models.DestinationResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destinations [post]
func (d *DestinationController) CreateDestination(c *gin.Context) {
	var req request_models.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	destination, err := d.destinationService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, destination, "Destination created successfully")
}

// ListDestinations godoc
// @Summary List destinations
// @Tags Destinations
// @Produce json
// @Param country query string false "Filter by country"
// @Param tag query string false "Filter by tag"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} response_models.DestinationListResponse
// @Router /destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	country := c.Query("country")
	tag := c.Query("tag")

	result, err := d.destinationService.ListDestinations(c.Request.Context(), country, tag, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Destinations fetched successfully")
}

// GetPopularDestinations godoc
// @Summary Get the most popular destinations
// @Tags Destinations
// @Produce json
// @Param limit query int false "Maximum results" default(6)
// @Success 200 {array} response_models.DestinationResponse
// @Router /destinations/popular [get]
func (d *DestinationController) GetPopularDestinations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	destinations, err := d.destinationService.GetPopularDestinations(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Popular destinations fetched successfully")
}

// SearchDestinations godoc
// @Summary Search destinations by free-text query
// @Tags Destinations
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {array} response_models.DestinationResponse
// @Failure 400 {object} utils.APIResponse
// @Router /destinations/search [get]
func (d *DestinationController) SearchDestinations(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	destinations, err := d.destinationService.SearchDestinations(c.Request.Context(), query, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// GetDestination godoc
// @Summary Get a destination by ID
// @Tags Destinations
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Success 200 {object} response_models.DestinationResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{destinationId} [get]
func (d *DestinationController) GetDestination(c *gin.Context) {
	destinationID := c.Param("destinationId")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	destination, err := d.destinationService.GetDestinationByID(c.Request.Context(), destinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}
