package controllers

import (
	"net/http"
	"strconv"

	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/services"
	"dreamtrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Create a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 201 {object} response_models.BookingResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields or invalid booking type")
		return
	}

	userID := c.GetString("user_id")

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, booking, "Booking created successfully")
}

// GetUserBookings godoc
// @Summary Get bookings for the authenticated user
// @Tags Bookings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {array} response_models.BookingResponse
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) GetUserBookings(c *gin.Context) {
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

	userID := c.GetString("user_id")

	bookings, err := b.bookingService.GetUserBookings(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

// GetBooking godoc
// @Summary Get a booking by ID
// @Tags Bookings
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response_models.BookingResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId} [get]
func (b *BookingController) GetBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	userID := c.GetString("user_id")

	booking, err := b.bookingService.GetBookingByID(c.Request.Context(), userID, bookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}

// UpdateBooking godoc
// @Summary Update a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body request_models.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} response_models.BookingResponse
// @Security BearerAuth
// @Router /bookings/{bookingId} [put]
func (b *BookingController) UpdateBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	var req request_models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	booking, err := b.bookingService.UpdateBooking(c.Request.Context(), userID, bookingID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking updated successfully")
}

// DeleteBooking godoc
// @Summary Delete a booking
// @Tags Bookings
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId} [delete]
func (b *BookingController) DeleteBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	userID := c.GetString("user_id")

	if err := b.bookingService.DeleteBooking(c.Request.Context(), userID, bookingID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking removed successfully")
}
