package services

import (
	"context"
	"strings"

	"dreamtrip/internal/models/db_models"
	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/models/response_models"
	"dreamtrip/internal/repositories"
	"dreamtrip/pkg/utils"

	"github.com/google/uuid"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID string, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, page, pageSize int) ([]response_models.BookingResponse, error)
	GetBookingByID(ctx context.Context, userID, bookingID string) (*response_models.BookingResponse, error)
	UpdateBooking(ctx context.Context, userID, bookingID string, req request_models.UpdateBookingRequest) (*response_models.BookingResponse, error)
	DeleteBooking(ctx context.Context, userID, bookingID string) error
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
	}
}

func (b *BookingService) CreateBooking(ctx context.Context, userID string, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, utils.ErrInvalidInput
	}

	uid, err := parseUUID(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	booking := &db_models.Booking{
		UserID:           uid,
		Type:             req.Type,
		Title:            req.Title,
		Description:      req.Description,
		Time:             req.Time,
		Location:         req.Location,
		Cost:             req.Cost,
		Currency:         req.Currency,
		Status:           db_models.BookingStatusPending,
		BookingReference: req.BookingReference,
		Provider:         req.Provider,
		Notes:            req.Notes,
	}
	if booking.Currency == "" {
		booking.Currency = "USD"
	}

	if req.TripID != "" {
		tripID, err := uuid.Parse(req.TripID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		booking.TripID = &tripID
	}

	if req.Date != "" {
		date, err := utils.ParseDate(req.Date)
		if err != nil {
			return nil, utils.ErrInvalidDateFormat
		}
		booking.Date = &date
	}

	if _, err := b.bookingRepo.Create(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := buildBookingResponse(booking)
	return &resp, nil
}

func (b *BookingService) GetUserBookings(ctx context.Context, userID string, page, pageSize int) ([]response_models.BookingResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	bookings, err := b.bookingRepo.ListByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, buildBookingResponse(&bookings[i]))
	}
	return out, nil
}

func (b *BookingService) GetBookingByID(ctx context.Context, userID, bookingID string) (*response_models.BookingResponse, error) {
	booking, err := b.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	resp := buildBookingResponse(booking)
	return &resp, nil
}

func (b *BookingService) UpdateBooking(ctx context.Context, userID, bookingID string, req request_models.UpdateBookingRequest) (*response_models.BookingResponse, error) {
	booking, err := b.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		booking.Type = *req.Type
	}
	if req.Title != nil {
		booking.Title = *req.Title
	}
	if req.Description != nil {
		booking.Description = *req.Description
	}
	if req.Date != nil {
		date, err := utils.ParseDate(*req.Date)
		if err != nil {
			return nil, utils.ErrInvalidDateFormat
		}
		booking.Date = &date
	}
	if req.Time != nil {
		booking.Time = *req.Time
	}
	if req.Location != nil {
		booking.Location = *req.Location
	}
	if req.Cost != nil {
		booking.Cost = *req.Cost
	}
	if req.Currency != nil {
		booking.Currency = *req.Currency
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}
	if req.BookingReference != nil {
		booking.BookingReference = *req.BookingReference
	}
	if req.Provider != nil {
		booking.Provider = *req.Provider
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}

	if err := b.bookingRepo.Update(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := buildBookingResponse(booking)
	return &resp, nil
}

func (b *BookingService) DeleteBooking(ctx context.Context, userID, bookingID string) error {
	booking, err := b.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return err
	}

	if err := b.bookingRepo.Delete(ctx, booking.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *BookingService) ownedBooking(ctx context.Context, userID, bookingID string) (*db_models.Booking, error) {
	booking, err := b.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	if booking.UserID.String() != userID {
		return nil, utils.ErrAccessDenied
	}
	return booking, nil
}

func buildBookingResponse(booking *db_models.Booking) response_models.BookingResponse {
	resp := response_models.BookingResponse{
		ID:               booking.ID.String(),
		Type:             booking.Type,
		Title:            booking.Title,
		Description:      booking.Description,
		Time:             booking.Time,
		Location:         booking.Location,
		Cost:             booking.Cost,
		Currency:         booking.Currency,
		Status:           booking.Status,
		BookingReference: booking.BookingReference,
		Provider:         booking.Provider,
		Notes:            booking.Notes,
	}
	if booking.TripID != nil {
		resp.TripID = booking.TripID.String()
	}
	if booking.Trip != nil {
		resp.TripTitle = booking.Trip.Title
	}
	if booking.Date != nil {
		resp.Date = utils.FormatDate(*booking.Date)
	}
	return resp
}
