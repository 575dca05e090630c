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

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID string, req request_models.CreateTripRequest) (*response_models.TripDetailResponse, error)
	GetUserTrips(ctx context.Context, userID string, page, pageSize int) ([]response_models.TripResponse, error)
	GetTripByID(ctx context.Context, userID, tripID string) (*response_models.TripDetailResponse, error)
	UpdateTrip(ctx context.Context, userID, tripID string, req request_models.UpdateTripRequest) (*response_models.TripDetailResponse, error)
	DeleteTrip(ctx context.Context, userID, tripID string) error
}

type TripService struct {
	tripRepo         repositories.TripRepository
	itineraryService ItineraryServiceInterface
}

func NewTripService(tripRepo repositories.TripRepository, itineraryService ItineraryServiceInterface) TripServiceInterface {
	return &TripService{
		tripRepo:         tripRepo,
		itineraryService: itineraryService,
	}
}

func (t *TripService) CreateTrip(ctx context.Context, userID string, req request_models.CreateTripRequest) (*response_models.TripDetailResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Destination) == "" {
		return nil, utils.ErrInvalidInput
	}

	// Re-validated here even though the controller already did: dates must
	// never reach persistence unchecked.
	if _, err := utils.ValidateTripDuration(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	uid, err := parseUUID(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	itinerary, err := t.itineraryService.GenerateItinerary(ctx, request_models.GenerateItineraryRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Travelers:   req.Travelers,
		Interests:   req.Interests,
	})
	if err != nil {
		return nil, err
	}

	startDate, _ := utils.ParseDate(req.StartDate)
	endDate, _ := utils.ParseDate(req.EndDate)

	trip := &db_models.Trip{
		UserID:      uid,
		Title:       req.Title,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      req.Budget,
		Travelers:   req.Travelers,
		Interests:   req.Interests,
		TotalCost:   itinerary.TotalCost,
		Status:      db_models.TripStatusDraft,
		Days:        itineraryToDays(itinerary),
	}

	if _, err := t.tripRepo.Create(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildTripDetailResponse(trip), nil
}

func (t *TripService) GetUserTrips(ctx context.Context, userID string, page, pageSize int) ([]response_models.TripResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, err := t.tripRepo.ListByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, buildTripResponse(&trips[i]))
	}
	return out, nil
}

func (t *TripService) GetTripByID(ctx context.Context, userID, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := t.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	return buildTripDetailResponse(trip), nil
}

func (t *TripService) UpdateTrip(ctx context.Context, userID, tripID string, req request_models.UpdateTripRequest) (*response_models.TripDetailResponse, error) {
	trip, err := t.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	startDate := utils.FormatDate(trip.StartDate)
	endDate := utils.FormatDate(trip.EndDate)
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	if req.EndDate != nil {
		endDate = *req.EndDate
	}

	// Any date change re-runs duration validation before persistence.
	datesChanged := req.StartDate != nil || req.EndDate != nil
	if datesChanged {
		if _, err := utils.ValidateTripDuration(startDate, endDate); err != nil {
			return nil, err
		}
		start, _ := utils.ParseDate(startDate)
		end, _ := utils.ParseDate(endDate)
		trip.StartDate = start
		trip.EndDate = end
	}

	if req.Title != nil {
		trip.Title = *req.Title
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.Budget != nil {
		trip.Budget = *req.Budget
	}
	if req.Travelers != nil {
		trip.Travelers = *req.Travelers
	}
	if req.Interests != nil {
		trip.Interests = *req.Interests
	}
	if req.Status != nil {
		trip.Status = *req.Status
	}

	// A date change invalidates the stored day rows, so the itinerary is
	// regenerated for the new span and swapped in wholesale.
	if datesChanged {
		itinerary, err := t.itineraryService.GenerateItinerary(ctx, request_models.GenerateItineraryRequest{
			Destination: trip.Destination,
			StartDate:   utils.FormatDate(trip.StartDate),
			EndDate:     utils.FormatDate(trip.EndDate),
			Budget:      trip.Budget,
			Travelers:   trip.Travelers,
			Interests:   trip.Interests,
		})
		if err != nil {
			return nil, err
		}
		trip.TotalCost = itinerary.TotalCost
		trip.Days = itineraryToDays(itinerary)
	}

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if datesChanged {
		if err := t.tripRepo.ReplaceItinerary(ctx, trip.ID, trip.Days); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return buildTripDetailResponse(trip), nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userID, tripID string) error {
	trip, err := t.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}

	if err := t.tripRepo.Delete(ctx, trip.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ownedTrip loads a trip and enforces ownership: not-found and
// owned-by-someone-else are distinct outcomes (404 vs 403 at the boundary).
func (t *TripService) ownedTrip(ctx context.Context, userID, tripID string) (*db_models.Trip, error) {
	trip, err := t.tripRepo.GetByIDWithItinerary(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID.String() != userID {
		return nil, utils.ErrAccessDenied
	}
	return trip, nil
}

func itineraryToDays(itinerary *response_models.Itinerary) []db_models.TripDay {
	days := make([]db_models.TripDay, 0, len(itinerary.Days))
	for _, day := range itinerary.Days {
		date, err := utils.ParseDate(day.Date)
		if err != nil {
			// AI-sourced dates can be junk; skip the row rather than fail
			// the whole trip.
			continue
		}

		tripDay := db_models.TripDay{Date: date}
		for _, activity := range day.Activities {
			tripDay.Activities = append(tripDay.Activities, db_models.TripActivity{
				Time:        activity.Time,
				Title:       activity.Title,
				Description: activity.Description,
				Location:    activity.Location,
				Cost:        activity.Cost,
				Duration:    activity.Duration,
				Category:    activity.Category,
				BookingLink: activity.BookingLink,
			})
		}
		days = append(days, tripDay)
	}
	return days
}

func buildTripResponse(trip *db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:          trip.ID.String(),
		Title:       trip.Title,
		Destination: trip.Destination,
		StartDate:   utils.FormatDate(trip.StartDate),
		EndDate:     utils.FormatDate(trip.EndDate),
		Budget:      trip.Budget,
		Travelers:   trip.Travelers,
		Interests:   trip.Interests,
		TotalCost:   trip.TotalCost,
		Status:      trip.Status,
	}
}

func buildTripDetailResponse(trip *db_models.Trip) *response_models.TripDetailResponse {
	itinerary := response_models.Itinerary{
		Days:      make([]response_models.ItineraryDay, 0, len(trip.Days)),
		TotalCost: trip.TotalCost,
	}

	for _, day := range trip.Days {
		respDay := response_models.ItineraryDay{
			Date:       utils.FormatDate(day.Date),
			Activities: make([]response_models.ItineraryActivity, 0, len(day.Activities)),
		}
		for _, activity := range day.Activities {
			respDay.Activities = append(respDay.Activities, response_models.ItineraryActivity{
				Time:        activity.Time,
				Title:       activity.Title,
				Description: activity.Description,
				Location:    activity.Location,
				Cost:        activity.Cost,
				Duration:    activity.Duration,
				Category:    activity.Category,
				BookingLink: activity.BookingLink,
			})
		}
		itinerary.Days = append(itinerary.Days, respDay)
	}

	return &response_models.TripDetailResponse{
		TripResponse: buildTripResponse(trip),
		Itinerary:    itinerary,
	}
}

func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
