package request_models

type CreateBookingRequest struct {
	TripID           string  `json:"tripId"`
	Type             string  `json:"type" binding:"required,oneof=flight hotel activity transport other"`
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Location         string  `json:"location"`
	Cost             float64 `json:"cost" binding:"required,gte=0"`
	Currency         string  `json:"currency"`
	BookingReference string  `json:"bookingReference"`
	Provider         string  `json:"provider"`
	Notes            string  `json:"notes"`
}

type UpdateBookingRequest struct {
	Type             *string  `json:"type"`
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	Date             *string  `json:"date"`
	Time             *string  `json:"time"`
	Location         *string  `json:"location"`
	Cost             *float64 `json:"cost"`
	Currency         *string  `json:"currency"`
	Status           *string  `json:"status"`
	BookingReference *string  `json:"bookingReference"`
	Provider         *string  `json:"provider"`
	Notes            *string  `json:"notes"`
}
