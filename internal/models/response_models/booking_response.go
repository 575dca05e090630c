package response_models

type BookingResponse struct {
	ID               string  `json:"id"`
	TripID           string  `json:"tripId,omitempty"`
	TripTitle        string  `json:"tripTitle,omitempty"`
	Type             string  `json:"type"`
	Title            string  `json:"title"`
	Description      string  `json:"description,omitempty"`
	Date             string  `json:"date,omitempty"`
	Time             string  `json:"time,omitempty"`
	Location         string  `json:"location,omitempty"`
	Cost             float64 `json:"cost"`
	Currency         string  `json:"currency"`
	Status           string  `json:"status"`
	BookingReference string  `json:"bookingReference,omitempty"`
	Provider         string  `json:"provider,omitempty"`
	Notes            string  `json:"notes,omitempty"`
}
