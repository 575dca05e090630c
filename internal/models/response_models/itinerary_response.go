package response_models

// Itinerary is the structured output of trip generation: ordered days of
// activities plus a total cost. It is newly constructed per generation call
// and never mutated afterwards by the generation subsystem.
type Itinerary struct {
	Days      []ItineraryDay `json:"days"`
	TotalCost float64        `json:"totalCost"`
}

type ItineraryDay struct {
	Date       string              `json:"date"`
	Activities []ItineraryActivity `json:"activities"`
}

type ItineraryActivity struct {
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Cost        float64 `json:"cost"`
	Duration    float64 `json:"duration"` // hours
	Category    string  `json:"category"`
	BookingLink string  `json:"bookingLink"`
}

// SumActivityCosts totals every activity cost across all days.
func (i *Itinerary) SumActivityCosts() float64 {
	var total float64
	for _, day := range i.Days {
		for _, activity := range day.Activities {
			total += activity.Cost
		}
	}
	return total
}

type Recommendation struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Reason        string  `json:"reason"`
	EstimatedCost float64 `json:"estimatedCost"`
	BookingLink   string  `json:"bookingLink"`
}
