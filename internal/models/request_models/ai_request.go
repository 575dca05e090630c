package request_models

// GenerateItineraryRequest carries the trip parameters for a single
// generation call. Dates are calendar dates ("2024-06-01"); budget must be a
// positive number and travelers a positive integer, enforced at bind time
// before the itinerary service is invoked.
type GenerateItineraryRequest struct {
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	Budget      float64  `json:"budget" binding:"required,gt=0"`
	Travelers   int      `json:"travelers" binding:"required,gt=0"`
	Interests   []string `json:"interests"`
}

type CurrentConditions struct {
	Weather     string  `json:"weather"`
	Temperature float64 `json:"temperature"`
}

type RecommendationsRequest struct {
	Destination       string            `json:"destination" binding:"required"`
	Interests         []string          `json:"interests" binding:"required"`
	CurrentConditions CurrentConditions `json:"currentConditions" binding:"required"`
}
