package response_models

type TripResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Budget      float64  `json:"budget"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests"`
	TotalCost   float64  `json:"totalCost"`
	Status      string   `json:"status"`
}

type TripDetailResponse struct {
	TripResponse
	Itinerary Itinerary `json:"itinerary"`
}
