package response_models

type DestinationResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	Tags         []string `json:"tags"`
	Popularity   int      `json:"popularity"`
	BestSeason   string   `json:"bestSeason"`
	BudgetCost   float64  `json:"budgetCost"`
	MidRangeCost float64  `json:"midRangeCost"`
	LuxuryCost   float64  `json:"luxuryCost"`
}

type DestinationListResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
	TotalPages   int                   `json:"totalPages"`
	CurrentPage  int                   `json:"currentPage"`
	Total        int64                 `json:"total"`
}
