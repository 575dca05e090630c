package request_models

type CreateDestinationRequest struct {
	Name         string   `json:"name" binding:"required"`
	Country      string   `json:"country" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	ImageURL     string   `json:"imageUrl"`
	Tags         []string `json:"tags"`
	BestSeason   string   `json:"bestSeason"`
	BudgetCost   float64  `json:"budgetCost"`
	MidRangeCost float64  `json:"midRangeCost"`
	LuxuryCost   float64  `json:"luxuryCost"`
}
