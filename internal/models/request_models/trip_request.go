package request_models

type CreateTripRequest struct {
	Title       string   `json:"title" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	Budget      float64  `json:"budget" binding:"required,gt=0"`
	Travelers   int      `json:"travelers" binding:"required,gt=0"`
	Interests   []string `json:"interests"`
}

// UpdateTripRequest uses pointers so absent fields are left untouched.
type UpdateTripRequest struct {
	Title       *string   `json:"title"`
	Destination *string   `json:"destination"`
	StartDate   *string   `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	Budget      *float64  `json:"budget"`
	Travelers   *int      `json:"travelers"`
	Interests   *[]string `json:"interests"`
	Status      *string   `json:"status"`
}
