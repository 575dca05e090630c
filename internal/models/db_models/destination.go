package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type Destination struct {
	BaseModel
	Name        string
	Country     string
	Description string
	ImageURL    string
	Tags        pq.StringArray `gorm:"type:text[]"`
	Popularity  int
	BestSeason  string

	// Average daily costs per travel style.
	BudgetCost   float64
	MidRangeCost float64
	LuxuryCost   float64

	// Deterministic text embedding over name/country/description/tags,
	// used for similarity search.
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
}
