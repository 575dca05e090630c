package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Trip status values.
const (
	TripStatusDraft      = "draft"
	TripStatusPlanned    = "planned"
	TripStatusInProgress = "in-progress"
	TripStatusCompleted  = "completed"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Travelers   int
	Interests   pq.StringArray `gorm:"type:text[]"`
	TotalCost   float64
	Status      string

	// The generated itinerary, materialized as day and activity rows.
	Days []TripDay `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

type TripDay struct {
	BaseModel
	TripID uuid.UUID `gorm:"type:uuid;index"`
	Date   time.Time

	Activities []TripActivity `gorm:"foreignKey:TripDayID;constraint:OnDelete:CASCADE"`
}

type TripActivity struct {
	BaseModel
	TripDayID   uuid.UUID `gorm:"type:uuid;index"`
	Time        string
	Title       string
	Description string
	Location    string
	Cost        float64
	Duration    float64
	Category    string
	BookingLink string
}
