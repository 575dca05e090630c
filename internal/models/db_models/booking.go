package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Booking status values.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	BaseModel
	UserID           uuid.UUID  `gorm:"type:uuid;index"`
	TripID           *uuid.UUID `gorm:"type:uuid;index"`
	Type             string     // flight, hotel, activity, transport, other
	Title            string
	Description      string
	Date             *time.Time
	Time             string
	Location         string
	Cost             float64
	Currency         string
	Status           string
	BookingReference string
	Provider         string
	Notes            string

	Trip *Trip `gorm:"foreignKey:TripID"`
}
