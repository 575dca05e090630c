package db_models

import "github.com/lib/pq"

type Account struct {
	BaseModel
	Username     string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
	Interests    pq.StringArray `gorm:"type:text[]"`

	Trips    []Trip    `gorm:"foreignKey:UserID"`
	Bookings []Booking `gorm:"foreignKey:UserID"`
}
