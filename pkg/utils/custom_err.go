package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrTripTooLong         = errors.New("trip duration cannot exceed 30 days")
	ErrInvalidDateRange    = errors.New("end date must be after start date")
	ErrMalformedAIResponse = errors.New("malformed AI response")

	ErrTripNotFound        = errors.New("trip not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrAccessDenied        = errors.New("access denied")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
