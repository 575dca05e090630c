// utils/trip_dates.go
package utils

import (
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// MaxTripDays bounds how long a single trip may run. Anything longer is a
// validation error, never silently clamped.
const MaxTripDays = 30

// ParseDate accepts plain calendar dates ("2024-06-01") and falls back to
// RFC3339 so timestamps coming from clients still work.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// DaySpan returns the inclusive number of calendar days between start and end,
// so a same-day trip counts as 1.
func DaySpan(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

// ValidateTripDuration parses both dates and returns the inclusive day span.
// Callers re-validate independently before generation or persistence; the
// duplication is a safety invariant, not just UX.
func ValidateTripDuration(startDate, endDate string) (int, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, ErrInvalidDateFormat
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, ErrInvalidDateFormat
	}

	days := DaySpan(start, end)
	if days > MaxTripDays {
		return 0, ErrTripTooLong
	}
	if days < 1 {
		return 0, ErrInvalidDateRange
	}
	return days, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
