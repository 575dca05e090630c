package services

import (
	"encoding/json"
	"math"

	"dreamtrip/internal/models/response_models"
	"dreamtrip/pkg/utils"
)

// Loose intermediate decode shapes. Numeric fields are decoded as `any` so a
// model emitting a string cost degrades to 0 instead of failing the whole
// itinerary; structural problems (days missing or not an array) still fail.
type rawItinerary struct {
	Days      []rawItineraryDay `json:"days"`
	TotalCost any               `json:"totalCost"`
}

type rawItineraryDay struct {
	Date       string        `json:"date"`
	Activities []rawActivity `json:"activities"`
}

type rawActivity struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Cost        any    `json:"cost"`
	Duration    any    `json:"duration"`
	Category    string `json:"category"`
	BookingLink string `json:"bookingLink"`
}

// ParseItineraryResponse recovers a structured Itinerary from raw model
// output. It is purely textual/structural: no budget-ceiling or content
// validation happens here, the caller decides fallback policy on
// ErrMalformedAIResponse.
func ParseItineraryResponse(rawText string) (*response_models.Itinerary, error) {
	payload, err := utils.ExtractJSONObject(rawText)
	if err != nil {
		return nil, err
	}

	var raw rawItinerary
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, utils.ErrMalformedAIResponse
	}
	if raw.Days == nil {
		return nil, utils.ErrMalformedAIResponse
	}

	itinerary := &response_models.Itinerary{
		Days: make([]response_models.ItineraryDay, 0, len(raw.Days)),
	}

	for _, rawDay := range raw.Days {
		day := response_models.ItineraryDay{
			Date:       rawDay.Date,
			Activities: make([]response_models.ItineraryActivity, 0, len(rawDay.Activities)),
		}
		for _, a := range rawDay.Activities {
			day.Activities = append(day.Activities, response_models.ItineraryActivity{
				Time:        a.Time,
				Title:       a.Title,
				Description: a.Description,
				Location:    a.Location,
				Cost:        asFiniteNumber(a.Cost),
				Duration:    asFiniteNumber(a.Duration),
				Category:    a.Category,
				BookingLink: a.BookingLink,
			})
		}
		itinerary.Days = append(itinerary.Days, day)
	}

	// The supplied total wins when it is a finite number; otherwise the sum
	// of activity costs is authoritative.
	if total, ok := finiteNumber(raw.TotalCost); ok {
		itinerary.TotalCost = total
	} else {
		itinerary.TotalCost = itinerary.SumActivityCosts()
	}

	return itinerary, nil
}

// ParseRecommendationsResponse recovers a recommendation list from raw model
// output and truncates it to 3 entries regardless of how many were returned.
func ParseRecommendationsResponse(rawText string) ([]response_models.Recommendation, error) {
	payload, err := utils.ExtractJSONArray(rawText)
	if err != nil {
		return nil, err
	}

	var recommendations []response_models.Recommendation
	if err := json.Unmarshal([]byte(payload), &recommendations); err != nil {
		return nil, utils.ErrMalformedAIResponse
	}

	if len(recommendations) > 3 {
		recommendations = recommendations[:3]
	}
	return recommendations, nil
}

func finiteNumber(v any) (float64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func asFiniteNumber(v any) float64 {
	f, _ := finiteNumber(v)
	return f
}
