package services

import (
	"fmt"

	"dreamtrip/internal/models/response_models"
	"dreamtrip/pkg/utils"
)

// activityTemplate parameterizes one deterministic fallback activity. The
// cost multiplier is the fraction of the trip budget the activity may draw.
type activityTemplate struct {
	title          string
	description    string
	category       string
	costMultiplier float64
}

func fallbackTemplates(destination string) []activityTemplate {
	return []activityTemplate{
		{
			title:          fmt.Sprintf("Explore %s", destination),
			description:    fmt.Sprintf("Discover the beautiful sights and attractions of %s", destination),
			category:       "sightseeing",
			costMultiplier: 0.2,
		},
		{
			title:          "Local Dining Experience",
			description:    "Enjoy local cuisine at a traditional restaurant",
			category:       "food",
			costMultiplier: 0.15,
		},
		{
			title:          "Cultural Visit",
			description:    "Explore museums, galleries, or historical sites",
			category:       "cultural",
			costMultiplier: 0.1,
		},
		{
			title:          "Shopping Experience",
			description:    "Visit local markets and shopping districts",
			category:       "shopping",
			costMultiplier: 0.15,
		},
		{
			title:          "Relaxation Time",
			description:    "Leisure time to relax and enjoy your surroundings",
			category:       "relaxation",
			costMultiplier: 0.05,
		},
	}
}

// BuildFallbackItinerary is the deterministic backstop used when AI
// generation is unavailable or returns garbage. It assumes dates already
// passed duration validation and never fails: any valid trip parameters
// produce a structurally valid, budget-bounded itinerary with zero external
// calls.
//
// Costs are bounded two ways: the itinerary total at min(60% of budget,
// 200/day), and each activity at min(its budget share, 50).
func BuildFallbackItinerary(destination, startDate, endDate string, budget float64, interests []string, travelers int) *response_models.Itinerary {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		// Pre-validated input; an unparseable date here means the caller
		// skipped validation. Produce an empty-but-valid itinerary.
		return &response_models.Itinerary{Days: []response_models.ItineraryDay{}}
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return &response_models.Itinerary{Days: []response_models.ItineraryDay{}}
	}

	daySpan := utils.DaySpan(start, end)
	templates := fallbackTemplates(destination)

	itinerary := &response_models.Itinerary{
		Days:      make([]response_models.ItineraryDay, 0, daySpan),
		TotalCost: minFloat(budget*0.6, 200*float64(daySpan)),
	}

	// 2 activities/day for short trips, 3 for longer ones.
	activitiesPerDay := daySpan / 2
	if activitiesPerDay < 2 {
		activitiesPerDay = 2
	}
	if activitiesPerDay > 3 {
		activitiesPerDay = 3
	}

	for i := 0; i < daySpan; i++ {
		day := response_models.ItineraryDay{
			Date:       utils.FormatDate(start.AddDate(0, 0, i)),
			Activities: make([]response_models.ItineraryActivity, 0, activitiesPerDay),
		}

		for j := 0; j < activitiesPerDay; j++ {
			// Offsetting the template index by the day index staggers
			// categories across days.
			template := templates[(i+j)%len(templates)]

			day.Activities = append(day.Activities, response_models.ItineraryActivity{
				Time:        fmt.Sprintf("%d:00", 9+j*3),
				Title:       fmt.Sprintf("%s - Day %d", template.title, i+1),
				Description: template.description,
				Location:    destination,
				Cost:        minFloat(budget*template.costMultiplier/float64(daySpan), 50),
				Duration:    2.5,
				Category:    template.category,
				BookingLink: "",
			})
		}

		itinerary.Days = append(itinerary.Days, day)
	}

	return itinerary
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
