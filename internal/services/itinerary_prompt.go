package services

import (
	"fmt"
	"strings"

	"dreamtrip/internal/models/request_models"
)

// BuildItineraryPrompt renders the generation instruction for one trip. The
// response schema is spelled out verbatim and the model is told to return
// JSON only; parsing still tolerates fences and preamble because models do
// not reliably obey.
func BuildItineraryPrompt(req request_models.GenerateItineraryRequest, daySpan int) string {
	interests := strings.Join(req.Interests, ", ")
	if interests == "" {
		interests = "general sightseeing"
	}

	var prompt strings.Builder

	fmt.Fprintf(&prompt,
		"Create a detailed travel itinerary for %s from %s to %s (%d days) for %d traveler(s) with a total budget of $%.2f.\n",
		req.Destination, req.StartDate, req.EndDate, daySpan, req.Travelers, req.Budget)
	fmt.Fprintf(&prompt, "The traveler is interested in: %s.\n\n", interests)

	prompt.WriteString("Provide the itinerary in valid JSON format with this exact structure:\n")
	prompt.WriteString(`{
  "days": [
    {
      "date": "YYYY-MM-DD",
      "activities": [
        {
          "time": "HH:MM",
          "title": "Activity title",
          "description": "Detailed description",
          "location": "Specific location",
          "cost": 50,
          "duration": 2.5,
          "category": "sightseeing/food/adventure/cultural/shopping/relaxation",
          "bookingLink": ""
        }
      ]
    }
  ],
  "totalCost": 500
}`)

	fmt.Fprintf(&prompt, `

Important rules:
1. Total cost must be within the $%.2f budget
2. Include realistic activities based on the interests
3. Include proper timing and logical flow for each day
4. Include some free time and flexibility
5. Provide realistic costs for activities
6. Return ONLY valid JSON, no additional text
`, req.Budget)

	return prompt.String()
}

// BuildRecommendationPrompt asks for a JSON array of exactly 3 suggestions
// given the destination and current conditions.
func BuildRecommendationPrompt(req request_models.RecommendationsRequest) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Provide 3 travel recommendations for %s based on:\n", req.Destination)
	fmt.Fprintf(&prompt, "- Interests: %s\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&prompt, "- Current conditions: %s, %.0f°C\n\n",
		req.CurrentConditions.Weather, req.CurrentConditions.Temperature)
	prompt.WriteString("Return a valid JSON array only, where each element has: title, description, reason, estimatedCost, bookingLink")

	return prompt.String()
}
