package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamtrip/internal/services"
)

func TestBuildFallbackItinerary(t *testing.T) {
	t.Run("produces one day per calendar day", func(t *testing.T) {
		itinerary := services.BuildFallbackItinerary("Paris", "2024-06-01", "2024-06-03", 300, nil, 2)

		require.Len(t, itinerary.Days, 3)
		assert.Equal(t, "2024-06-01", itinerary.Days[0].Date)
		assert.Equal(t, "2024-06-02", itinerary.Days[1].Date)
		assert.Equal(t, "2024-06-03", itinerary.Days[2].Date)
	})

	t.Run("same day trip yields a single day", func(t *testing.T) {
		itinerary := services.BuildFallbackItinerary("Rome", "2024-06-01", "2024-06-01", 100, nil, 1)

		require.Len(t, itinerary.Days, 1)
		assert.Len(t, itinerary.Days[0].Activities, 2)
	})

	t.Run("short trips get two activities per day, long trips three", func(t *testing.T) {
		short := services.BuildFallbackItinerary("Paris", "2024-06-01", "2024-06-03", 300, nil, 2)
		long := services.BuildFallbackItinerary("Paris", "2024-06-01", "2024-06-10", 1000, nil, 2)

		for _, day := range short.Days {
			assert.Len(t, day.Activities, 2)
		}
		for _, day := range long.Days {
			assert.Len(t, day.Activities, 3)
		}
	})

	t.Run("total cost is bounded by budget share and per-day cap", func(t *testing.T) {
		budgetBound := services.BuildFallbackItinerary("Paris", "2024-06-01", "2024-06-03", 300, nil, 2)
		assert.InDelta(t, 180.0, budgetBound.TotalCost, 0.001) // 60% of 300 < 200*3

		dayBound := services.BuildFallbackItinerary("Paris", "2024-06-01", "2024-06-01", 10000, nil, 2)
		assert.InDelta(t, 200.0, dayBound.TotalCost, 0.001) // 200*1 < 60% of 10000
	})

	t.Run("activity costs never exceed fifty", func(t *testing.T) {
		itinerary := services.BuildFallbackItinerary("Paris", "2024-06-01", "2024-06-02", 100000, nil, 2)

		for _, day := range itinerary.Days {
			for _, activity := range day.Activities {
				assert.LessOrEqual(t, activity.Cost, 50.0)
			}
		}
	})

	t.Run("activities carry destination and schedule", func(t *testing.T) {
		itinerary := services.BuildFallbackItinerary("Tokyo", "2024-06-01", "2024-06-02", 500, nil, 2)

		first := itinerary.Days[0].Activities[0]
		assert.Equal(t, "9:00", first.Time)
		assert.Equal(t, "Explore Tokyo - Day 1", first.Title)
		assert.Equal(t, "Tokyo", first.Location)
		assert.Equal(t, "sightseeing", first.Category)
		assert.Equal(t, 2.5, first.Duration)

		second := itinerary.Days[0].Activities[1]
		assert.Equal(t, "12:00", second.Time)
	})

	t.Run("template rotation staggers categories across days", func(t *testing.T) {
		itinerary := services.BuildFallbackItinerary("Paris", "2024-06-01", "2024-06-03", 300, nil, 2)

		assert.Equal(t, "sightseeing", itinerary.Days[0].Activities[0].Category)
		assert.Equal(t, "food", itinerary.Days[1].Activities[0].Category)
		assert.Equal(t, "cultural", itinerary.Days[2].Activities[0].Category)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		a := services.BuildFallbackItinerary("Paris", "2024-06-01", "2024-06-03", 300, []string{"food"}, 2)
		b := services.BuildFallbackItinerary("Paris", "2024-06-01", "2024-06-03", 300, []string{"food"}, 2)

		assert.Equal(t, a, b)
	})

	t.Run("unparseable dates yield an empty but valid itinerary", func(t *testing.T) {
		itinerary := services.BuildFallbackItinerary("Paris", "garbage", "2024-06-03", 300, nil, 2)

		require.NotNil(t, itinerary)
		assert.Empty(t, itinerary.Days)
	})
}
