package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/services"
	"dreamtrip/pkg/utils"
)

// mockCompletionClient is a test double for utils.CompletionClientInterface.
type mockCompletionClient struct {
	complete func(ctx context.Context, model, prompt string) (string, error)
}

func (m *mockCompletionClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	return m.complete(ctx, model, prompt)
}

var _ utils.CompletionClientInterface = (*mockCompletionClient)(nil)

func itineraryRequest() request_models.GenerateItineraryRequest {
	return request_models.GenerateItineraryRequest{
		Destination: "Paris",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-03",
		Budget:      300,
		Travelers:   2,
		Interests:   []string{"food", "art"},
	}
}

func recommendationsRequest() request_models.RecommendationsRequest {
	return request_models.RecommendationsRequest{
		Destination: "Paris",
		Interests:   []string{"food"},
		CurrentConditions: request_models.CurrentConditions{
			Weather:     "rainy",
			Temperature: 14,
		},
	}
}

const validItineraryJSON = `{"days": [{"date": "2024-06-01", "activities": [` +
	`{"time": "10:00", "title": "Musee d'Orsay", "cost": 16, "duration": 3, "category": "cultural"}]}], "totalCost": 16}`

func TestGenerateItinerary(t *testing.T) {
	t.Run("invalid dates are the only error path", func(t *testing.T) {
		svc := services.NewItineraryService(nil, nil)

		req := itineraryRequest()
		req.StartDate = "not-a-date"
		_, err := svc.GenerateItinerary(context.Background(), req)
		assert.ErrorIs(t, err, utils.ErrInvalidDateFormat)

		req = itineraryRequest()
		req.StartDate, req.EndDate = req.EndDate, req.StartDate
		_, err = svc.GenerateItinerary(context.Background(), req)
		assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
	})

	t.Run("unconfigured client falls back", func(t *testing.T) {
		svc := services.NewItineraryService(nil, nil)

		itinerary, err := svc.GenerateItinerary(context.Background(), itineraryRequest())
		require.NoError(t, err)
		require.Len(t, itinerary.Days, 3)
		assert.LessOrEqual(t, itinerary.TotalCost, 180.0) // 60% of 300
	})

	t.Run("all candidate models failing falls back", func(t *testing.T) {
		client := &mockCompletionClient{
			complete: func(ctx context.Context, model, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}
		svc := services.NewItineraryService(client, []string{"model-a", "model-b"})

		itinerary, err := svc.GenerateItinerary(context.Background(), itineraryRequest())
		require.NoError(t, err)
		assert.Len(t, itinerary.Days, 3)
	})

	t.Run("unparseable completion falls back", func(t *testing.T) {
		client := &mockCompletionClient{
			complete: func(ctx context.Context, model, prompt string) (string, error) {
				return "I'd love to help you plan a trip to Paris!", nil
			},
		}
		svc := services.NewItineraryService(client, []string{"model-a"})

		itinerary, err := svc.GenerateItinerary(context.Background(), itineraryRequest())
		require.NoError(t, err)
		require.Len(t, itinerary.Days, 3)
		assert.Equal(t, "Explore Paris - Day 1", itinerary.Days[0].Activities[0].Title)
	})

	t.Run("valid completion is returned as parsed", func(t *testing.T) {
		client := &mockCompletionClient{
			complete: func(ctx context.Context, model, prompt string) (string, error) {
				return validItineraryJSON, nil
			},
		}
		svc := services.NewItineraryService(client, []string{"model-a"})

		itinerary, err := svc.GenerateItinerary(context.Background(), itineraryRequest())
		require.NoError(t, err)
		require.Len(t, itinerary.Days, 1)
		assert.Equal(t, "Musee d'Orsay", itinerary.Days[0].Activities[0].Title)
		assert.Equal(t, 16.0, itinerary.TotalCost)
	})

	t.Run("canary probes models in order and skips broken ones", func(t *testing.T) {
		var probed []string
		client := &mockCompletionClient{
			complete: func(ctx context.Context, model, prompt string) (string, error) {
				if prompt == "Hello" {
					probed = append(probed, model)
					if model == "model-a" {
						return "", errors.New("model not found")
					}
					return "Hi!", nil
				}
				return validItineraryJSON, nil
			},
		}
		svc := services.NewItineraryService(client, []string{"model-a", "model-b", "model-c"})

		itinerary, err := svc.GenerateItinerary(context.Background(), itineraryRequest())
		require.NoError(t, err)
		assert.Len(t, itinerary.Days, 1)
		assert.Equal(t, []string{"model-a", "model-b"}, probed)
	})

	t.Run("ai results are cached for repeat requests", func(t *testing.T) {
		calls := 0
		client := &mockCompletionClient{
			complete: func(ctx context.Context, model, prompt string) (string, error) {
				if prompt != "Hello" {
					calls++
				}
				return validItineraryJSON, nil
			},
		}
		svc := services.NewItineraryService(client, []string{"model-a"})

		_, err := svc.GenerateItinerary(context.Background(), itineraryRequest())
		require.NoError(t, err)
		_, err = svc.GenerateItinerary(context.Background(), itineraryRequest())
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
	})
}

func TestGetRecommendations(t *testing.T) {
	t.Run("unconfigured client returns defaults", func(t *testing.T) {
		svc := services.NewItineraryService(nil, nil)

		recs := svc.GetRecommendations(context.Background(), recommendationsRequest())
		require.Len(t, recs, 3)
		assert.Equal(t, "Visit Local Museums and Galleries", recs[0].Title)
		assert.Equal(t, 25.0, recs[0].EstimatedCost)
		assert.Equal(t, 40.0, recs[1].EstimatedCost)
		assert.Equal(t, 35.0, recs[2].EstimatedCost)
	})

	t.Run("completion failure returns defaults", func(t *testing.T) {
		client := &mockCompletionClient{
			complete: func(ctx context.Context, model, prompt string) (string, error) {
				return "", errors.New("service unavailable")
			},
		}
		svc := services.NewItineraryService(client, []string{"model-a"})

		recs := svc.GetRecommendations(context.Background(), recommendationsRequest())
		require.Len(t, recs, 3)
		assert.Equal(t, "Guided City Tour", recs[1].Title)
	})

	t.Run("valid completion is parsed and truncated", func(t *testing.T) {
		client := &mockCompletionClient{
			complete: func(ctx context.Context, model, prompt string) (string, error) {
				if prompt == "Hello" {
					return "Hi!", nil
				}
				return `[{"title": "a"}, {"title": "b"}, {"title": "c"}, {"title": "d"}]`, nil
			},
		}
		svc := services.NewItineraryService(client, []string{"model-a"})

		recs := svc.GetRecommendations(context.Background(), recommendationsRequest())
		require.Len(t, recs, 3)
		assert.Equal(t, "a", recs[0].Title)
	})

	t.Run("garbage completion returns defaults", func(t *testing.T) {
		client := &mockCompletionClient{
			complete: func(ctx context.Context, model, prompt string) (string, error) {
				return "no list here", nil
			},
		}
		svc := services.NewItineraryService(client, []string{"model-a"})

		recs := svc.GetRecommendations(context.Background(), recommendationsRequest())
		require.Len(t, recs, 3)
		assert.Equal(t, "Local Food Tasting Experience", recs[2].Title)
	})
}
