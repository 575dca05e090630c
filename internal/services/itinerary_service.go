package services

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/models/response_models"
	"dreamtrip/pkg/utils"
)

// DefaultCandidateModels is the ordered trial list for model acquisition.
// Faster/cheaper models come first; the order is injectable through
// NewItineraryService for testing and future model changes.
var DefaultCandidateModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-pro",
	"models/gemini-pro",
}

const (
	completionTimeout = 30 * time.Second
	canaryTimeout     = 10 * time.Second
	planCacheTTL      = time.Hour
)

type ItineraryServiceInterface interface {
	// GenerateItinerary is total over valid trip parameters: every internal
	// failure (unconfigured client, no working model, network error,
	// malformed response) degrades to the deterministic fallback. Only input
	// validation errors are returned.
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error)

	// GetRecommendations never fails; a static default set is returned when
	// generation is unavailable.
	GetRecommendations(ctx context.Context, req request_models.RecommendationsRequest) []response_models.Recommendation
}

type ItineraryService struct {
	client          utils.CompletionClientInterface // nil when not configured
	candidateModels []string
	cache           *planCache
}

func NewItineraryService(client utils.CompletionClientInterface, candidateModels []string) ItineraryServiceInterface {
	if len(candidateModels) == 0 {
		candidateModels = DefaultCandidateModels
	}
	return &ItineraryService{
		client:          client,
		candidateModels: candidateModels,
		cache:           newPlanCache(),
	}
}

// generationResult tags where an itinerary came from so degradation stays
// observable even though the public contract always returns an itinerary.
type generationResult struct {
	itinerary      *response_models.Itinerary
	source         string // "ai" or "fallback"
	degradedReason string
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error) {
	daySpan, err := utils.ValidateTripDuration(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	cacheKey := itineraryCacheKey(req)
	if cached, found := s.cache.get(cacheKey); found {
		log.Printf("Cache hit for itinerary generation: %s", req.Destination)
		return cached, nil
	}

	result := s.generate(ctx, req, daySpan)
	if result.degradedReason != "" {
		log.Printf("Itinerary generation degraded to fallback: %s", result.degradedReason)
	}

	// Only AI-sourced itineraries are cached; the fallback is already cheap
	// and deterministic.
	if result.source == "ai" {
		s.cache.set(cacheKey, result.itinerary)
	}

	return result.itinerary, nil
}

func (s *ItineraryService) generate(ctx context.Context, req request_models.GenerateItineraryRequest, daySpan int) generationResult {
	fallback := func(reason string) generationResult {
		return generationResult{
			itinerary:      BuildFallbackItinerary(req.Destination, req.StartDate, req.EndDate, req.Budget, req.Interests, req.Travelers),
			source:         "fallback",
			degradedReason: reason,
		}
	}

	if s.client == nil {
		return fallback("completion client not configured")
	}

	model, err := s.acquireModel(ctx)
	if err != nil {
		return fallback(fmt.Sprintf("no working model: %v", err))
	}

	prompt := BuildItineraryPrompt(req, daySpan)

	completionCtx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	rawText, err := s.client.Complete(completionCtx, model, prompt)
	if err != nil {
		return fallback(fmt.Sprintf("completion failed: %v", err))
	}

	itinerary, err := ParseItineraryResponse(rawText)
	if err != nil {
		return fallback(fmt.Sprintf("response parsing failed: %v", err))
	}

	return generationResult{itinerary: itinerary, source: "ai"}
}

// acquireModel issues a trivial canary request against each candidate in
// order and settles on the first that responds. Probes are sequential on
// purpose: it preserves the preference order and avoids pointless load on
// the external service.
func (s *ItineraryService) acquireModel(ctx context.Context) (string, error) {
	for _, model := range s.candidateModels {
		canaryCtx, cancel := context.WithTimeout(ctx, canaryTimeout)
		_, err := s.client.Complete(canaryCtx, model, "Hello")
		cancel()

		if err == nil {
			return model, nil
		}
		log.Printf("Model %s unavailable: %v", model, err)
	}
	return "", fmt.Errorf("all %d candidate models failed", len(s.candidateModels))
}

func (s *ItineraryService) GetRecommendations(ctx context.Context, req request_models.RecommendationsRequest) []response_models.Recommendation {
	if s.client == nil {
		return defaultRecommendations()
	}

	model, err := s.acquireModel(ctx)
	if err != nil {
		log.Printf("Recommendations degraded to defaults: %v", err)
		return defaultRecommendations()
	}

	completionCtx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	rawText, err := s.client.Complete(completionCtx, model, BuildRecommendationPrompt(req))
	if err != nil {
		log.Printf("Recommendations degraded to defaults: completion failed: %v", err)
		return defaultRecommendations()
	}

	recommendations, err := ParseRecommendationsResponse(rawText)
	if err != nil {
		log.Printf("Recommendations degraded to defaults: %v", err)
		return defaultRecommendations()
	}

	return recommendations
}

func defaultRecommendations() []response_models.Recommendation {
	return []response_models.Recommendation{
		{
			Title:         "Visit Local Museums and Galleries",
			Description:   "Explore cultural and historical exhibits indoors",
			Reason:        "Great for indoor activities during various weather conditions",
			EstimatedCost: 25,
		},
		{
			Title:         "Guided City Tour",
			Description:   "Discover the city with a knowledgeable local guide",
			Reason:        "Suitable for various weather conditions with flexible options",
			EstimatedCost: 40,
		},
		{
			Title:         "Local Food Tasting Experience",
			Description:   "Sample authentic local cuisine at food markets or restaurants",
			Reason:        "Enjoyable in any weather, focuses on indoor experiences",
			EstimatedCost: 35,
		},
	}
}

// planCache holds AI-generated itineraries for an hour, keyed by a hash of
// the full request parameters.
type planCache struct {
	mu    sync.RWMutex
	plans map[string]cachedPlan
}

type cachedPlan struct {
	itinerary *response_models.Itinerary
	timestamp time.Time
}

func newPlanCache() *planCache {
	return &planCache{plans: make(map[string]cachedPlan)}
}

func itineraryCacheKey(req request_models.GenerateItineraryRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Destination))
	h.Write([]byte(req.StartDate))
	h.Write([]byte(req.EndDate))
	h.Write([]byte(fmt.Sprintf("%f|%d|%s", req.Budget, req.Travelers, strings.Join(req.Interests, ","))))
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

func (c *planCache) get(key string) (*response_models.Itinerary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, exists := c.plans[key]
	if !exists || time.Since(cached.timestamp) > planCacheTTL {
		return nil, false
	}
	return cached.itinerary, true
}

func (c *planCache) set(key string, itinerary *response_models.Itinerary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.plans[key] = cachedPlan{itinerary: itinerary, timestamp: time.Now()}

	if len(c.plans) > 1000 {
		for k, cached := range c.plans {
			if time.Since(cached.timestamp) > 2*planCacheTTL {
				delete(c.plans, k)
			}
		}
	}
}
