package ai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"dreamtrip/internal/api/controllers"
	"dreamtrip/internal/services"
	"dreamtrip/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideItineraryService,
	ProvideAIController)

// ProvideCompletionClient creates a completion client from environment
// configuration. A missing or broken configuration yields a nil client rather
// than aborting startup: itinerary generation degrades to the deterministic
// fallback and the rest of the API keeps working.
func ProvideCompletionClient() utils.CompletionClientInterface {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	if apiKey == "" {
		log.Printf("No API key configured for provider %s, itineraries will use fallback generation", provider)
		return nil
	}

	client, err := utils.NewCompletionClient(provider, apiKey)
	if err != nil {
		log.Printf("Failed to create %s completion client: %v, itineraries will use fallback generation", provider, err)
		return nil
	}

	log.Printf("Initialized %s completion client", provider)
	return client
}

func ProvideItineraryService(client utils.CompletionClientInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(client, candidateModelsFromEnv())
}

func ProvideAIController(itineraryService services.ItineraryServiceInterface) *controllers.AIController {
	return controllers.NewAIController(itineraryService)
}

// candidateModelsFromEnv reads AI_MODELS as a comma-separated list. An empty
// value keeps the built-in candidate order.
func candidateModelsFromEnv() []string {
	raw := os.Getenv("AI_MODELS")
	if raw == "" {
		return nil
	}

	var models []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	return models
}

func getEnvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
