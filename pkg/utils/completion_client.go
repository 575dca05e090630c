package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionClientInterface is the boundary to the external text-completion
// service. A single operation: prompt in, raw text out. Implementations may
// fail for any reason (timeout, quota, unknown model); callers treat all
// failures uniformly.
type CompletionClientInterface interface {
	Complete(ctx context.Context, model string, prompt string) (string, error)
}

// NewCompletionClient Factory function to create either an OpenAI or Gemini
// backed client based on config.
func NewCompletionClient(provider, apiKey string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICompletionClient(apiKey), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey)
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", provider)
	}
}
