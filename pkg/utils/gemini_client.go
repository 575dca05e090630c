package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClientInterface on top of
// Google's generative models.
type GeminiCompletionClient struct {
	client *genai.Client
}

func NewGeminiCompletionClient(apiKey string) (*GeminiCompletionClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiCompletionClient{client: client}, nil
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, model string, prompt string) (string, error) {
	m := c.client.GenerativeModel(model)
	// Low temperature keeps itinerary JSON deterministic-ish and fast.
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetMaxOutputTokens(5000)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Close closes the underlying Gemini client.
func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}
