package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAICompletionClient implements CompletionClientInterface via the chat
// completions API.
type OpenAICompletionClient struct {
	client *openai.Client
}

func NewOpenAICompletionClient(apiKey string) *OpenAICompletionClient {
	return &OpenAICompletionClient{client: openai.NewClient(apiKey)}
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, model string, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}
	return resp.Choices[0].Message.Content, nil
}
