package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GoogleProvider completes prompts against the Gemini API.
type GoogleProvider struct {
	client *genai.Client
}

// NewGoogleProvider constructs a provider from an API key.
func NewGoogleProvider(ctx context.Context, apiKey string) (*GoogleProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("google: failed to create client: %w", err)
	}
	return &GoogleProvider{client: client}, nil
}

// Complete issues a single, non-streaming generation call.
func (p *GoogleProvider) Complete(ctx context.Context, model, systemPrompt, userPrompt string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{}
	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	contents := []*genai.Content{{Parts: []*genai.Part{{Text: userPrompt}}}}
	resp, err := p.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("google: %w", err)
	}
	return resp.Text(), nil
}
