package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider completes prompts against the Anthropic Messages API.
type AnthropicProvider struct {
	client anthropic.Client
}

// NewAnthropicProvider constructs a provider from an API key.
func NewAnthropicProvider(apiKey string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: API key is required")
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{client: client}, nil
}

// Complete streams a single completion and accumulates its text deltas
// into one string, since the SDK's Messages API is stream-oriented and
// summarize_and_log only needs the final text.
func (p *AnthropicProvider) Complete(ctx context.Context, model, systemPrompt, userPrompt string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Type: "text", Text: systemPrompt}}
	}

	stream := p.client.Messages.NewStreaming(ctx, params)

	var out strings.Builder
	for stream.Next() {
		event := stream.Current()
		if event.Type != "content_block_delta" {
			continue
		}
		delta := event.AsContentBlockDelta().Delta
		if delta.Type == "text_delta" && delta.Text != "" {
			out.WriteString(delta.Text)
		}
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	return out.String(), nil
}
