// Package llm routes summarize_and_log completions to one of three
// provider SDKs based on the configured model identifier.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Provider completes a single synchronous prompt against model.
type Provider interface {
	Complete(ctx context.Context, model, systemPrompt, userPrompt string, timeout time.Duration) (string, error)
}

// Router dispatches Complete calls to the provider matching the model's
// prefix: claude-* to Anthropic, gpt-*/o1-* to OpenAI, gemini-* to
// Google. It implements action.LLM.
type Router struct {
	Anthropic Provider
	OpenAI    Provider
	Google    Provider
}

// Complete routes to the provider inferred from model's prefix. An
// unrecognized prefix or a nil provider for the matched prefix is an
// error, never a panic.
func (r Router) Complete(ctx context.Context, model, systemPrompt, userPrompt string, timeout time.Duration) (string, error) {
	provider, err := r.providerFor(model)
	if err != nil {
		return "", err
	}
	return provider.Complete(ctx, model, systemPrompt, userPrompt, timeout)
}

func (r Router) providerFor(model string) (Provider, error) {
	switch {
	case strings.HasPrefix(model, "claude-"):
		if r.Anthropic == nil {
			return nil, fmt.Errorf("llm: no Anthropic provider configured for model %q", model)
		}
		return r.Anthropic, nil
	case strings.HasPrefix(model, "gpt-"), strings.HasPrefix(model, "o1-"):
		if r.OpenAI == nil {
			return nil, fmt.Errorf("llm: no OpenAI provider configured for model %q", model)
		}
		return r.OpenAI, nil
	case strings.HasPrefix(model, "gemini-"):
		if r.Google == nil {
			return nil, fmt.Errorf("llm: no Google provider configured for model %q", model)
		}
		return r.Google, nil
	default:
		return nil, fmt.Errorf("llm: no provider routes model %q", model)
	}
}
