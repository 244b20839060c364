package llm

import (
	"context"
	"testing"
	"time"
)

type stubProvider struct {
	name string
}

func (s stubProvider) Complete(ctx context.Context, model, systemPrompt, userPrompt string, timeout time.Duration) (string, error) {
	return s.name, nil
}

func TestRouterDispatchesByModelPrefix(t *testing.T) {
	r := Router{
		Anthropic: stubProvider{"anthropic"},
		OpenAI:    stubProvider{"openai"},
		Google:    stubProvider{"google"},
	}
	cases := map[string]string{
		"claude-haiku":   "anthropic",
		"gpt-4o":         "openai",
		"o1-preview":     "openai",
		"gemini-2.0-pro": "google",
	}
	for model, want := range cases {
		got, err := r.Complete(context.Background(), model, "sys", "user", time.Second)
		if err != nil {
			t.Fatalf("model %s: unexpected error: %v", model, err)
		}
		if got != want {
			t.Errorf("model %s: got %q, want %q", model, got, want)
		}
	}
}

func TestRouterUnknownPrefixErrors(t *testing.T) {
	r := Router{}
	if _, err := r.Complete(context.Background(), "llama-3", "sys", "user", time.Second); err == nil {
		t.Fatal("expected error for unrecognized model prefix")
	}
}

func TestRouterMissingProviderErrors(t *testing.T) {
	r := Router{}
	if _, err := r.Complete(context.Background(), "claude-haiku", "sys", "user", time.Second); err == nil {
		t.Fatal("expected error when Anthropic provider is nil")
	}
}
