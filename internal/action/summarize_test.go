package action

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
)

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Complete(ctx context.Context, model, systemPrompt, userPrompt string, timeout time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestSummarizeAndLogAppendsHeadingAndSummary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "summary.md")
	rule := config.Rule{Model: "claude-haiku", Target: target}
	llm := &fakeLLM{response: "Agent ran ls."}
	res := SummarizeAndLog(context.Background(), Deps{LLM: llm}, rule, gateevent.Event{SessionKey: "agent:main:telegram:1"})
	if !res.Passed {
		t.Fatalf("expected pass, got %+v", res)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading target: %v", err)
	}
	if !strings.Contains(string(data), "Agent ran ls.") {
		t.Errorf("summary not written: %s", data)
	}
}

func TestSummarizeAndLogNoProvider(t *testing.T) {
	rule := config.Rule{Model: "claude-haiku", Target: "/tmp/summary.md"}
	res := SummarizeAndLog(context.Background(), Deps{}, rule, gateevent.Event{})
	if res.Passed {
		t.Fatal("expected failure with no LLM configured")
	}
}

func TestSummarizeAndLogProviderError(t *testing.T) {
	rule := config.Rule{Model: "claude-haiku", Target: "/tmp/summary.md"}
	llm := &fakeLLM{err: context.DeadlineExceeded}
	res := SummarizeAndLog(context.Background(), Deps{LLM: llm}, rule, gateevent.Event{})
	if res.Passed {
		t.Fatal("expected failure when provider errors")
	}
}
