package action

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/interpolate"
)

const summarizeSystemPrompt = "Produce a one-paragraph human-readable summary of this agent turn."

// SummarizeAndLog synthesizes a short prompt from the event's salient
// fields, asks the configured model to summarize it, and appends the
// result under an ISO UTC heading to the interpolated target.
func SummarizeAndLog(ctx context.Context, deps Deps, rule config.Rule, event gateevent.Event) Result {
	if deps.LLM == nil {
		return Result{Passed: false, Message: "no LLM provider configured"}
	}
	userPrompt := buildSummaryPrompt(event)
	summary, err := deps.LLM.Complete(ctx, rule.Model, summarizeSystemPrompt, userPrompt, deps.llmTimeout())
	if err != nil {
		return Result{Passed: false, Message: err.Error()}
	}
	path := interpolate.Path(rule.Target, event)
	heading := time.Now().UTC().Format(time.RFC3339)
	entry := fmt.Sprintf("## %s\n\n%s\n\n", heading, strings.TrimSpace(summary))
	if err := appendText(path, entry); err != nil {
		return Result{Passed: false, Message: err.Error()}
	}
	return Result{Passed: true}
}

func buildSummaryPrompt(event gateevent.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "session: %s\n", event.SessionKey)
	if event.ToolName != "" {
		fmt.Fprintf(&b, "tool: %s\n", event.ToolName)
	}
	if len(event.ToolArgs) > 0 {
		fmt.Fprintf(&b, "toolArgs: %v\n", event.ToolArgs)
	}
	if event.Prompt != "" {
		fmt.Fprintf(&b, "prompt: %s\n", event.Prompt)
	}
	if event.Response != "" {
		fmt.Fprintf(&b, "response: %s\n", event.Response)
	}
	return b.String()
}

func appendText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating parent directories for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
