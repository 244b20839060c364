package action

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/interpolate"
)

type logLine struct {
	Timestamp  string         `json:"timestamp"`
	Point      string         `json:"point"`
	SessionKey string         `json:"sessionKey"`
	TopicID    *int           `json:"topicId,omitempty"`
	ToolName   string         `json:"toolName,omitempty"`
	ToolArgs   map[string]any `json:"toolArgs,omitempty"`
	Prompt     string         `json:"prompt,omitempty"`
	Response   string         `json:"response,omitempty"`
}

// Log appends a single JSON line describing event to the interpolated
// target, creating parent directories as needed.
func Log(rule config.Rule, event gateevent.Event) Result {
	path := interpolate.Path(rule.Target, event)
	line := logLine{
		Timestamp:  time.UnixMilli(event.Timestamp).UTC().Format(time.RFC3339),
		Point:      string(event.Point),
		SessionKey: event.SessionKey,
		TopicID:    event.TopicID,
		ToolName:   event.ToolName,
		ToolArgs:   event.ToolArgs,
		Prompt:     event.Prompt,
		Response:   event.Response,
	}
	if err := appendJSONLine(path, line); err != nil {
		return Result{Passed: false, Message: err.Error()}
	}
	return Result{Passed: true}
}

func appendJSONLine(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating parent directories for %s: %w", path, err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling log line: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
