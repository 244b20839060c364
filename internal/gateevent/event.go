// Package gateevent defines the per-firing payload the engine evaluates
// rules against.
package gateevent

import "github.com/hookgate/hookgate/internal/hookpoint"

// Event is the immutable context passed into a single hook-point firing.
// Handlers never mutate it; any downstream change is carried back as part
// of a result instead.
type Event struct {
	Point      hookpoint.Point
	SessionKey string
	Timestamp  int64 // epoch milliseconds

	ToolName      string
	ToolArgs      map[string]any
	TopicID       *int
	SubagentLabel string
	CronJob       string
	Prompt        string
	Response      string
}

// Command extracts toolArgs.command as a string, returning ok=false when
// ToolArgs is nil, has no "command" key, or the value isn't a string.
func (e Event) Command() (string, bool) {
	if e.ToolArgs == nil {
		return "", false
	}
	v, ok := e.ToolArgs["command"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
