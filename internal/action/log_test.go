package action

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
)

func TestLogAppendsJSONLine(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "topic-{topicId}.jsonl")
	topic := 42
	rule := config.Rule{Action: config.ActionLog, Target: target}
	event := gateevent.Event{
		Point:      "turn:post",
		SessionKey: "agent:main:telegram:12345",
		TopicID:    &topic,
		Prompt:     "hi",
	}
	res := Log(rule, event)
	if !res.Passed {
		t.Fatalf("expected log to pass, got %+v", res)
	}
	data, err := os.ReadFile(filepath.Join(dir, "topic-42.jsonl"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	var line logLine
	if err := json.Unmarshal(data[:len(data)-1], &line); err != nil {
		t.Fatalf("unmarshal: %v (data=%s)", err, data)
	}
	if line.SessionKey != event.SessionKey || line.Prompt != "hi" {
		t.Errorf("got %+v", line)
	}
}

func TestLogFailureReturnsUnpassed(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing blocker file: %v", err)
	}
	rule := config.Rule{Action: config.ActionLog, Target: filepath.Join(blocker, "b.jsonl")}
	res := Log(rule, gateevent.Event{})
	if res.Passed {
		t.Fatal("expected failure when a path component is a regular file, not a directory")
	}
}
