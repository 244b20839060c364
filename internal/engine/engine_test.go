package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/hookpoint"
)

const minimalConfig = `
version: "1"
hooks:
  - name: block-rm
    point: turn:tool:pre
    match:
      commandPattern: "rm -rf"
    action: block
`

const expandedConfig = `
version: "1"
hooks:
  - name: block-rm
    point: turn:tool:pre
    match:
      commandPattern: "rm -rf"
    action: block
  - name: block-dd
    point: turn:tool:pre
    match:
      commandPattern: "dd if="
    action: block
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "hookgate.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestNewLoadsAndExecutes(t *testing.T) {
	path := writeConfig(t, minimalConfig)
	e, err := New(path, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	results := e.Execute(context.Background(), gateevent.Event{
		Point:    hookpoint.TurnToolPre,
		ToolArgs: map[string]any{"command": "rm -rf /"},
	})
	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected one blocking result, got %+v", results)
	}
}

func TestReloadPicksUpNewRules(t *testing.T) {
	path := writeConfig(t, minimalConfig)
	e, err := New(path, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := os.WriteFile(path, []byte(expandedConfig), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}
	if err := e.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	results := e.Execute(context.Background(), gateevent.Event{
		Point:    hookpoint.TurnToolPre,
		ToolArgs: map[string]any{"command": "dd if=/dev/zero"},
	})
	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected the newly added rule to block, got %+v", results)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, "version: \"2\"\nhooks: []\n")
	if _, err := New(path, Options{}); err == nil {
		t.Fatal("expected an error for an unsupported version")
	}
}
