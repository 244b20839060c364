package action

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
)

func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "script.sh")
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

func TestExecScriptSuccess(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "#!/bin/sh\necho ok\n")
	rule := config.Rule{Action: config.ActionExecScript, Target: path}
	res := ExecScript(context.Background(), Deps{}, rule, gateevent.Event{})
	if !res.Passed || res.Message != "ok" {
		t.Fatalf("got %+v", res)
	}
}

func TestExecScriptFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "#!/bin/sh\necho nope 1>&2\nexit 1\n")
	rule := config.Rule{Action: config.ActionExecScript, Target: path}
	res := ExecScript(context.Background(), Deps{}, rule, gateevent.Event{})
	if res.Passed || res.Message != "nope" {
		t.Fatalf("got %+v", res)
	}
}

func TestExecScriptDenylisted(t *testing.T) {
	rule := config.Rule{Action: config.ActionExecScript, Target: "/bin/rm"}
	res := ExecScript(context.Background(), Deps{}, rule, gateevent.Event{})
	if res.Passed {
		t.Fatal("expected denylisted script to fail without spawning")
	}
}

func TestExecScriptNotExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.sh")
	if err := os.WriteFile(path, []byte("echo hi\n"), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	rule := config.Rule{Action: config.ActionExecScript, Target: path}
	res := ExecScript(context.Background(), Deps{}, rule, gateevent.Event{})
	if res.Passed {
		t.Fatal("expected non-executable script to fail")
	}
}
