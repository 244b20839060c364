package action

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/interpolate"
	"github.com/hookgate/hookgate/internal/sessionkey"
)

var denylistPrefixes = []string{"/etc/", "/bin/", "/sbin/", "/usr/bin/", "/usr/sbin/"}

// ExecScript validates the interpolated target against the denylist and
// executable-bit checks, then spawns it with the event marshalled into
// environment variables, capturing stdout/stderr separately under a
// per-invocation timeout.
func ExecScript(ctx context.Context, deps Deps, rule config.Rule, event gateevent.Event) Result {
	path := interpolate.Path(rule.Target, event)
	if err := checkExecutable(path); err != nil {
		return Result{Passed: false, Message: err.Error()}
	}

	runCtx, cancel := context.WithTimeout(ctx, deps.scriptTimeout())
	defer cancel()

	cmd := exec.CommandContext(runCtx, path)
	cmd.Env = buildEnv(event)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if runCtx.Err() != nil {
		return Result{Passed: false, Message: "script timed out"}
	}
	if err == nil {
		return Result{Passed: true, Message: strings.TrimRight(stdout.String(), "\n")}
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return Result{Passed: false, Message: err.Error()}
	}
	msg := strings.TrimRight(stderr.String(), "\n")
	if msg == "" {
		msg = fmt.Sprintf("script exited with code %d", exitErr.ExitCode())
	}
	return Result{Passed: false, Message: msg}
}

func checkExecutable(path string) error {
	for _, prefix := range denylistPrefixes {
		if strings.HasPrefix(path, prefix) {
			return fmt.Errorf("%s is denylisted", path)
		}
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	if info.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("%s is not executable", path)
	}
	return nil
}

func buildEnv(event gateevent.Event) []string {
	argsJSON := "{}"
	if event.ToolArgs != nil {
		if b, err := json.Marshal(event.ToolArgs); err == nil {
			argsJSON = string(b)
		}
	}
	subagentLabel := event.SubagentLabel
	env := append(os.Environ(),
		"HOOK_POINT="+string(event.Point),
		"HOOK_SESSION="+event.SessionKey,
		"HOOK_TOOL="+event.ToolName,
		"HOOK_ARGS="+argsJSON,
		"HOOK_TOPIC="+topicEnvValue(event),
		"HOOK_TIMESTAMP="+strconv.FormatInt(event.Timestamp, 10),
		"HOOK_SUBAGENT="+strconv.FormatBool(sessionkey.IsSubAgent(event.SessionKey)),
		"HOOK_SUBAGENT_LABEL="+subagentLabel,
		"HOOK_CRON_JOB="+event.CronJob,
		"HOOK_PROMPT="+event.Prompt,
		"HOOK_RESPONSE="+event.Response,
		// HOOK_SUMMARY is part of the documented contract but no event field
		// feeds it; always empty until a producer populates one.
		"HOOK_SUMMARY=",
	)
	return env
}

func topicEnvValue(event gateevent.Event) string {
	if event.TopicID != nil {
		return strconv.Itoa(*event.TopicID)
	}
	return sessionkey.ExtractTopicID(event.SessionKey)
}
