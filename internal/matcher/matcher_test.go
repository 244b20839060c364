package matcher

import (
	"testing"

	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }
func boolp(b bool) *bool    { return &b }

func TestMatchNilMatchesAll(t *testing.T) {
	if !Match(nil, gateevent.Event{}) {
		t.Error("nil match clause should match everything")
	}
}

func TestMatchTool(t *testing.T) {
	m := &config.Match{Tool: strp("exec")}
	if !Match(m, gateevent.Event{ToolName: "exec"}) {
		t.Error("expected match")
	}
	if Match(m, gateevent.Event{ToolName: "Exec"}) {
		t.Error("tool match must be case-sensitive")
	}
}

func TestMatchCommandPattern(t *testing.T) {
	m := &config.Match{
		Tool:           strp("exec"),
		CommandPattern: strp(`^rm\s`),
	}
	blocked := gateevent.Event{ToolName: "exec", ToolArgs: map[string]any{"command": "rm /tmp/x"}}
	if !Match(m, blocked) {
		t.Error("expected rm command to match")
	}
	allowed := gateevent.Event{ToolName: "exec", ToolArgs: map[string]any{"command": "ls /tmp"}}
	if Match(m, allowed) {
		t.Error("ls command should not match rm pattern")
	}
	noArgs := gateevent.Event{ToolName: "exec"}
	if Match(m, noArgs) {
		t.Error("missing toolArgs should not match")
	}
}

func TestMatchTopicID(t *testing.T) {
	m := &config.Match{TopicID: intp(42)}
	topic := 42
	if !Match(m, gateevent.Event{TopicID: &topic}) {
		t.Error("expected topic match")
	}
	if Match(m, gateevent.Event{}) {
		t.Error("missing topic should not match")
	}
	other := 7
	if Match(m, gateevent.Event{TopicID: &other}) {
		t.Error("mismatched topic should not match")
	}
}

func TestMatchIsSubAgent(t *testing.T) {
	m := &config.Match{IsSubAgent: boolp(false)}
	if !Match(m, gateevent.Event{SessionKey: "agent:main:telegram:12345"}) {
		t.Error("expected main-agent session to match isSubAgent:false")
	}
	if Match(m, gateevent.Event{SessionKey: "agent:main:subagent:abc"}) {
		t.Error("sub-agent session should not match isSubAgent:false")
	}
}

func TestMatchSessionPatternSubstring(t *testing.T) {
	m := &config.Match{SessionPattern: strp("telegram")}
	if !Match(m, gateevent.Event{SessionKey: "agent:main:telegram:12345"}) {
		t.Error("expected substring match")
	}
}

func TestMatchAllPredicatesAnded(t *testing.T) {
	m := &config.Match{Tool: strp("exec"), TopicID: intp(1)}
	topic := 2
	if Match(m, gateevent.Event{ToolName: "exec", TopicID: &topic}) {
		t.Error("mismatched topicId should fail the AND even though tool matches")
	}
}

func TestDelegationEnforcementScenario(t *testing.T) {
	m := &config.Match{
		Tool:           strp("exec"),
		IsSubAgent:     boolp(false),
		CommandPattern: strp(`npm (install|ci|run build|test)`),
	}
	mainAgent := gateevent.Event{
		ToolName:   "exec",
		SessionKey: "agent:main:telegram:group:-100X:topic:42",
		ToolArgs:   map[string]any{"command": "npm install"},
	}
	if !Match(m, mainAgent) {
		t.Error("expected main-agent npm install to match")
	}
	subAgent := gateevent.Event{
		ToolName:   "exec",
		SessionKey: "agent:main:subagent:abc",
		ToolArgs:   map[string]any{"command": "npm install"},
	}
	if Match(m, subAgent) {
		t.Error("sub-agent npm install should not match isSubAgent:false rule")
	}
}
