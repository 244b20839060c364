package interpolate

import (
	"testing"

	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/hookpoint"
)

func TestPath(t *testing.T) {
	topic := 42
	e := gateevent.Event{
		Point:      hookpoint.TurnPost,
		SessionKey: "agent:main:telegram:group:-100X:topic:42",
		Timestamp:  0,
		TopicID:    &topic,
	}
	got := Path("/t/topic-{topicId}-{sessionKey}-{timestamp}.jsonl", e)
	want := "/t/topic-42-agent:main:telegram:group:-100X:topic:42-1970-01-01T00:00:00Z.jsonl"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPathFallsBackToSessionKeyTopic(t *testing.T) {
	e := gateevent.Event{SessionKey: "agent:main:topic:7:x"}
	got := Path("{topicId}", e)
	if got != "7" {
		t.Errorf("got %q, want 7", got)
	}
}

func TestPathUnknownTopic(t *testing.T) {
	e := gateevent.Event{SessionKey: "agent:main:subagent:abc"}
	if got := Path("{topicId}", e); got != "unknown" {
		t.Errorf("got %q, want unknown", got)
	}
}

func TestPathIsPure(t *testing.T) {
	e := gateevent.Event{SessionKey: "agent:main:subagent:abc", Timestamp: 12345}
	a := Path("{sessionKey}/{timestamp}", e)
	b := Path("{sessionKey}/{timestamp}", e)
	if a != b {
		t.Errorf("interpolation not deterministic: %q != %q", a, b)
	}
}

func TestPathLeavesUnknownPlaceholdersLiteral(t *testing.T) {
	e := gateevent.Event{}
	got := Path("{bogus}/{sessionKey}", e)
	if got != "{bogus}/" {
		t.Errorf("got %q", got)
	}
}
