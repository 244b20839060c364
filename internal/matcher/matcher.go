// Package matcher evaluates a rule's match clause against an event.
package matcher

import (
	"regexp"

	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/sessionkey"
)

// Match reports whether event satisfies rule's match clause. A missing
// match clause matches everything; all present predicates are ANDed.
// Regexes in commandPattern/sessionPattern are assumed to have already
// been validated by config.Validate and so are compiled unconditionally
// here; a compile failure at this point is a caller bug, not user input,
// and is treated as a non-match rather than a panic.
func Match(m *config.Match, event gateevent.Event) bool {
	if m == nil {
		return true
	}
	if m.Tool != nil && event.ToolName != *m.Tool {
		return false
	}
	if m.CommandPattern != nil && !matchCommandPattern(*m.CommandPattern, event) {
		return false
	}
	if m.TopicID != nil && !matchTopicID(*m.TopicID, event) {
		return false
	}
	if m.IsSubAgent != nil && sessionkey.IsSubAgent(event.SessionKey) != *m.IsSubAgent {
		return false
	}
	if m.SessionPattern != nil && !matchSessionPattern(*m.SessionPattern, event.SessionKey) {
		return false
	}
	return true
}

func matchCommandPattern(pattern string, event gateevent.Event) bool {
	cmd, ok := event.Command()
	if !ok {
		return false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(cmd)
}

func matchTopicID(want int, event gateevent.Event) bool {
	if event.TopicID == nil {
		return false
	}
	return *event.TopicID == want
}

func matchSessionPattern(pattern, sessionKey string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(sessionKey)
}
