// Package sessionkey classifies and parses the opaque, colon-delimited
// session key carried on every event.
package sessionkey

import (
	"regexp"
	"strings"
)

const subagentMarker = ":subagent:"

// IsSubAgent reports whether key identifies a spawned sub-agent rather
// than the main agent.
func IsSubAgent(key string) bool {
	return strings.Contains(key, subagentMarker)
}

var topicPattern = regexp.MustCompile(`:topic:(\d+)`)

// ExtractTopicID returns the topic id embedded in key, or "unknown" if
// none is present.
func ExtractTopicID(key string) string {
	m := topicPattern.FindStringSubmatch(key)
	if m == nil {
		return "unknown"
	}
	return m[1]
}

// Target describes where a user-facing notification for this session
// key should be routed.
type Target struct {
	ChatID         string
	ThreadID       string
	HasThread      bool
}

var (
	groupTopicPattern = regexp.MustCompile(`telegram:group:(-?[A-Za-z0-9_]+):topic:(\d+)$`)
	groupPattern      = regexp.MustCompile(`telegram:group:(-?[A-Za-z0-9_]+)$`)
	directPattern     = regexp.MustCompile(`telegram:(-?[0-9]+)$`)
)

// ParseTelegramTarget parses a Telegram-style routing target out of a
// session key, matching the three recognized forms end-anchored. ok is
// false when none of the forms match.
func ParseTelegramTarget(key string) (Target, bool) {
	if m := groupTopicPattern.FindStringSubmatch(key); m != nil {
		return Target{ChatID: m[1], ThreadID: m[2], HasThread: true}, true
	}
	if m := groupPattern.FindStringSubmatch(key); m != nil {
		return Target{ChatID: m[1]}, true
	}
	if m := directPattern.FindStringSubmatch(key); m != nil {
		return Target{ChatID: m[1]}, true
	}
	return Target{}, false
}
