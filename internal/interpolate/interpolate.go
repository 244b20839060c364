// Package interpolate substitutes event-derived placeholders into
// action target strings.
package interpolate

import (
	"strconv"
	"strings"
	"time"

	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/sessionkey"
)

// Path replaces {topicId}, {sessionKey}, and {timestamp} in path with
// values derived from event. Unknown placeholders are left as-is. The
// function is pure: identical (path, event) always yields the same
// string.
func Path(path string, event gateevent.Event) string {
	topicID := "unknown"
	if event.TopicID != nil {
		topicID = strconv.Itoa(*event.TopicID)
	} else {
		topicID = sessionkey.ExtractTopicID(event.SessionKey)
	}

	r := strings.NewReplacer(
		"{topicId}", topicID,
		"{sessionKey}", event.SessionKey,
		"{timestamp}", timestamp(event.Timestamp),
	)
	return r.Replace(path)
}

func timestamp(epochMs int64) string {
	return time.UnixMilli(epochMs).UTC().Format(time.RFC3339)
}
