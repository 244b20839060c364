package action

import (
	"context"

	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
)

const defaultBlockMessage = "blocked"

// Block unconditionally fails the event, optionally notifying the user.
func Block(deps Deps, rule config.Rule, event gateevent.Event) Result {
	message := defaultBlockMessage
	notify := false
	if rule.OnFailure != nil {
		if rule.OnFailure.Message != "" {
			message = rule.OnFailure.Message
		}
		notify = rule.OnFailure.NotifyUser
	}
	if notify && deps.Notifier != nil {
		deps.Notifier.Notify(context.Background(), event, message)
	}
	return Result{Passed: false, Message: message}
}
