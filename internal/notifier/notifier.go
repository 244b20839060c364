// Package notifier delivers fire-and-forget, user-facing notifications
// through the host's messaging channel, routing sub-agent events to the
// last known main-agent session.
package notifier

import (
	"context"
	"log/slog"

	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/sessionkey"
)

// Sender delivers a single message to a parsed routing target. A target
// with HasThread false means no message-thread targeting.
type Sender interface {
	Send(ctx context.Context, target sessionkey.Target, text string) error
}

// Notifier is the engine-scoped Notifier component. It never propagates
// errors to callers; failures are logged.
type Notifier struct {
	sender Sender
	state  *LastMainSession
	logger *slog.Logger
}

// New constructs a Notifier. A nil logger falls back to slog.Default.
func New(sender Sender, state *LastMainSession, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{sender: sender, state: state, logger: logger}
}

// Notify records main-agent session keys as they pass through and sends
// text to the routing target derived from event's session key, falling
// back to the last remembered main-agent session for sub-agent events.
// It never panics or returns an error; send failures are logged only.
func (n *Notifier) Notify(ctx context.Context, event gateevent.Event, text string) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("notifier panic recovered", "panic", r)
		}
	}()

	key := event.SessionKey
	isSubAgent := sessionkey.IsSubAgent(key)
	if !isSubAgent && n.state != nil {
		n.state.Set(key)
	}
	if isSubAgent && n.state != nil {
		key = n.state.Get()
	}

	target, ok := sessionkey.ParseTelegramTarget(key)
	if !ok {
		n.logger.Warn("notifier: no routable target for session key", "sessionKey", key)
		return
	}
	if n.sender == nil {
		n.logger.Warn("notifier: no sender configured", "sessionKey", key)
		return
	}
	if err := n.sender.Send(ctx, target, text); err != nil {
		n.logger.Error("notifier: send failed", "error", err, "sessionKey", key)
	}
}
