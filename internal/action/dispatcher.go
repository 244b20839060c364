package action

import (
	"context"
	"fmt"
	"time"

	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
)

// Notifier delivers a fire-and-forget, user-facing message routed from
// an event's session key.
type Notifier interface {
	Notify(ctx context.Context, event gateevent.Event, message string)
}

// LLM completes a single prompt against a named model with a deadline.
type LLM interface {
	Complete(ctx context.Context, model, systemPrompt, userPrompt string, timeout time.Duration) (string, error)
}

// Deps are the external collaborators action handlers need. All are
// optional; a handler that needs a nil dependency reports an ActionError
// result rather than panicking.
type Deps struct {
	Notifier      Notifier
	LLM           LLM
	LLMTimeout    time.Duration
	ScriptTimeout time.Duration
}

func (d Deps) llmTimeout() time.Duration {
	if d.LLMTimeout > 0 {
		return d.LLMTimeout
	}
	return 30 * time.Second
}

func (d Deps) scriptTimeout() time.Duration {
	if d.ScriptTimeout > 0 {
		return d.ScriptTimeout
	}
	return 30 * time.Second
}

// Dispatch routes rule's action to its handler and returns the handler's
// result, timed. Unknown actions are a caller bug (config.Validate
// should have rejected them) and surface as a failed result rather than
// a panic, so a stale rule index never takes down the pipeline.
func Dispatch(ctx context.Context, deps Deps, rule config.Rule, event gateevent.Event) Result {
	start := time.Now()
	var res Result
	switch rule.Action {
	case config.ActionBlock:
		res = Block(deps, rule, event)
	case config.ActionAllow:
		res = Allow(rule)
	case config.ActionLog:
		res = Log(rule, event)
	case config.ActionInjectContext:
		res = InjectContext(rule, event)
	case config.ActionSummarizeAndLog:
		res = SummarizeAndLog(ctx, deps, rule, event)
	case config.ActionExecScript:
		res = ExecScript(ctx, deps, rule, event)
	default:
		res = Result{Passed: false, Action: string(rule.Action), Message: fmt.Sprintf("unknown action %q", rule.Action)}
	}
	res.Action = string(rule.Action)
	res.RuleName = rule.Name
	res.DurationMs = time.Since(start).Milliseconds()
	return res
}
