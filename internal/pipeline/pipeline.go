// Package pipeline orchestrates the ordered evaluation of the rules
// bound to one hook point for one event: matching, action dispatch,
// onFailure resolution, and short-circuit on policy blocks.
package pipeline

import (
	"context"

	"github.com/hookgate/hookgate/internal/action"
	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/matcher"
	"github.com/hookgate/hookgate/internal/ruleindex"
)

// Engine executes rules against events. It holds no mutable state of
// its own beyond the injected, read-only rule index.
type Engine struct {
	Index *ruleindex.Index
	Deps  action.Deps
}

// New builds an Engine over idx with the given action dependencies.
func New(idx *ruleindex.Index, deps action.Deps) *Engine {
	return &Engine{Index: idx, Deps: deps}
}

// Execute evaluates every enabled, matching rule bound to event.Point in
// declaration order, dispatching each to its action handler and
// resolving side-effect failures via the rule's onFailure policy. It
// short-circuits only on a policy block (a matched action: block rule),
// never on an absorbed side-effect failure.
func (e *Engine) Execute(ctx context.Context, event gateevent.Event) []action.Result {
	rules := e.Index.Lookup(event.Point)
	if len(rules) == 0 {
		return nil
	}

	var results []action.Result
	for _, rule := range rules {
		if !rule.IsEnabled() {
			continue
		}
		if !matcher.Match(rule.Match, event) {
			continue
		}

		res := e.invoke(ctx, rule, event)
		results = append(results, res)

		if rule.Action == config.ActionBlock && !res.Passed {
			break
		}
	}
	return results
}

// invoke dispatches rule once and, if it failed as a side effect (not a
// policy block), resolves the failure through onFailure.
func (e *Engine) invoke(ctx context.Context, rule config.Rule, event gateevent.Event) action.Result {
	res := action.Dispatch(ctx, e.Deps, rule, event)
	if res.Passed || rule.Action == config.ActionBlock {
		return res
	}
	return e.resolveFailure(ctx, rule, event, res)
}

func (e *Engine) resolveFailure(ctx context.Context, rule config.Rule, event gateevent.Event, res action.Result) action.Result {
	of := rule.OnFailure
	failureAction := config.FailureContinue
	if of != nil && of.Action != "" {
		failureAction = of.Action
	}

	switch failureAction {
	case config.FailureBlock:
		message := res.Message
		if of != nil && of.Message != "" {
			message = of.Message
		}
		if of != nil && of.NotifyUser && e.Deps.Notifier != nil {
			e.Deps.Notifier.Notify(ctx, event, message)
		}
		res.Passed = false
		res.Message = message
		return res

	case config.FailureRetry:
		maxRetries := 0
		if of != nil {
			maxRetries = of.MaxRetries
		}
		attempt := res
		for i := 0; i < maxRetries; i++ {
			attempt = action.Dispatch(ctx, e.Deps, rule, event)
			if attempt.Passed {
				return attempt
			}
		}
		attempt.Passed = true
		return attempt

	default: // continue
		res.Passed = true
		return res
	}
}
