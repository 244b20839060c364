// Package hostadapter translates host runtime events into engine calls
// and the engine's per-rule results back into the single block/mutation
// decision a host acts on.
package hostadapter

import (
	"context"
	"strings"

	"github.com/hookgate/hookgate/internal/action"
	"github.com/hookgate/hookgate/internal/gateevent"
)

// Executor is the subset of the engine a host adapter depends on.
type Executor interface {
	Execute(ctx context.Context, event gateevent.Event) []action.Result
}

// Decision is what a host acts on after a hook point fires: either let
// the turn proceed (optionally with context to inject) or block it with
// a message.
type Decision struct {
	Blocked      bool
	Message      string
	ContextPatch string
	Results      []action.Result
}

// Adapter runs a hook point through an Executor and reduces its results
// to a single Decision.
type Adapter struct {
	engine Executor
}

// New builds an Adapter over engine.
func New(engine Executor) *Adapter {
	return &Adapter{engine: engine}
}

// Fire executes event and reduces the rule results into a Decision. A
// blocking result (the first rule whose final Passed is false) wins:
// its message becomes the Decision's message and evaluation is
// considered blocked, matching the pipeline's own short-circuit
// behavior. Otherwise every inject_context result's contextPatch is
// concatenated in rule declaration order, separated by a single newline, so
// a host applies one combined patch instead of iterating results
// itself.
func (a *Adapter) Fire(ctx context.Context, event gateevent.Event) Decision {
	results := a.engine.Execute(ctx, event)

	decision := Decision{Results: results}
	var patches []string
	for _, res := range results {
		if !res.Passed {
			decision.Blocked = true
			decision.Message = res.Message
			break
		}
		if res.ContextPatch != "" {
			patches = append(patches, res.ContextPatch)
		}
	}
	if !decision.Blocked {
		decision.ContextPatch = strings.Join(patches, "\n")
	}
	return decision
}
