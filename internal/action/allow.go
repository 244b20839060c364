package action

import "github.com/hookgate/hookgate/internal/config"

// Allow always passes. It exists so an earlier, broader deny rule can be
// overridden by a later, more specific rule within the same point.
func Allow(rule config.Rule) Result {
	return Result{Passed: true}
}
