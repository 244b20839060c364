// Package action implements the per-rule action handlers (block, allow,
// log, inject_context, summarize_and_log, exec_script) and the
// dispatcher that routes a matched rule to its handler.
package action

// Result is a single rule's outcome, returned by every handler and
// aggregated by the pipeline into the per-event result list.
type Result struct {
	Passed       bool
	Action       string
	Message      string
	RuleName     string
	ContextPatch string
	DurationMs   int64
}
