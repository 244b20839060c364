// Package metrics exposes Prometheus counters for rule matches, action
// dispatch outcomes, and policy short-circuits.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry bundles the counters the pipeline and dispatcher increment.
// Construct one with NewRegistry and register it with an
// *http.ServeMux via promhttp.HandlerFor(reg.Registerer(), ...).
type Registry struct {
	registry *prometheus.Registry

	RulesMatched      *prometheus.CounterVec
	ActionsDispatched *prometheus.CounterVec
	PolicyBlocks      prometheus.Counter
}

// NewRegistry constructs a fresh, independent metrics registry.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		registry: reg,
		RulesMatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hookgate_rules_matched_total",
			Help: "Number of rules whose match clause held for an event.",
		}, []string{"point"}),
		ActionsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hookgate_actions_dispatched_total",
			Help: "Number of action handler invocations by action and outcome.",
		}, []string{"action", "passed"}),
		PolicyBlocks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hookgate_policy_blocks_total",
			Help: "Number of pipeline runs short-circuited by a policy block.",
		}),
	}
	reg.MustRegister(r.RulesMatched, r.ActionsDispatched, r.PolicyBlocks)
	return r
}

// Registerer exposes the underlying registry for wiring into an HTTP
// handler.
func (r *Registry) Registerer() *prometheus.Registry {
	return r.registry
}
