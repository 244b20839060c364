// Package ruleindex indexes validated config rules by hook point for
// O(1) lookup, preserving declaration order.
package ruleindex

import (
	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/hookpoint"
)

// Index maps each hook point to the ordered list of rules bound to it.
// A rule declared against multiple points is appended to each bucket in
// its declared order. Index is immutable once built; reload swaps in a
// freshly built Index rather than mutating an existing one.
type Index struct {
	byPoint map[hookpoint.Point][]config.Rule
}

// Build indexes cfg's rules. cfg is assumed to have already passed
// config.Validate.
func Build(cfg *config.Config) *Index {
	idx := &Index{byPoint: make(map[hookpoint.Point][]config.Rule)}
	for _, rule := range cfg.Hooks {
		for _, p := range rule.Point {
			idx.byPoint[p] = append(idx.byPoint[p], rule)
		}
	}
	return idx
}

// Lookup returns the ordered rule list bound to point. The returned
// slice must not be mutated by callers.
func (idx *Index) Lookup(point hookpoint.Point) []config.Rule {
	if idx == nil {
		return nil
	}
	return idx.byPoint[point]
}
