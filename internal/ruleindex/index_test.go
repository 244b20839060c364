package ruleindex

import (
	"testing"

	"github.com/hookgate/hookgate/internal/config"
)

func TestBuildPreservesDeclarationOrder(t *testing.T) {
	cfg := &config.Config{Hooks: []config.Rule{
		{Name: "first", Point: config.RulePoints{"turn:post"}, Action: config.ActionLog, Target: "/t/a"},
		{Name: "second", Point: config.RulePoints{"turn:post"}, Action: config.ActionLog, Target: "/t/b"},
	}}
	idx := Build(cfg)
	rules := idx.Lookup("turn:post")
	if len(rules) != 2 || rules[0].Name != "first" || rules[1].Name != "second" {
		t.Fatalf("order not preserved: %+v", rules)
	}
}

func TestBuildFansOutMultiPointRule(t *testing.T) {
	cfg := &config.Config{Hooks: []config.Rule{
		{Name: "both", Point: config.RulePoints{"turn:pre", "turn:post"}, Action: config.ActionAllow},
	}}
	idx := Build(cfg)
	if len(idx.Lookup("turn:pre")) != 1 || len(idx.Lookup("turn:post")) != 1 {
		t.Fatalf("expected rule fanned out to both buckets")
	}
}

func TestLookupMissingPointReturnsEmpty(t *testing.T) {
	idx := Build(&config.Config{})
	if got := idx.Lookup("turn:pre"); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}
