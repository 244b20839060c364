package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hookgate/hookgate/internal/hookpoint"
)

// Action is the closed set of side effects a rule may dispatch to.
type Action string

const (
	ActionBlock           Action = "block"
	ActionAllow           Action = "allow"
	ActionLog             Action = "log"
	ActionInjectContext   Action = "inject_context"
	ActionSummarizeAndLog Action = "summarize_and_log"
	ActionExecScript      Action = "exec_script"
)

var knownActions = map[Action]bool{
	ActionBlock:           true,
	ActionAllow:           true,
	ActionLog:             true,
	ActionInjectContext:   true,
	ActionSummarizeAndLog: true,
	ActionExecScript:      true,
}

// FailureAction governs how the pipeline resolves a side-effect failure.
type FailureAction string

const (
	FailureContinue FailureAction = "continue"
	FailureBlock    FailureAction = "block"
	FailureRetry    FailureAction = "retry"
)

var knownFailureActions = map[FailureAction]bool{
	FailureContinue: true,
	FailureBlock:    true,
	FailureRetry:    true,
}

// OnFailure describes what happens when an action's side effect fails.
type OnFailure struct {
	Action     FailureAction `yaml:"action"`
	NotifyUser bool          `yaml:"notifyUser"`
	Message    string        `yaml:"message"`
	MaxRetries int           `yaml:"maxRetries"`
}

// Match is the set of optional predicates a rule's event must satisfy.
// All present fields are ANDed; absent fields contribute nothing.
type Match struct {
	Tool           *string `yaml:"tool"`
	CommandPattern *string `yaml:"commandPattern"`
	TopicID        *int    `yaml:"topicId"`
	IsSubAgent     *bool   `yaml:"isSubAgent"`
	SessionPattern *string `yaml:"sessionPattern"`
}

// RulePoints decodes either a single hook point or an array of them into
// a normalized slice, per the Config Loader's point-normalization rule.
type RulePoints []hookpoint.Point

// UnmarshalYAML accepts both a scalar point and a sequence of points.
func (p *RulePoints) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*p = RulePoints{hookpoint.Point(single)}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		out := make(RulePoints, 0, len(many))
		for _, s := range many {
			out = append(out, hookpoint.Point(s))
		}
		*p = out
		return nil
	default:
		return fmt.Errorf("point must be a string or a list of strings")
	}
}

// Rule is a single authored policy entry.
type Rule struct {
	Name    string     `yaml:"name"`
	Point   RulePoints `yaml:"point"`
	Match   *Match     `yaml:"match"`
	Action  Action     `yaml:"action"`
	Target  string     `yaml:"target"`
	Model   string     `yaml:"model"`
	Enabled *bool      `yaml:"enabled"`

	OnFailure *OnFailure `yaml:"onFailure"`
}

// IsEnabled reports whether the rule is enabled, defaulting to true.
func (r Rule) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Defaults holds shallow, rule-field-wins defaults applied at load time.
type Defaults struct {
	Model     string     `yaml:"model"`
	OnFailure *OnFailure `yaml:"onFailure"`
}

// Config is the top-level parsed and validated policy document.
type Config struct {
	Version  string   `yaml:"version"`
	Defaults Defaults `yaml:"defaults"`
	Hooks    []Rule   `yaml:"hooks"`
}
