package config

import (
	"fmt"
	"regexp"

	"github.com/hookgate/hookgate/internal/hookpoint"
)

// Validate checks version, every rule's point set, action, and
// action-dependent required fields, and compiles every commandPattern
// regex. It is run once by Decode/Load; Rule Index construction assumes
// its input has already passed Validate.
func Validate(cfg *Config) error {
	if cfg.Version != "1" {
		return newError(KindVersionMismatch, "", fmt.Sprintf("expected version \"1\", got %q", cfg.Version))
	}
	for _, r := range cfg.Hooks {
		if err := validateRule(r); err != nil {
			return err
		}
	}
	return nil
}

func validateRule(r Rule) error {
	if len(r.Point) == 0 {
		return newError(KindUnknownPoint, r.Name, "rule has no point")
	}
	for _, p := range r.Point {
		if !hookpoint.Known(p) {
			return newError(KindUnknownPoint, r.Name, fmt.Sprintf("unknown point %q", p))
		}
	}
	if !knownActions[r.Action] {
		return newError(KindUnknownAction, r.Name, fmt.Sprintf("unknown action %q", r.Action))
	}
	switch r.Action {
	case ActionSummarizeAndLog:
		if r.Model == "" {
			return newError(KindMissingModel, r.Name, "summarize_and_log requires model")
		}
		if r.Target == "" {
			return newError(KindMissingTarget, r.Name, "summarize_and_log requires target")
		}
	case ActionLog, ActionInjectContext:
		if r.Target == "" {
			return newError(KindMissingTarget, r.Name, string(r.Action)+" requires target")
		}
	case ActionExecScript:
		if r.Target == "" {
			return newError(KindMissingTarget, r.Name, "exec_script requires target")
		}
	}
	if r.Match != nil && r.Match.CommandPattern != nil {
		if _, err := regexp.Compile(*r.Match.CommandPattern); err != nil {
			return newError(KindBadRegex, r.Name, err.Error())
		}
	}
	if r.Match != nil && r.Match.SessionPattern != nil {
		if _, err := regexp.Compile(*r.Match.SessionPattern); err != nil {
			return newError(KindBadRegex, r.Name, err.Error())
		}
	}
	if r.OnFailure != nil {
		if r.OnFailure.Action != "" && !knownFailureActions[r.OnFailure.Action] {
			return newError(KindUnknownAction, r.Name, fmt.Sprintf("unknown onFailure action %q", r.OnFailure.Action))
		}
	}
	return nil
}
