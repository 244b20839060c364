package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the policy document at path: it decodes
// strictly, merges defaults into every rule (rule fields win), normalizes
// each rule's point into a slice, and runs Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses raw YAML bytes into a validated Config. It is the
// in-memory counterpart to Load, used by tests and by hosts that already
// hold the document in memory.
func Decode(data []byte) (*Config, error) {
	cfg, err := decodeStrict(data)
	if err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeStrict(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: parsing document: %w", err)
	}
	if err := decoder.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("config: expected a single YAML document")
	}
	return &cfg, nil
}

// applyDefaults shallow-merges Config.Defaults into every rule; fields
// already set on the rule are left untouched.
func applyDefaults(cfg *Config) {
	for i := range cfg.Hooks {
		r := &cfg.Hooks[i]
		if r.Model == "" && cfg.Defaults.Model != "" {
			r.Model = cfg.Defaults.Model
		}
		if r.OnFailure == nil && cfg.Defaults.OnFailure != nil {
			merged := *cfg.Defaults.OnFailure
			r.OnFailure = &merged
		}
	}
}
