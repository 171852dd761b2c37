package domain

import (
	"fmt"
	"strings"
)

// Config holds project-level configuration loaded from .localelint.yaml.
type Config struct {
	Paths   []string    `yaml:"paths"    json:"paths,omitempty"`
	BaseRef string      `yaml:"base_ref" json:"base_ref,omitempty"`
	Rules   RuleToggles `yaml:"rules"    json:"rules,omitempty"`
}

// RuleToggles enables or disables rules by name on top of the defaults.
type RuleToggles struct {
	Enable  []string `yaml:"enable"  json:"enable,omitempty"`
	Disable []string `yaml:"disable" json:"disable,omitempty"`
}

// DefaultConfig returns the configuration used when no .localelint.yaml
// exists: validate everything under locales/ against the default rule set.
func DefaultConfig() Config {
	return Config{
		Paths:   []string{"locales"},
		BaseRef: "main",
	}
}

// Validate checks that enable/disable lists refer to known rules. Catches
// typos in the user's raw input before toggles are applied.
func (c Config) Validate() error {
	known := make(map[string]bool)
	for _, name := range RuleNames() {
		known[name] = true
	}

	for _, name := range c.Rules.Enable {
		if !known[name] {
			return fmt.Errorf("unknown rule %q in rules.enable (known rules: %s)",
				name, strings.Join(RuleNames(), ", "))
		}
	}
	for _, name := range c.Rules.Disable {
		if !known[name] {
			return fmt.Errorf("unknown rule %q in rules.disable (known rules: %s)",
				name, strings.Join(RuleNames(), ", "))
		}
	}
	return nil
}

// RuleSet returns the default rules with the config's toggles applied.
// Disable wins over enable for a rule named in both.
func (c Config) RuleSet() []Rule {
	enable := make(map[string]bool, len(c.Rules.Enable))
	for _, name := range c.Rules.Enable {
		enable[name] = true
	}
	disable := make(map[string]bool, len(c.Rules.Disable))
	for _, name := range c.Rules.Disable {
		disable[name] = true
	}

	rules := DefaultRules()
	for i := range rules {
		if enable[rules[i].Name] {
			rules[i].Enabled = true
		}
		if disable[rules[i].Name] {
			rules[i].Enabled = false
		}
	}
	return rules
}
