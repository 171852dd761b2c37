package domain

import "fmt"

// Engine applies the validation rule set to raw document bytes. It performs
// no I/O; callers attach file paths and feed it bytes.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the given rules, or DefaultRules when
// none are given.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// Rules returns the engine's rule set in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Validate parses raw bytes and runs every enabled rule, accumulating all
// violations. A parse failure yields exactly one syntax violation and skips
// the structural rules, since parsing is a precondition for everything else.
func (e *Engine) Validate(raw []byte) []Violation {
	doc, err := Parse(raw)
	if err != nil {
		return []Violation{{
			Category: CategorySyntax,
			Message:  fmt.Sprintf("Invalid JSON: %v", err),
		}}
	}

	var violations []Violation
	for _, rule := range e.rules {
		if !rule.Enabled {
			continue
		}
		violations = append(violations, rule.Check(doc)...)
	}
	return violations
}

// ValidateFile validates raw bytes and attaches the caller's path.
func (e *Engine) ValidateFile(path string, raw []byte) FileResult {
	return FileResult{File: path, Violations: e.Validate(raw)}
}
