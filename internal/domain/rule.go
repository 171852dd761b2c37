package domain

// CheckFunc inspects one parsed document and returns its violations in a
// stable order. Check functions are pure: no I/O, no shared state.
type CheckFunc func(doc Value) []Violation

// Rule is one independent validation rule. Rules never suppress each other:
// every enabled rule runs against every document that parsed.
type Rule struct {
	Name     string
	Category string
	Enabled  bool
	Check    CheckFunc
}

// Rule names, in evaluation order.
const (
	RuleRequiredFields         = "required_fields"
	RuleMetadataFields         = "metadata_fields"
	RuleTimestampFormat        = "timestamp_format"
	RuleStringsShape           = "strings_shape"
	RulePlaceholderConsistency = "placeholder_consistency"
	RuleKeyNaming              = "key_naming"
)

// DefaultRules returns the full rule set in evaluation order. Disabled rules
// are part of the set so configuration can toggle them without changing the
// engine.
func DefaultRules() []Rule {
	return []Rule{
		{Name: RuleRequiredFields, Category: CategorySchema, Enabled: true, Check: checkRequiredFields},
		{Name: RuleMetadataFields, Category: CategorySchema, Enabled: true, Check: checkMetadataFields},
		{Name: RuleTimestampFormat, Category: CategoryFormat, Enabled: true, Check: checkTimestampFormat},
		{Name: RuleStringsShape, Category: CategoryFormat, Enabled: true, Check: checkStringsShape},
		{Name: RulePlaceholderConsistency, Category: CategoryFormat, Enabled: false, Check: checkPlaceholderConsistency},
		{Name: RuleKeyNaming, Category: CategoryFormat, Enabled: false, Check: checkKeyNaming},
	}
}

// RuleNames returns the names of all known rules in evaluation order.
func RuleNames() []string {
	rules := DefaultRules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}
