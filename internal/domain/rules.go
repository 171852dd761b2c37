package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

var requiredFields = []string{"version", "lastUpdated", "metadata", "strings"}

var requiredMetadataFields = []string{"locale", "name", "fallback"}

// Pattern only: wrong calendar values like 2024-13-45T99:99:99Z still pass.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

var (
	curlyPlaceholder   = regexp.MustCompile(`\{[^{}]*\}`)
	bracketPlaceholder = regexp.MustCompile(`\[[^\[\]]*\]`)
)

// checkRequiredFields verifies the fixed top-level fields. Each field is
// checked independently; a non-object top level means every field is absent.
func checkRequiredFields(doc Value) []Violation {
	obj := doc.Object()
	var violations []Violation
	for _, field := range requiredFields {
		if !obj.Has(field) {
			violations = append(violations, Violation{
				Category: CategorySchema,
				Message:  fmt.Sprintf("Required field %q is missing", field),
			})
		}
	}
	return violations
}

// checkMetadataFields verifies the required metadata subfields. A metadata
// value that is present but not an object skips the subfield checks.
func checkMetadataFields(doc Value) []Violation {
	meta, ok := doc.Object().Get("metadata")
	if !ok || !meta.IsObject() {
		return nil
	}

	var violations []Violation
	for _, field := range requiredMetadataFields {
		if !meta.Object().Has(field) {
			violations = append(violations, Violation{
				Category: CategorySchema,
				Message:  fmt.Sprintf("Required metadata field %q is missing", field),
			})
		}
	}
	return violations
}

// checkTimestampFormat verifies lastUpdated against the fixed ISO8601 shape.
// Absent lastUpdated is the required_fields rule's concern, not this one's.
func checkTimestampFormat(doc Value) []Violation {
	v, ok := doc.Object().Get("lastUpdated")
	if !ok {
		return nil
	}
	if v.Kind() == KindString && timestampPattern.MatchString(v.Text()) {
		return nil
	}
	return []Violation{{
		Category: CategoryFormat,
		Message:  "lastUpdated must be in ISO8601 format (YYYY-MM-DDThh:mm:ssZ)",
	}}
}

// checkStringsShape verifies the strings container and every entry in it.
// Entry checks never exit early: each offending value is reported.
func checkStringsShape(doc Value) []Violation {
	v, ok := doc.Object().Get("strings")
	if !ok {
		return nil
	}

	if !v.IsObject() {
		return []Violation{{Category: CategoryFormat, Message: "strings must be an object"}}
	}

	strs := v.Object()
	if strs.Len() == 0 {
		return []Violation{{Category: CategoryFormat, Message: "strings object cannot be empty"}}
	}

	var violations []Violation
	for _, key := range strs.Keys() {
		entry, _ := strs.Get(key)
		if entry.Kind() != KindString {
			violations = append(violations, Violation{
				Category: CategoryFormat,
				Message:  fmt.Sprintf("Value for key %q must be a string", key),
			})
		}
	}
	return violations
}

// checkPlaceholderConsistency flags string values mixing {name} and [name]
// placeholder styles. Disabled by default.
func checkPlaceholderConsistency(doc Value) []Violation {
	strs := stringsObject(doc)

	var violations []Violation
	for _, key := range strs.Keys() {
		entry, _ := strs.Get(key)
		if entry.Kind() != KindString {
			continue
		}
		if curlyPlaceholder.MatchString(entry.Text()) && bracketPlaceholder.MatchString(entry.Text()) {
			violations = append(violations, Violation{
				Category: CategoryFormat,
				Message:  fmt.Sprintf("Value for key %q mixes {placeholder} and [placeholder] styles", key),
			})
		}
	}
	return violations
}

// checkKeyNaming flags string keys that are not camelCase and suggests the
// camelCase form. Disabled by default.
func checkKeyNaming(doc Value) []Violation {
	strs := stringsObject(doc)

	var violations []Violation
	for _, key := range strs.Keys() {
		if isCamelCase(key) {
			continue
		}
		violations = append(violations, Violation{
			Category: CategoryFormat,
			Message:  fmt.Sprintf("Key %q should be camelCase (suggested: %q)", key, camelCaseForm(key)),
		})
	}
	return violations
}

// stringsObject returns the strings container when it is an object, or nil.
// Rules over individual entries leave container defects to strings_shape.
func stringsObject(doc Value) *Object {
	v, ok := doc.Object().Get("strings")
	if !ok || !v.IsObject() {
		return nil
	}
	return v.Object()
}

func isCamelCase(key string) bool {
	if key == "" {
		return false
	}
	first := []rune(key)[0]
	if !unicode.IsLower(first) {
		return false
	}
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// camelCaseForm rebuilds a key as camelCase from its words, dropping
// separators camelcase.Split returns as their own chunks.
func camelCaseForm(key string) string {
	var words []string
	for _, w := range camelcase.Split(key) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return key
	}

	out := strings.ToLower(words[0])
	for _, w := range words[1:] {
		out += strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return out
}
