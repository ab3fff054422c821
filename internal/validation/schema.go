package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Schema is a declarative rule set for a flat JSON mapping: fields that
// must be present and non-empty, fields that are allowed, and per-field
// allowed value sets. Stateless and reusable across ValidateData calls.
type Schema struct {
	RequiredFields []string            // must be present and non-empty
	OptionalFields []string            // allowed but not mandatory
	AllowedValues  map[string][]string // field name -> valid values
}

// ValidateData checks a parsed JSON mapping against the schema. Errors are
// blocking, warnings are advisory. Output order is stable regardless of map
// iteration order: missing-required errors first (declaration order), then
// unrecognized-field warnings, then allowed-value errors.
func (s *Schema) ValidateData(data map[string]any) (errs, warns []string) {
	for _, field := range s.RequiredFields {
		value, ok := data[field]
		if !ok || isEmptyValue(value) {
			errs = append(errs, fmt.Sprintf("missing required field: %s", field))
		}
	}

	// Unknown fields are tolerated, not rejected, so evolving artifact
	// formats keep validating. Sorted for deterministic output.
	known := make(map[string]bool, len(s.RequiredFields)+len(s.OptionalFields))
	for _, field := range s.RequiredFields {
		known[field] = true
	}
	for _, field := range s.OptionalFields {
		known[field] = true
	}
	var unknown []string
	for field := range data {
		if !known[field] {
			unknown = append(unknown, field)
		}
	}
	sort.Strings(unknown)
	for _, field := range unknown {
		warns = append(warns, fmt.Sprintf("unrecognized field: %s", field))
	}

	var enumFields []string
	for field := range s.AllowedValues {
		if _, ok := data[field]; ok {
			enumFields = append(enumFields, field)
		}
	}
	sort.Strings(enumFields)
	for _, field := range enumFields {
		allowed := s.AllowedValues[field]
		actual := fmt.Sprintf("%v", data[field])
		if !contains(allowed, actual) {
			errs = append(errs, fmt.Sprintf("invalid value for field %s: %q (allowed: %s)",
				field, actual, strings.Join(allowed, ", ")))
		}
	}

	return errs, warns
}

// isEmptyValue reports whether a required field's value counts as absent:
// nil, empty string, empty array, or empty object.
func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
