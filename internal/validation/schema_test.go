package validation

import (
	"strings"
	"testing"
)

func TestSchema_ValidData(t *testing.T) {
	schema := Schema{
		RequiredFields: []string{"name", "version"},
		OptionalFields: []string{"description"},
		AllowedValues:  map[string][]string{"status": {"active", "inactive"}},
	}

	errs, warns := schema.ValidateData(map[string]any{
		"name":    "test",
		"version": "1.0",
		"status":  "active",
	})

	if len(errs) != 0 {
		t.Errorf("expected no errors, got: %v", errs)
	}
	if len(warns) != 0 {
		t.Errorf("expected no warnings, got: %v", warns)
	}
}

func TestSchema_MissingRequiredField(t *testing.T) {
	schema := Schema{RequiredFields: []string{"name", "version"}}

	errs, _ := schema.ValidateData(map[string]any{"name": "test"})

	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0], "version") {
		t.Errorf("error should name the missing field, got: %s", errs[0])
	}
}

func TestSchema_EmptyValuesCountAsMissing(t *testing.T) {
	schema := Schema{RequiredFields: []string{"field"}}

	tests := []struct {
		name  string
		value any
	}{
		{name: "nil", value: nil},
		{name: "empty string", value: ""},
		{name: "whitespace string", value: "   "},
		{name: "empty array", value: []any{}},
		{name: "empty object", value: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, _ := schema.ValidateData(map[string]any{"field": tt.value})
			if len(errs) != 1 {
				t.Errorf("expected 1 error for %s value, got %d: %v", tt.name, len(errs), errs)
			}
		})
	}
}

func TestSchema_UnrecognizedFieldIsWarning(t *testing.T) {
	schema := Schema{
		RequiredFields: []string{"name"},
		OptionalFields: []string{"description"},
	}

	errs, warns := schema.ValidateData(map[string]any{
		"name":   "test",
		"extra":  "value",
		"zextra": "value",
	})

	if len(errs) != 0 {
		t.Errorf("unknown fields must not be errors, got: %v", errs)
	}
	if len(warns) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warns), warns)
	}
	if !strings.Contains(warns[0], "extra") || !strings.Contains(warns[1], "zextra") {
		t.Errorf("warnings should be sorted by field name, got: %v", warns)
	}
}

func TestSchema_DisallowedValue(t *testing.T) {
	schema := Schema{
		RequiredFields: []string{"status"},
		AllowedValues:  map[string][]string{"status": {"active", "inactive"}},
	}

	errs, _ := schema.ValidateData(map[string]any{"status": "paused"})

	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	for _, want := range []string{"status", "paused", "active"} {
		if !strings.Contains(errs[0], want) {
			t.Errorf("error should mention %q, got: %s", want, errs[0])
		}
	}
}

func TestSchema_RequiredErrorsPrecedeAllowedValueErrors(t *testing.T) {
	schema := Schema{
		RequiredFields: []string{"name", "status"},
		AllowedValues:  map[string][]string{"status": {"active"}},
	}

	errs, _ := schema.ValidateData(map[string]any{"status": "paused"})

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0], "missing required field: name") {
		t.Errorf("missing-required errors must come first, got: %v", errs)
	}
	if !strings.Contains(errs[1], "invalid value") {
		t.Errorf("allowed-value errors must come second, got: %v", errs)
	}
}

func TestSchema_AllowedValueCheckSkipsAbsentFields(t *testing.T) {
	schema := Schema{
		OptionalFields: []string{"status"},
		AllowedValues:  map[string][]string{"status": {"active"}},
	}

	errs, warns := schema.ValidateData(map[string]any{})
	if len(errs) != 0 || len(warns) != 0 {
		t.Errorf("absent optional enum field should produce nothing, got errs=%v warns=%v", errs, warns)
	}
}
