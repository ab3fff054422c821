package config

import "github.com/ariel-frischer/speccheck/internal/validation"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"min_content_length":   validation.DefaultMinContentLength,
		"required_sections":    []string(nil),
		"recommended_sections": []string(nil),
		"context_required":     []string(nil),
		"fail_on":              "high",
		"no_color":             false,
	}
}
