// Package config loads speccheck configuration from global and local JSON
// files plus environment variables, with struct-level validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ariel-frischer/speccheck/internal/validation"
)

// Configuration holds the speccheck tool configuration.
type Configuration struct {
	MinContentLength    int      `koanf:"min_content_length" validate:"omitempty,min=1"`
	RequiredSections    []string `koanf:"required_sections"`
	RecommendedSections []string `koanf:"recommended_sections"`
	ContextRequired     []string `koanf:"context_required"`
	FailOn              string   `koanf:"fail_on" validate:"omitempty,oneof=low medium high critical"`
	NoColor             bool     `koanf:"no_color"`
}

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > local config > global config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".speccheck", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Environment variables win
	k.Load(env.Provider("SPECCHECK_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}

// ValidatorOptions converts the configuration into validation overrides.
// Unset fields stay zero so the validator falls back to its defaults.
func (c *Configuration) ValidatorOptions() validation.Options {
	opts := validation.Options{
		RequiredSections:    c.RequiredSections,
		RecommendedSections: c.RecommendedSections,
		MinContentLength:    c.MinContentLength,
	}
	if len(c.ContextRequired) > 0 {
		opts.ContextSchema = &validation.Schema{
			RequiredFields: c.ContextRequired,
			OptionalFields: validation.DefaultContextSchema.OptionalFields,
		}
	}
	return opts
}

// envTransform converts environment variable names to config keys.
// Example: SPECCHECK_MIN_CONTENT_LENGTH -> min_content_length
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "SPECCHECK_"))
}
