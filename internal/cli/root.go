// speccheck - Spec Bundle Validation
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/speccheck

// Package cli provides Cobra-based CLI commands for the speccheck artifact
// validation tool. It defines the directory validation command (validate),
// the quality scoring command (score), and utility commands (schema,
// version).
package cli

import (
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output
const (
	GroupValidation = "validation"
	GroupUtility    = "utility"
)

var rootCmd = &cobra.Command{
	Use:   "speccheck",
	Short: "speccheck spec bundle validation",
	Long: `speccheck spec bundle validation

Validates spec bundle directories (context.json, spec.md,
implementation_plan.json) against declarative schemas and scores
quality-metric violations for CI gates.`,
	Example: `  # Validate the spec bundle in the current directory
  speccheck validate .

  # Validate and emit the machine-readable summary
  speccheck validate specs/001-auth --json

  # Score a violations file and gate on high severity
  speccheck score violations.json --fail-on high

  # Show the default schema for an artifact
  speccheck schema plan`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupValidation, Title: "Validation:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupUtility, Title: "Utility:"})

	rootCmd.SetHelpCommandGroupID(GroupUtility)
	rootCmd.SetCompletionCommandGroupID(GroupUtility)

	rootCmd.PersistentFlags().StringP("config", "c", ".speccheck/config.json", "Path to config file")
}
