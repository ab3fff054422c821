package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/speccheck/internal/validation"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <context|plan|spec>",
	Short: "Print the default schema for an artifact",
	Long: `Print the default schema for an artifact.

Artifacts:
  context - context.json field schema
  plan    - implementation_plan.json field schema plus phase structure
  spec    - spec.md required and recommended sections`,
	Example: `  speccheck schema context
  speccheck schema plan
  speccheck schema spec`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchemaCommand(args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	schemaCmd.GroupID = GroupUtility
	rootCmd.AddCommand(schemaCmd)
}

// runSchemaCommand prints the requested default schema.
func runSchemaCommand(artifact string, out, errOut io.Writer) error {
	switch artifact {
	case "context":
		fmt.Fprintf(out, "Schema for %s\n", validation.ContextFileName)
		printFieldSchema(validation.DefaultContextSchema, out)
	case "plan":
		fmt.Fprintf(out, "Schema for %s\n", validation.PlanFileName)
		printFieldSchema(validation.DefaultPlanSchema, out)
		fmt.Fprintf(out, "\nPhase structure:\n")
		fmt.Fprintf(out, "  phases[].id: string (required, unique)\n")
		fmt.Fprintf(out, "  phases[].name: string (required)\n")
		fmt.Fprintf(out, "  phases[].subtasks: array (required, non-empty)\n")
		fmt.Fprintf(out, "  subtasks[].id: string (required)\n")
		fmt.Fprintf(out, "  subtasks[].description: string (required)\n")
		fmt.Fprintf(out, "  subtasks[].status: enum[%s] (required)\n", strings.Join(validation.PlanStatusValues, ", "))
	case "spec":
		fmt.Fprintf(out, "Sections for %s\n", validation.SpecFileName)
		fmt.Fprintf(out, "\nRequired:\n")
		for _, s := range validation.DefaultSpecRequiredSections {
			fmt.Fprintf(out, "  ## %s\n", s)
		}
		fmt.Fprintf(out, "\nRecommended:\n")
		for _, s := range validation.DefaultSpecRecommendedSections {
			fmt.Fprintf(out, "  ## %s\n", s)
		}
		fmt.Fprintf(out, "\nMinimum content length: %d bytes (warning below)\n", validation.DefaultMinContentLength)
	default:
		fmt.Fprintf(errOut, "Error: unknown artifact %q (valid: context, plan, spec)\n", artifact)
		return NewExitError(ExitInvalidArguments)
	}
	return nil
}

// printFieldSchema prints the required, optional, and enum fields of a
// flat schema.
func printFieldSchema(schema validation.Schema, out io.Writer) {
	fmt.Fprintf(out, "\nRequired fields:\n")
	for _, f := range schema.RequiredFields {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(schema.OptionalFields) > 0 {
		fmt.Fprintf(out, "\nOptional fields:\n")
		for _, f := range schema.OptionalFields {
			fmt.Fprintf(out, "  %s\n", f)
		}
	}
	for field, values := range schema.AllowedValues {
		fmt.Fprintf(out, "\n%s: enum[%s]\n", field, strings.Join(values, ", "))
	}
}
