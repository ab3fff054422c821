package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/speccheck/internal/config"
	"github.com/ariel-frischer/speccheck/internal/progress"
	"github.com/ariel-frischer/speccheck/internal/validation"
)

var validateJSONFlag bool

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a spec bundle directory",
	Long: `Validate a spec bundle directory against the artifact schemas.

The directory is expected to contain three artifacts:
  context.json             - task context (requires task_description)
  spec.md                  - specification document with required sections
  implementation_plan.json - phased plan with subtasks

Checks run in fixed order: prereqs, context, spec, plan. A failing check
never stops the rest, so one run surfaces every independent problem.

Exit Codes:
  0 - Success (all checkpoints valid)
  1 - Validation failed
  3 - Invalid arguments`,
	Example: `  # Validate the current directory
  speccheck validate

  # Validate a specific bundle
  speccheck validate specs/001-auth

  # Machine-readable summary for CI
  speccheck validate specs/001-auth --json`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runValidateCommand(dir, configPath, validateJSONFlag, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	validateCmd.GroupID = GroupValidation
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateJSONFlag, "json", false, "Output the summary as JSON")
}

// runValidateCommand executes the validate command.
func runValidateCommand(dir, configPath string, asJSON bool, out, errOut io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	info, err := os.Stat(dir)
	if err != nil {
		fmt.Fprintf(errOut, "Error: directory not found: %s\n", dir)
		return NewExitError(ExitInvalidArguments)
	}
	if !info.IsDir() {
		fmt.Fprintf(errOut, "Error: path is not a directory: %s\n", dir)
		return NewExitError(ExitInvalidArguments)
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	validator := validation.NewFromOptions(dir, cfg.ValidatorOptions())

	display := progress.NewDisplay(progress.DetectTerminalCapabilities())
	display.Start(fmt.Sprintf("Validating %s...", dir))
	results := validator.ValidateAll()
	display.Stop()

	summary := validation.SummarizeResults(results)

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			fmt.Fprintf(errOut, "Error encoding summary: %v\n", err)
			return NewExitError(ExitValidationFailed)
		}
	} else {
		formatSummary(summary, results, dir, out, errOut)
	}

	if !summary.AllValid {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// formatSummary renders the per-checkpoint results and totals.
func formatSummary(summary validation.Summary, results []validation.Result, dir string, out, errOut io.Writer) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, r := range results {
		if r.Valid {
			fmt.Fprintf(out, "%s %s\n", green("✓"), r.Checkpoint)
		} else {
			fmt.Fprintf(out, "%s %s\n", red("✗"), r.Checkpoint)
		}
		for _, e := range r.Errors {
			fmt.Fprintf(out, "    %s %s\n", red("error:"), e)
		}
		for _, w := range r.Warnings {
			fmt.Fprintf(out, "    %s %s\n", yellow("warning:"), w)
		}
	}

	fmt.Fprintln(out)
	if summary.AllValid {
		fmt.Fprintf(out, "%s %s is valid", green("✓"), dir)
	} else {
		fmt.Fprintf(out, "%s %s has %d error(s)", red("✗"), dir, summary.TotalErrors)
	}
	if summary.TotalWarnings > 0 {
		fmt.Fprintf(out, ", %d warning(s)", summary.TotalWarnings)
	}
	fmt.Fprintln(out)
}
