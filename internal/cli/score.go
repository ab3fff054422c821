package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/speccheck/internal/config"
	"github.com/ariel-frischer/speccheck/internal/quality"
)

var scoreFailOnFlag string

var scoreCmd = &cobra.Command{
	Use:   "score <violations.json>",
	Short: "Score a violations file and evaluate a severity gate",
	Long: `Score a violations file and evaluate a severity gate.

The input is a JSON array of violations as emitted by a linter:

  [
    {"rule_id": "R001", "message": "...", "file": "a.go", "line": 10, "severity": "medium"}
  ]

Severity weights: low=1, medium=2, high=5, critical=10. The score starts
at 100 and is clamped at 0. The gate fails when any violation's severity
is at or above the --fail-on threshold; gate comparison uses severity
ordering, not weights.

Exit Codes:
  0 - Gate passed
  1 - Gate failed
  3 - Invalid arguments or unreadable input`,
	Example: `  # Score with the configured gate (default: high)
  speccheck score violations.json

  # Fail the build on any medium or worse violation
  speccheck score violations.json --fail-on medium`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		return runScoreCommand(args[0], configPath, scoreFailOnFlag, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	scoreCmd.GroupID = GroupValidation
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scoreFailOnFlag, "fail-on", "", "Severity gate threshold: low, medium, high, critical (default from config)")
}

// violationInput is the wire format for one linter violation.
type violationInput struct {
	RuleID   string `json:"rule_id"`
	Message  string `json:"message"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Severity string `json:"severity"`
}

// runScoreCommand executes the score command.
func runScoreCommand(path, configPath, failOn string, out, errOut io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	if failOn == "" {
		failOn = cfg.FailOn
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "Error: cannot read %s: %v\n", path, err)
		return NewExitError(ExitInvalidArguments)
	}

	var inputs []violationInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		fmt.Fprintf(errOut, "Error: malformed violations file %s: %v\n", path, err)
		return NewExitError(ExitInvalidArguments)
	}

	analyzer := quality.NewAnalyzer()
	for i, v := range inputs {
		if _, err := analyzer.AddViolation(v.RuleID, v.Message, v.File, v.Line, v.Severity); err != nil {
			fmt.Fprintf(errOut, "Error: violation %d: %v\n", i, err)
			return NewExitError(ExitInvalidArguments)
		}
	}

	result := analyzer.Analyze()
	passed, err := analyzer.CheckGate(failOn)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	formatScore(result, failOn, passed, out)

	if !passed {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// formatScore renders the score, severity counts, and gate verdict.
func formatScore(result quality.Result, failOn string, passed bool, out io.Writer) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(out, "Score: %.1f / %.0f\n", result.OverallScore, quality.MaxScore)
	fmt.Fprintf(out, "Violations: %d\n", len(result.Violations))

	for _, sev := range []quality.Severity{quality.SeverityCritical, quality.SeverityHigh, quality.SeverityMedium, quality.SeverityLow} {
		if n := result.CountsBySeverity[sev]; n > 0 {
			fmt.Fprintf(out, "  %s: %d\n", sev, n)
		}
	}

	if passed {
		fmt.Fprintf(out, "%s gate passed (fail-on: %s)\n", green("✓"), failOn)
	} else {
		fmt.Fprintf(out, "%s gate failed (fail-on: %s)\n", red("✗"), failOn)
	}
}
