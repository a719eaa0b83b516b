package cmd

import (
	"fmt"

	"github.com/hzerrad/cronic/internal/cronx"
	"github.com/hzerrad/cronic/internal/describe"
	"github.com/spf13/cobra"
)

var explainJSON bool

var explainCmd = &cobra.Command{
	Use:   "explain <cron-expression>",
	Short: "Explain a cron expression in plain English",
	Long: `Convert a cron expression to human-readable text.

Supports:
  - 5-to-7-field cron expressions (optional leading seconds, trailing year)
  - Cron aliases (@daily, @hourly, @weekly, @monthly, @yearly)
  - Case-insensitive English day and month names (MON, JAN)

Examples:
  cronic explain "0 0 * * *"
  cronic explain "*/15 9-17 * * 1-5"
  cronic explain "@daily" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().BoolVarP(&explainJSON, "json", "j", false, "Output as JSON")
}

// newExplainCommand creates a fresh explain command instance for testing
// This avoids state pollution between tests by creating isolated command instances
func newExplainCommand() *cobra.Command {
	var testJSON bool

	cmd := &cobra.Command{
		Use:   "explain <cron-expression>",
		Short: "Explain a cron expression in plain English",
		Long: `Convert a cron expression to human-readable text.

Supports:
  - 5-to-7-field cron expressions (optional leading seconds, trailing year)
  - Cron aliases (@daily, @hourly, @weekly, @monthly, @yearly)
  - Case-insensitive English day and month names (MON, JAN)

Examples:
  cronic explain "0 0 * * *"
  cronic explain "*/15 9-17 * * 1-5"
  cronic explain "@daily" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expression := args[0]

			pattern, err := cronx.NewParserWithLocale(GetLocale()).Parse(expression)
			if err != nil {
				return fmt.Errorf("failed to parse expression: %w", err)
			}

			description := describe.NewHumanizer(GetLocale()).Describe(pattern)

			if testJSON {
				return outputJSON(cmd, map[string]string{
					"expression":  expression,
					"description": description,
				})
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), description)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&testJSON, "json", "j", false, "Output as JSON")

	return cmd
}

func runExplain(cmd *cobra.Command, args []string) error {
	expression := args[0]

	pattern, err := cronx.NewParserWithLocale(GetLocale()).Parse(expression)
	if err != nil {
		return fmt.Errorf("failed to parse expression: %w", err)
	}

	description := describe.NewHumanizer(GetLocale()).Describe(pattern)

	if explainJSON {
		return outputJSON(cmd, map[string]string{
			"expression":  expression,
			"description": description,
		})
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), description)
	return nil
}
