package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hzerrad/cronic/internal/cronx"
	"github.com/hzerrad/cronic/internal/describe"
	"github.com/hzerrad/cronic/internal/iterator"
	"github.com/spf13/cobra"
)

// NextCommand wraps cobra.Command with next-specific functionality
type NextCommand struct {
	*cobra.Command
	count    int
	json     bool
	timezone string
}

// NextRun represents a single scheduled run time
type NextRun struct {
	Number    int    `json:"number"`
	Timestamp string `json:"timestamp"`
	Relative  string `json:"relative"`
}

// NextResult represents the complete output for the next command
type NextResult struct {
	Expression  string    `json:"expression"`
	Description string    `json:"description"`
	Timezone    string    `json:"timezone"`
	NextRuns    []NextRun `json:"next_runs"`
}

func init() {
	rootCmd.AddCommand(newNextCommand().Command)
}

// newNextCommand creates a fresh next command instance for testing
// This avoids state pollution between tests by creating isolated command instances
func newNextCommand() *NextCommand {
	nc := &NextCommand{}
	nc.Command = &cobra.Command{
		Args:  cobra.ExactArgs(1),
		RunE:  nc.runNext,
		Use:   "next <cron-expression>",
		Short: "Show next scheduled run times for a cron expression",
		Long: `Calculate and display the next scheduled run times for a cron expression.

This command helps you understand when a cron job will actually run in the future.
It shows the exact timestamps; with --json each entry also carries a relative time (e.g., "in 2 hours").

Supports:
  - Standard 5-field cron expressions (minute, hour, day-of-month, month, day-of-week)
  - Cron aliases (@daily, @hourly, @weekly, @monthly, @yearly)
  - Custom count with --count flag (1-100 runs, default: 10)
  - A specific --timezone to evaluate the schedule against
  - JSON output with --json flag for programmatic use

Examples:
  cronic next "*/15 * * * *"              # Next 10 runs (default)
  cronic next "@daily" --count 5          # Next 5 runs
  cronic next "0 9 * * 1-5" -c 3          # Next 3 runs (short flag)
  cronic next "0 14 * * *" --json         # JSON output
  cronic next "0 * * * *" --timezone UTC  # Evaluated in UTC`,
	}

	nc.Command.Flags().IntVarP(&nc.count, "count", "c", DefaultNextCount, "Number of runs to show (1-100)")
	nc.Command.Flags().BoolVarP(&nc.json, "json", "j", false, "Output as JSON")
	nc.Command.Flags().StringVar(&nc.timezone, "timezone", "", "IANA timezone to evaluate the schedule in (defaults to local time)")

	return nc
}

func (nc *NextCommand) runNext(_ *cobra.Command, args []string) error {
	expression := args[0]

	if nc.count < MinNextCount {
		return fmt.Errorf("count must be at least %d", MinNextCount)
	}
	if nc.count > MaxNextCount {
		return fmt.Errorf("count must be at most %d", MaxNextCount)
	}

	loc := time.Local
	if nc.timezone != "" {
		var err error
		loc, err = time.LoadLocation(nc.timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone %q: %w", nc.timezone, err)
		}
	}

	parser := cronx.NewParserWithLocale(GetLocale())
	pattern, err := parser.Parse(expression)
	if err != nil {
		return fmt.Errorf("failed to parse expression: %w", err)
	}

	now := time.Now().In(loc)
	engine := cronx.NewDefaultOccurrenceEngine()
	cursor := iterator.New(engine, pattern, now, true, iterator.Forward)
	times := cursor.Take(nc.count)
	if len(times) == 0 {
		return fmt.Errorf("failed to calculate next runs: %w", cronx.ErrTimeSearchLimitExceeded)
	}

	description := describe.NewHumanizer(GetLocale()).Describe(pattern)

	if nc.json {
		return nc.outputNextJSON(expression, description, times, now)
	}

	return nc.outputNextText(expression, description, times)
}

func (nc *NextCommand) outputNextText(expression, description string, times []time.Time) error {
	// Header with count
	runWord := "runs"
	if len(times) == 1 {
		runWord = "run"
	}
	_, _ = fmt.Fprintf(nc.OutOrStdout(), "Next %d %s for \"%s\" (%s):\n\n",
		len(times), runWord, expression, description)

	// List each run with timestamp
	for i, t := range times {
		_, _ = fmt.Fprintf(nc.OutOrStdout(), "%d. %s\n",
			i+1, t.Format("2006-01-02 15:04:05 MST"))
	}

	return nil
}

func (nc *NextCommand) outputNextJSON(expression, description string, times []time.Time, now time.Time) error {
	// Build next runs array
	runs := make([]NextRun, len(times))
	for i, t := range times {
		runs[i] = NextRun{
			Number:    i + 1,
			Timestamp: t.Format(time.RFC3339),
			Relative:  formatRelativeTime(now, t),
		}
	}

	// Build result structure
	result := NextResult{
		Expression:  expression,
		Description: description,
		Timezone:    times[0].Location().String(),
		NextRuns:    runs,
	}

	// Encode as JSON with indentation
	encoder := json.NewEncoder(nc.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// formatRelativeTime converts a duration between two times to a human-readable format.
func formatRelativeTime(from, to time.Time) string {
	duration := to.Sub(from)

	// Less than a minute
	if duration < time.Minute {
		return "in less than a minute"
	}

	// Minutes (less than an hour)
	if duration < time.Hour {
		minutes := int(duration.Minutes())
		if minutes == 1 {
			return "in 1 minute"
		}
		return fmt.Sprintf("in %d minutes", minutes)
	}

	// Hours (less than a day)
	if duration < 24*time.Hour {
		hours := int(duration.Hours())
		if hours == 1 {
			return "in 1 hour"
		}
		return fmt.Sprintf("in %d hours", hours)
	}

	// Days
	days := int(duration.Hours() / 24)
	if days == 1 {
		return "in 1 day"
	}
	return fmt.Sprintf("in %d days", days)
}
