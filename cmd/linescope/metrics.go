package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linescope/internal/eventbus"
	"linescope/internal/pager"
	"linescope/internal/report"
)

var (
	metricsFormat string
	metricsPager  bool
)

var metricsCmd = &cobra.Command{
	Use:     "metrics <path>...",
	Aliases: []string{"m"},
	Short:   "Count code, comment and blank lines per language",
	Long: `Classify every line of the given files and directories and print the
totals per language. Directories are walked recursively; hidden entries are
skipped. Binary, unreadable and ignored files are counted but not classified.

Examples:
  linescope metrics .
  linescope metrics --format json cmd internal
  linescope metrics --pager ~/src/project`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMetrics,
}

func init() {
	metricsCmd.Flags().StringVar(&metricsFormat, "format", "table", "Output format (table, json)")
	metricsCmd.Flags().BoolVar(&metricsPager, "pager", false, "Show the table in a pager")
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	if metricsFormat != "table" && metricsFormat != "json" {
		return fmt.Errorf("unknown format %q, expected table or json", metricsFormat)
	}

	files, err := collectFiles(cmd, args)
	if err != nil {
		return err
	}

	bus := eventbus.New()
	stopProgress := showProgress(bus, cmd.ErrOrStderr(), isTerminal(os.Stderr))
	result := newScanner(cmd, bus).Metrics(files)
	bus.Close()
	stopProgress()

	summary := report.Fold(result.Files, result.Ignored)
	logger.Info("metrics computed", "files", summary.Total.Files, "ignored", summary.Ignored, "languages", len(summary.Languages))

	out := cmd.OutOrStdout()
	if metricsFormat == "json" {
		data, err := report.RenderJSON(summary)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, data)
		return err
	}

	interactive := isTerminal(os.Stdout)
	table := report.Render(summary, report.NewStyles(interactive && colorEnabled()))
	if metricsPager && interactive {
		return pager.Show(table)
	}
	_, err = fmt.Fprint(out, table)
	return err
}
