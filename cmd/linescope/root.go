package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"linescope/internal/config"
	"linescope/internal/discovery"
	"linescope/internal/eventbus"
	"linescope/internal/logging"
	"linescope/internal/scan"
)

var (
	configFlag   string
	logFileFlag  string
	logLevelFlag string
	workersFlag  int

	cfg       = config.DefaultConfig()
	configSvc config.ConfigService
	logger    = slog.New(slog.DiscardHandler)
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "linescope",
	Short: "Count code, comment and blank lines, and search source trees",
	Long: `linescope classifies every line of a source tree as code, comment or blank
and reports the totals per language. It can also search the tree for a
literal pattern or for TODO comments and open a chosen match in $EDITOR.

Examples:
  linescope metrics ./src
  linescope metrics --format json .
  linescope search "panic(" ./internal
  linescope todo .`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: $XDG_CONFIG_HOME/linescope/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "Write logs to this file (overrides log_file)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&workersFlag, "workers", 0, "Files processed in parallel (default: number of CPUs)")
}

// setup loads the configuration and opens the log file before any command runs
func setup(cmd *cobra.Command, args []string) error {
	configSvc = config.NewConfigServiceAt(configFlag)

	loaded, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg = loaded

	logFile := cfg.LogFile
	if cmd.Flags().Changed("log-file") {
		logFile = logFileFlag
	}
	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevelFlag
	}

	l, closer, err := logging.New(logFile, level)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	slog.SetDefault(logger)

	if !colorEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger.Debug("starting", "command", cmd.Name(), "config", configSvc.Path())
	return nil
}

// loadConfig reads the config file. An explicit --config must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return configSvc.LoadFromPath(configFlag)
	}
	return configSvc.Load()
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
	}
}

func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return cfg.UISettings.Color
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// workers resolves the pool size from the flag, then the config
func workers(cmd *cobra.Command) int {
	if cmd.Flags().Changed("workers") {
		return workersFlag
	}
	return cfg.Workers
}

func newScanner(cmd *cobra.Command, bus eventbus.EventBus) *scan.Scanner {
	return scan.New(scan.Options{
		Workers:          workers(cmd),
		IgnoreExtensions: cfg.IgnoreExtensions,
		Bus:              bus,
		Logger:           logger,
	})
}

// collectFiles expands path arguments, printing a line for every argument
// that was skipped
func collectFiles(cmd *cobra.Command, args []string) ([]string, error) {
	walker := discovery.NewWalker(logger)
	files, err := walker.Collect(args)
	for _, w := range walker.Warnings() {
		fmt.Fprintln(cmd.ErrOrStderr(), w)
	}
	if err != nil {
		return nil, err
	}
	logger.Info("collected files", "count", len(files))
	return files, nil
}
