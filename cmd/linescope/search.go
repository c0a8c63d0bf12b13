package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linescope/internal/eventbus"
	"linescope/internal/search"
	"linescope/internal/ui"
)

var (
	searchTODO  bool
	searchPlain bool
	todoPlain   bool
)

var searchCmd = &cobra.Command{
	Use:     "search <pattern> <path>...",
	Aliases: []string{"s"},
	Short:   "Search files for a literal pattern and open a match in $EDITOR",
	Long: `Search the given files and directories for every line containing pattern.

On a terminal the matches are shown in a navigator: type a file number and
press enter, then a line number and press enter to open that line in $EDITOR.
Backspace erases the last digit, q quits. When stdout is not a terminal, or
with --plain, matches are printed as path:line: text.

With --todo no pattern is given and the search looks for TODO comments.

Examples:
  linescope search "os.Exit" .
  linescope search --plain unwrap src | head
  linescope search --todo internal`,
	Args: func(cmd *cobra.Command, args []string) error {
		if searchTODO {
			return cobra.MinimumNArgs(1)(cmd, args)
		}
		return cobra.MinimumNArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if searchTODO {
			return runSearch(cmd, search.TODO(), args, searchPlain)
		}
		return runSearch(cmd, search.Literal(args[0]), args[1:], searchPlain)
	},
}

var todoCmd = &cobra.Command{
	Use:     "todo <path>...",
	Aliases: []string{"t"},
	Short:   "List TODO comments and open one in $EDITOR",
	Long: `Find comment lines of the form "<comment marker> TODO" in files of a known
language. Files of unknown languages are skipped.

Examples:
  linescope todo .
  linescope todo --plain internal cmd`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, search.TODO(), args, todoPlain)
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchTODO, "todo", false, "Search for TODO comments instead of a pattern")
	searchCmd.Flags().BoolVar(&searchPlain, "plain", false, "Print matches instead of opening the navigator")
	todoCmd.Flags().BoolVar(&todoPlain, "plain", false, "Print matches instead of opening the navigator")
	rootCmd.AddCommand(searchCmd, todoCmd)
}

func runSearch(cmd *cobra.Command, q search.Query, paths []string, plain bool) error {
	files, err := collectFiles(cmd, paths)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "Searching for %s\n", q)

	bus := eventbus.New()
	stopProgress := showProgress(bus, stderr, isTerminal(os.Stderr))
	outcome := newScanner(cmd, bus).Search(files, q)
	bus.Close()
	stopProgress()

	logger.Info("search finished", "query", q.String(), "files", len(outcome.Results), "matches", outcome.Matches, "ignored", outcome.Ignored)

	if len(outcome.Results) == 0 {
		fmt.Fprintln(stderr, "No match found")
		return nil
	}

	if plain || !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
		return ui.PrintPlain(cmd.OutOrStdout(), outcome.Results)
	}

	result, err := ui.Run(outcome.Results, ui.Options{
		Query:   q.String(),
		Matches: outcome.Matches,
		Editor:  ui.ResolveEditor(os.Getenv, cfg.Editor),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	switch {
	case errors.Is(result.Err, ui.ErrEditorNotConfigured):
		fmt.Fprintf(stderr, "The $%s environment variable is not set.\n", ui.EditorEnv)
		fmt.Fprintf(stderr, "%s:%d\n", result.Path, result.Line)
	case result.Dispatched:
		logger.Info("editor closed", "path", result.Path, "line", result.Line)
	}
	return nil
}
