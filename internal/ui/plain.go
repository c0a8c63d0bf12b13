package ui

import (
	"fmt"
	"io"

	"linescope/internal/domain"
)

// PrintPlain writes results as `path:line: text`, one match per line, for
// output that is not a terminal
func PrintPlain(w io.Writer, results []domain.SearchResult) error {
	for _, r := range results {
		for _, m := range r.Matches {
			if _, err := fmt.Fprintf(w, "%s:%d: %s\n", r.Path, m.Line, m.Text); err != nil {
				return err
			}
		}
	}
	return nil
}
