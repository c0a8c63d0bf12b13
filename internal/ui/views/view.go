package views

import (
	"fmt"
	"strings"

	"linescope/internal/domain"
	"linescope/internal/navigator"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width   int
	Height  int
	Query   string
	Matches int
	Results []domain.SearchResult
	State   navigator.State
	Status  string // last error, shown until the next key
	Help    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render produces the complete frame
func (r *Renderer) Render(vs ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("linescope"))
	b.WriteString("\n")
	b.WriteString(r.statusLine(vs))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Number of times %q was found: %s\n",
		vs.Query, r.styles.Count.Render(fmt.Sprint(vs.Matches))))

	if composing := vs.State.Composing(); composing != 0 {
		b.WriteString(r.styles.Composing.Render(fmt.Sprintf("> %d", composing)))
		b.WriteString("\n")
	}
	if vs.Status != "" {
		b.WriteString(r.styles.StatusError.Render(vs.Status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	lines := r.entries(vs)
	if limit := r.listHeight(vs); limit > 0 && len(lines) > limit {
		hidden := len(lines) - limit
		lines = append(lines[:limit], r.styles.Dim.Render(fmt.Sprintf("… %d more, type digits to narrow", hidden)))
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if vs.Help != "" {
		b.WriteString(r.styles.Help.Render(vs.Help))
	}
	return b.String()
}

func (r *Renderer) statusLine(vs ViewState) string {
	if vs.State.FileSelected {
		path := vs.Results[vs.State.FileIndex-1].Path
		return fmt.Sprintf("The file %s is selected. Type a match number and press enter to open it",
			r.styles.Selected.Render(path))
	}
	return "No file is selected. Press " + r.styles.Prompt.Render("enter") + " to select a file"
}

// entries lists the files, or the matches of the selected file, narrowed
// to the positions starting with the digits typed so far
func (r *Renderer) entries(vs ViewState) []string {
	var out []string
	if !vs.State.FileSelected {
		for _, pos := range navigator.Visible(len(vs.Results), vs.State.FileIndex) {
			res := vs.Results[pos-1]
			out = append(out, fmt.Sprintf("%s) %s %s",
				r.styles.Index.Render(fmt.Sprint(pos)),
				res.Path,
				r.styles.Dim.Render(plural(len(res.Matches), "match", "matches"))))
		}
		return out
	}

	matches := vs.Results[vs.State.FileIndex-1].Matches
	for _, pos := range navigator.Visible(len(matches), vs.State.LineIndex) {
		m := matches[pos-1]
		out = append(out, fmt.Sprintf("%s) %s %s",
			r.styles.Index.Render(fmt.Sprint(pos)),
			r.styles.LineNumber.Render(fmt.Sprintf("[%d]", m.Line)),
			m.Text))
	}
	return out
}

// listHeight is the number of entries that fit below the header, 0 when the
// terminal size is unknown
func (r *Renderer) listHeight(vs ViewState) int {
	if vs.Height <= 0 {
		return 0
	}
	const chrome = 10
	if vs.Height <= chrome {
		return 1
	}
	return vs.Height - chrome
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("(%d %s)", n, one)
	}
	return fmt.Sprintf("(%d %s)", n, many)
}
