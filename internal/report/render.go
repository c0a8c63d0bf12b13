package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

var headers = []string{"Language", "Files", "Size", "Lines", "Blank", "Comment", "Code"}

// Styles holds the table styles
type Styles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Number lipgloss.Style
	Total  lipgloss.Style
	Border lipgloss.Style
	Footer lipgloss.Style
}

// NewStyles returns the default table styles. Without color the styles only
// pad cells.
func NewStyles(color bool) Styles {
	s := Styles{
		Header: lipgloss.NewStyle().Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Number: lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		Total:  lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		Border: lipgloss.NewStyle(),
		Footer: lipgloss.NewStyle(),
	}
	if color {
		s.Header = s.Header.Bold(true).Foreground(lipgloss.Color("99"))
		s.Total = s.Total.Bold(true)
		s.Border = s.Border.Foreground(lipgloss.Color("241"))
		s.Footer = s.Footer.Faint(true)
	}
	return s
}

// Render draws the summary as a table followed by the ignored-file count
func Render(s Summary, styles Styles) string {
	rows := make([][]string, 0, len(s.Languages)+1)
	for _, t := range s.Languages {
		rows = append(rows, row(t.Language, t))
	}
	rows = append(rows, row("Total", s.Total))
	totalRow := len(rows) - 1

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(r, col int) lipgloss.Style {
			switch {
			case r == table.HeaderRow:
				return styles.Header
			case r == totalRow && col > 0:
				return styles.Total
			case r == totalRow:
				return styles.Total.Align(lipgloss.Left)
			case col == 0:
				return styles.Cell
			default:
				return styles.Number
			}
		})

	var b strings.Builder
	b.WriteString(tbl.String())
	b.WriteString("\n")
	b.WriteString(styles.Footer.Render(fmt.Sprintf("%d files processed, %d ignored", s.Total.Files, s.Ignored)))
	b.WriteString("\n")
	return b.String()
}

func row(name string, t Totals) []string {
	return []string{
		name,
		strconv.Itoa(t.Files),
		humanize.Bytes(uint64(t.Size)),
		humanize.Comma(int64(t.Lines)),
		humanize.Comma(int64(t.Blank)),
		humanize.Comma(int64(t.Comment)),
		humanize.Comma(int64(t.Code)),
	}
}

// RenderJSON encodes the summary as indented JSON
func RenderJSON(s Summary) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}
	return string(data) + "\n", nil
}
