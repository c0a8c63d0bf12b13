package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the navigator
type Styles struct {
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	Selected    lipgloss.Style
	Count       lipgloss.Style
	Index       lipgloss.Style
	LineNumber  lipgloss.Style
	Dim         lipgloss.Style
	Composing   lipgloss.Style
	Help        lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		Count:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		Index:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		LineNumber:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Composing:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Help:        lipgloss.NewStyle().Faint(true).MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
