// Package ui runs the interactive search result navigator.
package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"linescope/internal/domain"
	"linescope/internal/navigator"
	"linescope/internal/ui/views"
)

// Options configures the navigator
type Options struct {
	Query   string // shown in the header
	Matches int
	Editor  string // empty means not configured
	Logger  *slog.Logger
}

// Outcome is how the navigator ended
type Outcome struct {
	Dispatched bool // the editor was opened and exited cleanly
	Path       string
	Line       int
	Err        error // ErrEditorNotConfigured when dispatch could not proceed
}

// Model represents the UI state
type Model struct {
	results []domain.SearchResult
	limits  navigator.Limits
	state   navigator.State
	opts    Options
	logger  *slog.Logger

	width    int
	height   int
	status   string
	keys     keyMap
	help     help.Model
	renderer *views.Renderer
	outcome  Outcome
}

// NewModel creates a navigator over results
func NewModel(results []domain.SearchResult, opts Options) *Model {
	lim := navigator.Limits{Files: len(results), Lines: make([]int, len(results))}
	for i, r := range results {
		lim.Lines[i] = len(r.Matches)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Model{
		results:  results,
		limits:   lim,
		opts:     opts,
		logger:   logger,
		keys:     newKeyMap(),
		help:     help.New(),
		renderer: views.NewRenderer(views.NewStyles()),
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.status = ""
		var action navigator.Action
		m.state, action = navigator.Step(m.state, m.keys.event(msg), m.limits)
		switch action {
		case navigator.ActionQuit:
			return m, tea.Quit
		case navigator.ActionDispatch:
			return m, m.dispatch()
		}

	case editorFinishedMsg:
		if msg.err != nil {
			err := &EditorError{Editor: m.opts.Editor, Path: m.outcome.Path, Line: m.outcome.Line, Err: msg.err}
			m.logger.Warn("editor failed", "error", err)
			m.status = err.Error()
			// back to choosing a line of the same file
			m.state.LineSelected = false
			m.state.LineIndex = 0
			return m, nil
		}
		m.outcome.Dispatched = true
		return m, tea.Quit
	}

	return m, nil
}

// dispatch opens the chosen match in the editor
func (m *Model) dispatch() tea.Cmd {
	file := m.results[m.state.FileIndex-1]
	match := file.Matches[m.state.LineIndex-1]
	m.outcome.Path = file.Path
	m.outcome.Line = match.Line

	if m.opts.Editor == "" {
		m.outcome.Err = ErrEditorNotConfigured
		return tea.Quit
	}

	m.logger.Info("opening editor", "editor", m.opts.Editor, "path", file.Path, "line", match.Line)
	cmd := EditorCommand(m.opts.Editor, match.Line, file.Path)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current frame
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:   m.width,
		Height:  m.height,
		Query:   m.opts.Query,
		Matches: m.opts.Matches,
		Results: m.results,
		State:   m.state,
		Status:  m.status,
		Help:    m.help.View(m.keys),
	})
}

// State returns the navigator state
func (m *Model) State() navigator.State {
	return m.state
}

// Outcome returns how the navigator ended
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Run drives the navigator until the user quits or the editor exits. The
// terminal is put in raw mode for the duration of the call and restored on
// every exit path.
func Run(results []domain.SearchResult, opts Options, progOpts ...tea.ProgramOption) (Outcome, error) {
	m := NewModel(results, opts)
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)...)
	final, err := p.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("navigator failed: %w", err)
	}
	return final.(*Model).Outcome(), nil
}
