package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"linescope/internal/navigator"
)

type keyMap struct {
	Digits  key.Binding
	Confirm key.Binding
	Erase   key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "type a number"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("backspace", "erase digit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Confirm, k.Erase, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// event translates a keypress into a navigator event
func (k keyMap) event(msg tea.KeyMsg) navigator.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return navigator.Quit
	case key.Matches(msg, k.Confirm):
		return navigator.Confirm
	case key.Matches(msg, k.Erase):
		return navigator.Erase
	case key.Matches(msg, k.Digits):
		return navigator.Digit(uint(msg.Runes[0] - '0'))
	}
	return navigator.Other
}
