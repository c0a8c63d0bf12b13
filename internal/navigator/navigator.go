// Package navigator holds the selection state machine of the interactive
// search view. A choice is resolved in two steps: a file, then one of its
// matched lines. The machine is pure so it can be driven without a terminal.
package navigator

import (
	"strconv"
	"strings"
)

// maxIndex bounds composed indexes so digit input never overflows
const maxIndex = 1_000_000_000

// State is the navigator's selection state. Zero indexes mean unset.
type State struct {
	FileIndex    uint
	FileSelected bool
	LineIndex    uint
	LineSelected bool
}

// Phase names the combinations of the selection flags
type Phase int

const (
	Idle Phase = iota
	FileChosen
	Done
)

// Phase returns the phase the state is in
func (s State) Phase() Phase {
	switch {
	case s.FileSelected && s.LineSelected:
		return Done
	case s.FileSelected:
		return FileChosen
	default:
		return Idle
	}
}

// Composing returns the index currently being typed
func (s State) Composing() uint {
	if s.FileSelected {
		return s.LineIndex
	}
	return s.FileIndex
}

// EventKind is the kind of a key event
type EventKind int

const (
	EventOther EventKind = iota
	EventDigit
	EventConfirm
	EventErase
	EventQuit
)

// Event is a single keypress
type Event struct {
	Kind  EventKind
	Digit uint // set for EventDigit
}

// Digit returns the event for the decimal digit d
func Digit(d uint) Event { return Event{Kind: EventDigit, Digit: d} }

var (
	Confirm = Event{Kind: EventConfirm}
	Erase   = Event{Kind: EventErase}
	Quit    = Event{Kind: EventQuit}
	Other   = Event{Kind: EventOther}
)

// Action is what the caller must do after a step
type Action int

const (
	ActionNone Action = iota
	ActionDispatch
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionDispatch:
		return "dispatch"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Limits bounds what can be confirmed: the number of files and, per file,
// the number of matched lines
type Limits struct {
	Files int
	Lines []int
}

func (l Limits) validFile(i uint) bool {
	return i >= 1 && int(i) <= l.Files
}

func (l Limits) validLine(file, line uint) bool {
	if !l.validFile(file) || int(file) > len(l.Lines) {
		return false
	}
	return line >= 1 && int(line) <= l.Lines[file-1]
}

// Step applies ev to s. Confirming an index outside lim leaves the state
// unchanged.
func Step(s State, ev Event, lim Limits) (State, Action) {
	switch ev.Kind {
	case EventDigit:
		if ev.Digit > 9 {
			return s, ActionNone
		}
		if s.FileSelected {
			s.LineIndex = appendDigit(s.LineIndex, ev.Digit)
		} else {
			s.FileIndex = appendDigit(s.FileIndex, ev.Digit)
		}

	case EventConfirm:
		switch {
		case s.FileIndex != 0 && !s.FileSelected:
			if lim.validFile(s.FileIndex) {
				s.FileSelected = true
			}
		case s.FileSelected && s.LineIndex != 0:
			if lim.validLine(s.FileIndex, s.LineIndex) {
				s.LineSelected = true
				return s, ActionDispatch
			}
		}

	case EventErase:
		if s.FileSelected && s.LineIndex != 0 {
			s.LineIndex /= 10
			if s.LineIndex == 0 {
				s.LineSelected = false
			}
		} else {
			s.FileIndex /= 10
			if s.FileIndex == 0 {
				s.FileSelected = false
			}
		}

	case EventQuit:
		return s, ActionQuit
	}

	return s, ActionNone
}

func appendDigit(index, d uint) uint {
	if index >= maxIndex {
		return index
	}
	return index*10 + d
}

// Visible returns the 1-based positions among count entries whose decimal
// form starts with the composed digits. Every position is visible when
// nothing is composed.
func Visible(count int, composed uint) []int {
	positions := make([]int, 0, count)
	prefix := strconv.FormatUint(uint64(composed), 10)
	for i := 1; i <= count; i++ {
		if composed == 0 || strings.HasPrefix(strconv.Itoa(i), prefix) {
			positions = append(positions, i)
		}
	}
	return positions
}
