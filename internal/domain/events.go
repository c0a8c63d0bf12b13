package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventScanStarted   EventType = "ScanStarted"
	EventFileProcessed EventType = "FileProcessed"
	EventFileIgnored   EventType = "FileIgnored"
	EventScanCompleted EventType = "ScanCompleted"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ScanStartedEvent is emitted before the worker pool starts
type ScanStartedEvent struct {
	Files int
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// FileProcessedEvent is emitted once a file was classified or searched
type FileProcessedEvent struct {
	Path  string
	Done  int // files handled so far, processed or ignored
	Total int
}

func (e FileProcessedEvent) Type() EventType { return EventFileProcessed }

// FileIgnoredEvent is emitted when a file was skipped
type FileIgnoredEvent struct {
	Path  string
	Err   error
	Done  int
	Total int
}

func (e FileIgnoredEvent) Type() EventType { return EventFileIgnored }

// ScanCompletedEvent is emitted after every file has been handled
type ScanCompletedEvent struct {
	Processed int
	Ignored   int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }
