package main

import (
	"fmt"
	"io"

	"linescope/internal/eventbus"
)

const clearLine = "\x1b[2K\r"

// showProgress prints a running file count on w while the scanner works.
// The returned function unsubscribes and clears the line; call it after the
// bus has been closed so every queued event has been printed.
func showProgress(bus eventbus.EventBus, w io.Writer, enabled bool) func() {
	if !enabled {
		return func() {}
	}

	show := func(done int) {
		fmt.Fprintf(w, "Number of files : %d\r", done)
	}

	unsubscribe := []func(){
		bus.Subscribe(eventbus.EventFileProcessed, func(e eventbus.DomainEvent) {
			show(e.(eventbus.FileProcessedEvent).Done)
		}),
		bus.Subscribe(eventbus.EventFileIgnored, func(e eventbus.DomainEvent) {
			show(e.(eventbus.FileIgnoredEvent).Done)
		}),
	}

	return func() {
		for _, u := range unsubscribe {
			u()
		}
		fmt.Fprint(w, clearLine)
	}
}
