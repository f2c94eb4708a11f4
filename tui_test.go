// tui_test.go - Poll goroutine shutdown

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import (
	"testing"
	"time"

	"github.com/nsf/termbox-go"
)

func TestDrainEventsUnblocksPoller(t *testing.T) {
	t.Parallel()

	events := make(chan termbox.Event)
	pollDone := make(chan struct{})

	// A poller stuck sending queued keystrokes nobody will handle; it only
	// exits once its backlog is consumed and the interrupt reaches it.
	go func() {
		defer close(pollDone)
		for i := 0; i < 5; i++ {
			events <- termbox.Event{Type: termbox.EventKey, Ch: 'x'}
		}
	}()

	finished := make(chan struct{})
	go func() {
		drainEvents(events, pollDone)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("drainEvents did not release the poll goroutine")
	}
}

func TestDrainEventsReturnsOnIdlePoller(t *testing.T) {
	t.Parallel()

	events := make(chan termbox.Event)
	pollDone := make(chan struct{})
	close(pollDone) // poller already exited, nothing queued

	finished := make(chan struct{})
	go func() {
		drainEvents(events, pollDone)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("drainEvents stalled with an exited poller")
	}
}
