// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package diagnostics

import (
	"time"
)

// Kind identifies what an Event describes.
type Kind int

const (
	// KindStepStarted is published immediately before a step runs.
	KindStepStarted Kind = iota
	// KindStepCompleted is published when a step returns without error.
	KindStepCompleted
	// KindStepFailed is published when a step returns a fatal error.
	KindStepFailed
	// KindStepSkipped is published for steps that do not run because an earlier step failed fatally.
	KindStepSkipped
	// KindDebug carries progress text, such as the working directory path.
	KindDebug
	// KindOutput carries a single line of output from an external tool.
	KindOutput
	// KindError carries the body of a tool error report.
	KindError
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindStepStarted:
		return "started"
	case KindStepCompleted:
		return "completed"
	case KindStepFailed:
		return "failed"
	case KindStepSkipped:
		return "skipped"
	case KindDebug:
		return "debug"
	case KindOutput:
		return "output"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// IsLifecycle reports whether the kind describes a step state change rather than message text.
func (k Kind) IsLifecycle() bool {
	return k <= KindStepSkipped
}

// Event is a single diagnostic message.
type Event struct {
	Kind    Kind      // What happened
	Index   int       // Position of the step in the batch
	Step    string    // Label of the step that published the event
	Message string    // Human-readable text
	Err     error     // Set for KindStepFailed
	Time    time.Time // When the event was published
}

// Publisher receives diagnostic events.
type Publisher interface {
	// Publish delivers an event. Implementations must be safe for concurrent use.
	Publish(event Event)
}

// PublisherFunc adapts an ordinary function to the Publisher interface.
type PublisherFunc func(Event)

// Publish implements Publisher.
func (f PublisherFunc) Publish(event Event) {
	f(event)
}

// NullPublisher discards all events.
type NullPublisher struct{}

// Publish implements Publisher by doing nothing.
func (NullPublisher) Publish(Event) {}

// Multi fans an event out to every non-nil publisher, in order.
func Multi(publishers ...Publisher) Publisher {
	return PublisherFunc(func(e Event) {
		for _, p := range publishers {
			if p != nil {
				p.Publish(e)
			}
		}
	})
}
