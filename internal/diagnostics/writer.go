// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package diagnostics

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// WriterPublisher renders events as styled lines of text.
type WriterPublisher struct {
	w        io.Writer
	m        sync.Mutex
	styles   writerStyles
	noOutput bool
}

type writerStyles struct {
	started   lipgloss.Style
	completed lipgloss.Style
	failed    lipgloss.Style
	skipped   lipgloss.Style
	debug     lipgloss.Style
	output    lipgloss.Style
	errorHead lipgloss.Style
	errorBody lipgloss.Style
}

// WriterOption configures a WriterPublisher.
type WriterOption func(*WriterPublisher)

// WithoutToolOutput suppresses KindOutput events.
func WithoutToolOutput() WriterOption {
	return func(wp *WriterPublisher) {
		wp.noOutput = true
	}
}

// NewWriterPublisher creates a publisher that writes to w.
// Styling follows lipgloss' detection of the terminal's colour profile.
func NewWriterPublisher(w io.Writer, opts ...WriterOption) *WriterPublisher {
	wp := &WriterPublisher{
		w: w,
		styles: writerStyles{
			started:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			failed:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			skipped:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			debug:     lipgloss.NewStyle().Faint(true),
			output:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			errorHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			errorBody: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		},
	}

	for _, opt := range opts {
		opt(wp)
	}

	return wp
}

// Publish implements Publisher.
func (wp *WriterPublisher) Publish(e Event) {
	if wp.noOutput && e.Kind == KindOutput {
		return
	}

	line := wp.format(e)
	if line == "" {
		return
	}

	wp.m.Lock()
	defer wp.m.Unlock()

	fmt.Fprintln(wp.w, line) //nolint:errcheck
}

func (wp *WriterPublisher) format(e Event) string {
	msg := strings.TrimRight(e.Message, "\r\n")

	switch e.Kind {
	case KindStepStarted:
		return wp.styles.started.Render(fmt.Sprintf("▶ [%d] %s", e.Index+1, e.Step))
	case KindStepCompleted:
		return wp.styles.completed.Render(fmt.Sprintf("✓ [%d] %s", e.Index+1, e.Step))
	case KindStepFailed:
		s := fmt.Sprintf("✗ [%d] %s", e.Index+1, e.Step)
		if e.Err != nil {
			s += ": " + e.Err.Error()
		}

		return wp.styles.failed.Render(s)
	case KindStepSkipped:
		return wp.styles.skipped.Render(fmt.Sprintf("~ [%d] %s", e.Index+1, e.Step))
	case KindDebug:
		return wp.styles.debug.Render(msg)
	case KindOutput:
		return wp.styles.output.Render("  │ " + msg)
	case KindError:
		return wp.styles.errorHead.Render("Compile error:") + "\n" + wp.styles.errorBody.Render(msg)
	}

	return ""
}
