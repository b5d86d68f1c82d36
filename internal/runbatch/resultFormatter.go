// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// OutputOptions controls what is included in the text summary.
type OutputOptions struct {
	IncludeOutput      bool // Whether to include captured process output
	ShowSuccessDetails bool // Whether to show output for steps that succeeded
}

// DefaultOutputOptions returns a default set of output options.
func DefaultOutputOptions() *OutputOptions {
	return &OutputOptions{
		IncludeOutput:      true,
		ShowSuccessDetails: false,
	}
}

var (
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleSkipped = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	styleUnknown = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleFaint   = lipgloss.NewStyle().Faint(true)
)

// WriteText writes a human readable summary of results to w.
func WriteText(w io.Writer, results Results, options *OutputOptions) error {
	if options == nil {
		options = DefaultOutputOptions()
	}

	for _, r := range results {
		if r == nil {
			continue
		}

		if err := writeResult(w, r, options); err != nil {
			return err
		}
	}

	return nil
}

func writeResult(w io.Writer, r *Result, options *OutputOptions) error {
	var status string

	style := styleUnknown

	switch r.Status {
	case ResultStatusSkipped:
		status, style = "~", styleSkipped
	case ResultStatusError:
		status, style = "✗", styleError
	case ResultStatusSuccess:
		status, style = "✓", styleSuccess
	default:
		status = "?"
	}

	label := r.Label
	if label == "" {
		label = "[unnamed]"
	}

	line := fmt.Sprintf("%s %s", style.Render(status), style.Render(label))

	if r.ExitCode != 0 {
		line += fmt.Sprintf(" (exit code: %d)", r.ExitCode)
	}

	if r.Status != ResultStatusSkipped {
		line += " " + styleFaint.Render(r.Duration.Round(time.Millisecond).String())
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	if r.Error != nil {
		if _, err := fmt.Fprintf(w, "  %s %s\n", styleError.Render("➜ Error:"), r.Error.Error()); err != nil {
			return err
		}
	}

	showDetails := r.Error != nil || r.ExitCode != 0 || options.ShowSuccessDetails
	if showDetails && options.IncludeOutput && len(r.Output) > 0 {
		if _, err := fmt.Fprintln(w, "  ➜ Output:"); err != nil {
			return err
		}

		if _, err := io.WriteString(w, formatOutput(r.Output, "     ")); err != nil {
			return err
		}
	}

	return nil
}

// formatOutput indents each line of output.
func formatOutput(output []byte, indent string) string {
	lines := strings.Split(strings.TrimRight(string(output), "\n"), "\n")

	sb := strings.Builder{}
	sb.Grow(len(output) + len(lines)*(len(indent)+1))

	for _, line := range lines {
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}
