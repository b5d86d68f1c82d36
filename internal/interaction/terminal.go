// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interaction

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/peterh/liner"
)

var _ Prompter = (*Terminal)(nil)

const confirmSuffix = " [y/N] "

var noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

// promptFunc reads one line of input after showing prompt.
type promptFunc func(prompt string) (string, error)

// Terminal asks questions on the controlling terminal.
type Terminal struct {
	out    io.Writer
	prompt promptFunc
	m      sync.Mutex
}

// NewTerminal creates a prompter that reads answers with a line editor and writes notices to out.
// A nil out writes to os.Stderr.
func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stderr
	}

	return &Terminal{
		out:    out,
		prompt: linerPrompt,
	}
}

func linerPrompt(prompt string) (string, error) {
	line := liner.NewLiner()
	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)

	return line.Prompt(prompt)
}

// Confirm implements Prompter. An empty answer means no.
// Unrecognised answers repeat the question.
func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	t.m.Lock()
	defer t.m.Unlock()

	fmt.Fprintln(t.out, question) //nolint:errcheck

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		input, err := t.prompt(confirmSuffix)

		switch {
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			return false, ErrAborted
		case err != nil:
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		default:
			ctxlog.Debug(ctx, "unrecognised answer", "input", input)
			fmt.Fprintln(t.out, "Please answer y or n.") //nolint:errcheck
		}
	}
}

// Notify implements Prompter.
func (t *Terminal) Notify(_ context.Context, message string) {
	t.m.Lock()
	defer t.m.Unlock()

	fmt.Fprintln(t.out, noticeStyle.Render(message)) //nolint:errcheck
}
