// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/sledgehammer/internal/ctxlog"
	"github.com/matt-FFFFFF/sledgehammer/internal/diagnostics"
	"github.com/matt-FFFFFF/sledgehammer/internal/document"
	"github.com/matt-FFFFFF/sledgehammer/internal/interaction"
	"github.com/matt-FFFFFF/sledgehammer/internal/runbatch"
)

var (
	_ diagnostics.Publisher = (*Runner)(nil)
	_ interaction.Prompter  = (*Runner)(nil)
)

// Runner manages the TUI program for one batch.
// It forwards diagnostics events to the program and asks questions inside it.
type Runner struct {
	model    *Model
	program  *tea.Program
	finished chan struct{}
	once     sync.Once
	mutex    sync.Mutex
}

// RunnerOption configures a Runner.
type RunnerOption func(*runnerConfig)

type runnerConfig struct {
	title    string
	autoQuit bool
	teaOpts  []tea.ProgramOption
}

// WithTitle sets the title shown at the top of the TUI.
func WithTitle(title string) RunnerOption {
	return func(c *runnerConfig) {
		c.title = title
	}
}

// WithExitOnCompletion quits the TUI as soon as the batch finishes.
func WithExitOnCompletion() RunnerOption {
	return func(c *runnerConfig) {
		c.autoQuit = true
	}
}

// WithProgramOptions passes options to the underlying bubbletea program.
func WithProgramOptions(opts ...tea.ProgramOption) RunnerOption {
	return func(c *runnerConfig) {
		c.teaOpts = append(c.teaOpts, opts...)
	}
}

// NewRunner creates a new TUI runner.
func NewRunner(opts ...RunnerOption) *Runner {
	cfg := &runnerConfig{
		title:   "Sledgehammer compile",
		teaOpts: []tea.ProgramOption{tea.WithAltScreen()},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	model := NewModel(cfg.title, nil)
	model.autoQuit = cfg.autoQuit

	return &Runner{
		model:    model,
		program:  tea.NewProgram(model, cfg.teaOpts...),
		finished: make(chan struct{}),
	}
}

// Publish implements diagnostics.Publisher.
func (r *Runner) Publish(e diagnostics.Event) {
	select {
	case <-r.finished:
		return
	default:
	}

	r.program.Send(EventMsg{Event: e})
}

// Confirm implements interaction.Prompter. It returns ErrAborted if the TUI exits before an answer.
func (r *Runner) Confirm(ctx context.Context, q string) (bool, error) {
	reply := make(chan bool, 1)

	select {
	case <-r.finished:
		return false, interaction.ErrAborted
	default:
	}

	r.program.Send(ConfirmMsg{Question: q, Reply: reply})

	select {
	case yes := <-reply:
		return yes, nil
	case <-r.finished:
		return false, interaction.ErrAborted
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Notify implements interaction.Prompter.
func (r *Runner) Notify(_ context.Context, msg string) {
	select {
	case <-r.finished:
		return
	default:
	}

	r.program.Send(NoticeMsg{Text: msg})
}

// Run starts the TUI and runs the batch against doc. The batch must have been created
// with this runner as its diagnostics publisher and prompter.
// Quitting the TUI before the batch finishes cancels the batch.
func (r *Runner) Run(ctx context.Context, b *runbatch.Batch, doc document.Document) (runbatch.Results, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	steps := b.Steps()
	labels := make([]string, len(steps))

	for i, s := range steps {
		labels[i] = s.GetLabel()
	}

	r.model.setSteps(labels)
	r.model.resize(r.model.width, r.model.height)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	tuiDone := make(chan error, 1)

	go func() {
		_, err := r.program.Run()

		r.once.Do(func() { close(r.finished) })
		tuiDone <- err
	}()

	go func() {
		select {
		case <-r.finished:
			ctxlog.Debug(ctx, "tui exited, cancelling batch")
			cancel()
		case <-runCtx.Done():
		}
	}()

	results, runErr := b.Run(runCtx, doc)

	r.program.Send(BatchCompletedMsg{
		Results:    results,
		Err:        runErr,
		Successful: b.Successful(),
	})

	if ctx.Err() != nil {
		r.program.Quit()
	}

	if err := <-tuiDone; err != nil {
		ctxlog.Error(ctx, "tui error", "error", err)
	}

	return results, runErr
}

// Model returns the model of the runner.
func (r *Runner) Model() *Model {
	return r.model
}
